package physics

import (
	"math"
	"testing"
)

func TestSafeDiv(t *testing.T) {
	tests := []struct {
		num, den, fallback, want float64
	}{
		{10, 2, -1, 5},
		{1, 0, -1, -1},
		{math.Inf(1), 1, -1, -1},
	}
	for _, tt := range tests {
		if got := SafeDiv(tt.num, tt.den, tt.fallback); got != tt.want {
			t.Errorf("SafeDiv(%g, %g) = %g, want %g", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestSafeSqrt(t *testing.T) {
	if got := SafeSqrt(4, -1); got != 2 {
		t.Errorf("SafeSqrt(4) = %g", got)
	}
	if got := SafeSqrt(-1, 7); got != 7 {
		t.Errorf("SafeSqrt(-1) = %g, want fallback", got)
	}
}

func TestSafePow(t *testing.T) {
	tests := []struct {
		base, exp, fallback, want float64
	}{
		{2, 3, -1, 8},
		{0, -1, -1, -1},
		{-2, 0.5, -1, -1},
		{-2, 2, -1, 4},
	}
	for _, tt := range tests {
		if got := SafePow(tt.base, tt.exp, tt.fallback); got != tt.want {
			t.Errorf("SafePow(%g, %g) = %g, want %g", tt.base, tt.exp, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 10) != 5 || Clamp(-5, 0, 10) != 0 || Clamp(15, 0, 10) != 10 {
		t.Error("clamp misbehaves")
	}
}
