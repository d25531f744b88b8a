package sim

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Errorf(KindInvalidParameters, "mass %g out of range", -1.0)
	if !strings.Contains(err.Error(), "invalid_parameters") {
		t.Errorf("error string %q missing kind", err.Error())
	}
	if !strings.Contains(err.Error(), "mass -1 out of range") {
		t.Errorf("error string %q missing message", err.Error())
	}
}

func TestErrorWrapping(t *testing.T) {
	inner := errors.New("boom")
	err := &Error{Kind: KindNumericalInstability, Message: "derived", Err: inner}
	if !errors.Is(err, inner) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("error string %q missing cause", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := Errorf(KindInsufficientMass, "no collapse")
	if !IsKind(err, KindInsufficientMass) {
		t.Error("IsKind missed a direct match")
	}
	if IsKind(err, KindInvalidParameters) {
		t.Error("IsKind matched the wrong kind")
	}
	wrapped := fmt.Errorf("initialize: %w", err)
	if !IsKind(wrapped, KindInsufficientMass) {
		t.Error("IsKind should see through wrapping")
	}
	if IsKind(errors.New("plain"), KindInsufficientMass) {
		t.Error("IsKind matched an untyped error")
	}
	if IsKind(nil, KindInsufficientMass) {
		t.Error("IsKind matched nil")
	}
}

func TestWithDetails(t *testing.T) {
	err := Errorf(KindInsufficientMass, "no collapse").
		WithDetails(map[string]float64{"jeans_mass": 2.5})
	if err.Details["jeans_mass"] != 2.5 {
		t.Error("details payload lost")
	}
}

func TestCheckFinite(t *testing.T) {
	if err := CheckFinite("ok", 1, -2, 0); err != nil {
		t.Errorf("finite values flagged: %v", err)
	}
	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := CheckFinite("calc", 1, bad)
		if !IsKind(err, KindNumericalInstability) {
			t.Errorf("CheckFinite(%g) = %v, want numerical instability", bad, err)
		}
	}
}
