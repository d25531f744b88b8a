// Package export renders system snapshots to standalone files.
package export

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/starforge/internal/sim"
)

// Top-down map styling.
var (
	spectralFill = map[sim.SpectralClass]string{
		sim.ClassO: "#9bb0ff",
		sim.ClassB: "#aabfff",
		sim.ClassA: "#cad7ff",
		sim.ClassF: "#f8f7ff",
		sim.ClassG: "#fff4ea",
		sim.ClassK: "#ffd2a1",
		sim.ClassM: "#ffcc6f",
	}
	compositionFill = map[sim.Composition]string{
		sim.Rocky:    "#b08968",
		sim.IceGiant: "#7fd4e8",
		sim.GasGiant: "#e8b87f",
	}
)

// SystemToSVG renders a top-down orbital map of the system: orbit guides
// around each star, stars colored by spectral class, planets by composition.
// Distances are to scale; body sizes are not.
func SystemToSVG(system *sim.StarSystem, size int) string {
	if system == nil || len(system.Stars) == 0 {
		return ""
	}
	if size <= 0 {
		size = 800
	}

	// Bounds cover every star plus its widest orbit, with 10% padding.
	minX, maxX := system.Stars[0].Position.X(), system.Stars[0].Position.X()
	minY, maxY := system.Stars[0].Position.Y(), system.Stars[0].Position.Y()
	grow := func(x, y float64) {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for _, s := range system.Stars {
		grow(s.Position.X(), s.Position.Y())
	}
	for _, p := range system.Planets {
		if parent := system.StarByID(p.ParentStarID); parent != nil {
			reach := p.SemiMajorAxis * (1 + p.Eccentricity)
			grow(parent.Position.X()-reach, parent.Position.Y()-reach)
			grow(parent.Position.X()+reach, parent.Position.Y()+reach)
		}
	}
	span := maxX - minX
	if dy := maxY - minY; dy > span {
		span = dy
	}
	if span == 0 {
		span = 1
	}
	span *= 1.2
	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	scale := float64(size) / span

	toPx := func(x, y float64) (float64, float64) {
		return float64(size)/2 + (x-cx)*scale, float64(size)/2 - (y-cy)*scale
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a14"/>
`, size, size, size, size))

	// Orbit guides first so bodies draw on top.
	for _, p := range system.Planets {
		parent := system.StarByID(p.ParentStarID)
		if parent == nil {
			continue
		}
		x, y := toPx(parent.Position.X(), parent.Position.Y())
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#2a2a3a" stroke-width="1"/>
`, x, y, p.SemiMajorAxis*scale))
	}

	for _, p := range system.Planets {
		fill, ok := compositionFill[p.Composition]
		if !ok {
			fill = "#888888"
		}
		x, y := toPx(p.Position.X(), p.Position.Y())
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="%s"><title>%s</title></circle>
`, x, y, fill, p.Name))
	}

	for _, s := range system.Stars {
		fill, ok := spectralFill[s.Spectral]
		if !ok {
			fill = "#ffffff"
		}
		x, y := toPx(s.Position.X(), s.Position.Y())
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="6" fill="%s"><title>%s (%s)</title></circle>
`, x, y, fill, s.Name, s.Phase))
	}

	sb.WriteString(fmt.Sprintf(`<text x="12" y="%d" fill="#8888aa" font-family="monospace" font-size="12">%s  age %.3g yr</text>
</svg>`, size-12, system.Name, system.Age))
	return sb.String()
}

// WriteSystemSVG renders the map to a file.
func WriteSystemSVG(path string, system *sim.StarSystem, size int) error {
	svg := SystemToSVG(system, size)
	if svg == "" {
		return fmt.Errorf("nothing to render")
	}
	return os.WriteFile(path, []byte(svg), 0644)
}
