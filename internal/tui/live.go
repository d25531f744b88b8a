// Package tui is the interactive live view. It owns the frame cadence: every
// tick it calls Update on the simulation with a fixed step, making it the
// external driver the core imposes no timing assumptions on.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/starforge/internal/control"
	"github.com/san-kum/starforge/internal/sim"
)

const tickInterval = 100 * time.Millisecond

type tickMsg time.Time

// Model is the bubbletea model wrapping a simulation session.
type Model struct {
	simc  *control.Simulation
	step  float64 // simulated years per tick
	width int
	err   error
}

// NewModel wraps an initialized simulation. step is simulated years per
// frame tick.
func NewModel(simc *control.Simulation, step float64) *Model {
	return &Model{simc: simc, step: step, width: 80}
}

// Run starts the program and blocks until quit.
func Run(simc *control.Simulation, step float64) error {
	_, err := tea.NewProgram(NewModel(simc, step), tea.WithAltScreen()).Run()
	return err
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			if m.simc.State() == sim.Running {
				m.err = m.simc.Pause()
			} else {
				m.err = m.simc.Start()
			}
		case "+", "=":
			m.err = m.simc.SetTimeScale(m.simc.TimeScale() * 2)
		case "-":
			m.err = m.simc.SetTimeScale(m.simc.TimeScale() / 2)
		case "r":
			m.err = m.simc.Reset()
		}
	case tickMsg:
		m.err = m.simc.Update(m.step)
		return m, tick()
	}
	return m, nil
}

func (m *Model) View() string {
	status := m.simc.Status()
	var b strings.Builder

	b.WriteString(titleStyle.Render("starforge"))
	b.WriteString("  ")
	switch status.State {
	case sim.Running:
		b.WriteString(green.Render("running"))
	case sim.Paused:
		b.WriteString(yellow.Render("paused"))
	default:
		b.WriteString(dim.Render("stopped"))
	}
	b.WriteString(dim.Render(fmt.Sprintf("  t=%s  scale=%.3gx", formatYears(status.CurrentTime), status.TimeScale)))
	b.WriteString("\n\n")

	if status.System == nil {
		b.WriteString(dim.Render("no system"))
		return b.String()
	}
	b.WriteString(m.renderStars(status.System))
	b.WriteString("\n")
	b.WriteString(m.renderPlanets(status.System))

	if entries := m.simc.Errors(); len(entries) > 0 {
		last := entries[len(entries)-1]
		b.WriteString("\n")
		b.WriteString(red.Render(fmt.Sprintf("! %s (%d logged)", last.Message, len(entries))))
	}
	b.WriteString("\n\n")
	b.WriteString(dim.Render("space pause/resume  +/- time scale  r reset  q quit"))
	return b.String()
}

func (m *Model) renderStars(system *sim.StarSystem) string {
	var b strings.Builder
	b.WriteString(cyan.Render(fmt.Sprintf("%s — %d star(s)", system.Name, len(system.Stars))))
	b.WriteString("\n")
	for _, s := range system.Stars {
		cls := white
		if st, ok := spectralColor[string(s.Spectral)]; ok {
			cls = st
		}
		b.WriteString(fmt.Sprintf("  %s  %s  %s  %s\n",
			cls.Render(fmt.Sprintf("%-12s", s.Name)),
			white.Render(fmt.Sprintf("%5.2f M☉ %s", s.Mass, s.Spectral)),
			magenta.Render(fmt.Sprintf("%-17s", s.Phase)),
			dim.Render(fmt.Sprintf("L=%-9.3g R=%-8.3g T=%6.0fK age=%s",
				s.Luminosity, s.Radius, s.Temperature, formatYears(s.Age))),
		))
	}
	return panelStyle.Width(m.width - 2).Render(b.String())
}

func (m *Model) renderPlanets(system *sim.StarSystem) string {
	var b strings.Builder
	b.WriteString(cyan.Render(fmt.Sprintf("%d planet(s)", len(system.Planets))))
	b.WriteString("\n")
	for _, p := range system.Planets {
		b.WriteString(fmt.Sprintf("  %s  %s  %s\n",
			white.Render(fmt.Sprintf("%-14s", p.Name)),
			yellow.Render(fmt.Sprintf("%-9s", p.Composition)),
			dim.Render(fmt.Sprintf("a=%-7.2fAU e=%.2f m=%-7.2fM⊕ r=%-6.2fR⊕ P=%.2fyr",
				p.SemiMajorAxis, p.Eccentricity, p.Mass, p.Radius, p.OrbitalPeriod)),
		))
	}
	if len(system.Planets) == 0 {
		b.WriteString(dim.Render("  none formed"))
		b.WriteString("\n")
	}
	return panelStyle.Width(m.width - 2).Render(b.String())
}

func formatYears(y float64) string {
	switch {
	case y >= 1e9:
		return fmt.Sprintf("%.2f Gyr", y/1e9)
	case y >= 1e6:
		return fmt.Sprintf("%.2f Myr", y/1e6)
	case y >= 1e3:
		return fmt.Sprintf("%.2f kyr", y/1e3)
	default:
		return fmt.Sprintf("%.0f yr", y)
	}
}
