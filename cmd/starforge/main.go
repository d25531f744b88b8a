package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/starforge/internal/analysis"
	"github.com/san-kum/starforge/internal/config"
	"github.com/san-kum/starforge/internal/control"
	"github.com/san-kum/starforge/internal/evolve"
	"github.com/san-kum/starforge/internal/export"
	"github.com/san-kum/starforge/internal/logging"
	"github.com/san-kum/starforge/internal/metrics"
	"github.com/san-kum/starforge/internal/tui"
)

var (
	logLevel   string
	configFile string
	preset     string
	seed       int64

	cloudMass   float64
	metallicity float64
	angMomentum float64
	temperature float64
	cloudRadius float64
	turbulence  float64
	magField    float64

	duration  float64
	step      float64
	timeScale float64

	starMass float64
	samples  int

	svgPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "starforge",
		Short: "star system formation and evolution simulator",
		RunE:  runLive,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "solar", "preset scenario")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = preset/config seed)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario headless and print the final system",
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&cloudMass, "mass", 0, "cloud mass, solar masses (overrides scenario)")
	runCmd.Flags().Float64Var(&metallicity, "metallicity", 0, "cloud metallicity, solar units")
	runCmd.Flags().Float64Var(&angMomentum, "angmom", 0, "cloud angular momentum, kg*m^2/s")
	runCmd.Flags().Float64Var(&temperature, "temp", 0, "cloud temperature, K")
	runCmd.Flags().Float64Var(&cloudRadius, "radius", 0, "cloud radius, pc")
	runCmd.Flags().Float64Var(&turbulence, "turbulence", 0, "turbulence velocity, km/s")
	runCmd.Flags().Float64Var(&magField, "bfield", 0, "magnetic field, uG")
	runCmd.Flags().Float64Var(&duration, "time", 0, "simulated years (overrides scenario)")
	runCmd.Flags().Float64Var(&step, "step", 0, "years per update (overrides scenario)")
	runCmd.Flags().Float64Var(&timeScale, "scale", 0, "time scale multiplier")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write a top-down system map to this file")

	evolveCmd := &cobra.Command{
		Use:   "evolve",
		Short: "plot a single star's evolutionary track",
		RunE:  runEvolve,
	}
	evolveCmd.Flags().Float64Var(&starMass, "mass", 1.0, "stellar mass, solar masses")
	evolveCmd.Flags().Float64Var(&metallicity, "metallicity", 1.0, "metallicity, solar units")
	evolveCmd.Flags().IntVar(&samples, "samples", 120, "track samples")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list preset scenarios",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, evolveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// loadScenario resolves config file > preset > defaults, then applies flag
// overrides.
func loadScenario() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (try: %v)", preset, config.ListPresets())
		}
	default:
		cfg = config.DefaultConfig()
	}

	if seed != 0 {
		cfg.Seed = seed
	}
	if cloudMass > 0 {
		cfg.Cloud.Mass = cloudMass
	}
	if metallicity > 0 {
		cfg.Cloud.Metallicity = metallicity
	}
	if angMomentum > 0 {
		cfg.Cloud.AngularMomentum = angMomentum
	}
	if temperature > 0 {
		cfg.Cloud.Temperature = temperature
	}
	if cloudRadius > 0 {
		cfg.Cloud.Radius = cloudRadius
	}
	if turbulence > 0 {
		cfg.Cloud.Turbulence = turbulence
	}
	if magField > 0 {
		cfg.Cloud.MagneticField = magField
	}
	if duration > 0 {
		cfg.Duration = duration
	}
	if step > 0 {
		cfg.Step = step
	}
	if timeScale > 0 {
		cfg.TimeScale = timeScale
	}
	return cfg, nil
}

func newSession(cfg *config.Config) (*control.Simulation, error) {
	simc := control.New(cfg.Seed, logging.New(logging.ParseLevel(logLevel)))
	simc.SetMaxPlanets(cfg.MaxPlanets)
	if _, err := simc.Initialize(cfg.Cloud.Parameters()); err != nil {
		return nil, err
	}
	if err := simc.SetTimeScale(cfg.TimeScale); err != nil {
		return nil, err
	}
	return simc, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	simc, err := newSession(cfg)
	if err != nil {
		return err
	}
	if err := simc.Start(); err != nil {
		return err
	}
	return tui.Run(simc, cfg.Step)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadScenario()
	if err != nil {
		return err
	}
	simc, err := newSession(cfg)
	if err != nil {
		return err
	}
	if err := simc.Start(); err != nil {
		return err
	}

	observers := []metrics.Observer{
		metrics.NewMeanLuminosity(),
		metrics.NewLuminosityDrift(),
		metrics.NewRemnantCount(),
	}
	for t := 0.0; t < cfg.Duration; t += cfg.Step {
		if err := simc.Update(cfg.Step); err != nil {
			return err
		}
		for _, o := range observers {
			o.Observe(simc.System(), simc.CurrentTime())
		}
	}
	printSystem(simc)

	fmt.Println()
	for _, o := range observers {
		fmt.Printf("%-18s %.4g\n", o.Name(), o.Value())
	}

	if svgPath != "" {
		if err := export.WriteSystemSVG(svgPath, simc.System(), 0); err != nil {
			return err
		}
		fmt.Printf("\nsystem map written to %s\n", svgPath)
	}
	return nil
}

func printSystem(simc *control.Simulation) {
	status := simc.Status()
	system := status.System
	fmt.Printf("%s  age %.3g yr  (%d stars, %d planets)\n\n",
		system.Name, system.Age, len(system.Stars), len(system.Planets))

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "STAR\tMASS\tCLASS\tPHASE\tL\tR\tTEMP\tAGE")
	for _, s := range system.Stars {
		fmt.Fprintf(w, "%s\t%.2f\t%s\t%s\t%.3g\t%.3g\t%.0fK\t%.3g\n",
			s.Name, s.Mass, s.Spectral, s.Phase, s.Luminosity, s.Radius, s.Temperature, s.Age)
	}
	w.Flush()
	fmt.Println()

	w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PLANET\tTYPE\tA(AU)\tECC\tMASS(M⊕)\tRADIUS(R⊕)\tPERIOD(yr)")
	for _, p := range system.Planets {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			p.Name, p.Composition, p.SemiMajorAxis, p.Eccentricity, p.Mass, p.Radius, p.OrbitalPeriod)
	}
	w.Flush()

	if entries := simc.Errors(); len(entries) > 0 {
		fmt.Printf("\n%d diagnostic entries, last: %s\n", len(entries), entries[len(entries)-1].Message)
	}
}

func runEvolve(cmd *cobra.Command, args []string) error {
	track, err := analysis.EvolutionTrack(starMass, metallicity, samples)
	if err != nil {
		return err
	}

	fmt.Printf("%.2f M☉ star, lifetime %.3g yr\n\n", track.Mass, track.Lifetime)
	fmt.Printf("%12s  %s\n", "0 yr", track.Points[0].Phase)
	for _, tr := range track.Transitions {
		fmt.Printf("%12.3g  %s\n", tr.Age, tr.To)
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(track.LogLuminosity(),
		asciigraph.Height(14),
		asciigraph.Caption(fmt.Sprintf("log10 L/L☉ over %.3g yr", 1.05*track.Lifetime))))
	fmt.Printf("\nfinal state: %s\n", evolve.FinalState(track.Mass))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tMASS\tMETALLICITY\tANG.MOM\tNOTES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		note := ""
		if name == "sparse" {
			note = "does not collapse"
		}
		fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.1e\t%s\n",
			name, p.Cloud.Mass, p.Cloud.Metallicity, p.Cloud.AngularMomentum, note)
	}
	return w.Flush()
}
