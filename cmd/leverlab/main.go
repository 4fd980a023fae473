package main

import (
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/levertools/leverlab/internal/config"
	"github.com/levertools/leverlab/internal/export"
	"github.com/levertools/leverlab/internal/lever"
	"github.com/levertools/leverlab/internal/tug"
	"github.com/levertools/leverlab/internal/tui"
)

var (
	configFile string
	preset     string
	frameRate  int

	weight      float64
	incline     float64
	surface     string
	handleArm   float64
	aircraftArm float64

	effort   float64
	arm1     float64
	arm2     float64
	dt       float64
	duration float64
	variant  int
	format   string
)

func main() {
	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelInfo}),
	))

	rootCmd := &cobra.Command{
		Use:   "leverlab",
		Short: "interactive lever and tug mechanics visualizer",
		Long:  banner(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rig := lever.NewRig()
			cfg.ApplyLever(rig)
			return tui.RunLever(rig, pickFrameRate(cfg))
		},
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", 0, "frame rate (default 60)")

	leverCmd := &cobra.Command{
		Use:   "lever",
		Short: "interactive lever torque simulator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			rig := lever.NewRig()
			cfg.ApplyLever(rig)
			return tui.RunLever(rig, pickFrameRate(cfg))
		},
	}

	tugCmd := &cobra.Command{
		Use:   "tug",
		Short: "interactive tug force calculator",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			calc := tug.NewCalculator()
			cfg.ApplyTug(calc)
			return tui.RunTug(calc)
		},
	}

	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "print the tug force table for all variants",
		RunE:  runCalc,
	}
	calcCmd.Flags().Float64Var(&weight, "weight", tug.DefaultWeight, "aircraft weight (lb)")
	calcCmd.Flags().Float64Var(&incline, "incline", tug.DefaultIncline, "incline (degrees)")
	calcCmd.Flags().StringVar(&surface, "surface", tug.DefaultSurface.Name, "surface preset")
	calcCmd.Flags().Float64Var(&handleArm, "handle", tug.DefaultHandleArm, "handle arm X (ft)")
	calcCmd.Flags().Float64Var(&aircraftArm, "arm", tug.DefaultAircraftArm, "aircraft arm C (ft)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a headless lever simulation",
		RunE:  runLever,
	}
	runCmd.Flags().Float64Var(&effort, "f1", lever.DefaultEffort, "effort force at P1 (lb)")
	runCmd.Flags().Float64Var(&arm1, "arm1", lever.DefaultArm1, "primary arm length (ft)")
	runCmd.Flags().Float64Var(&arm2, "arm2", lever.DefaultArm2, "secondary arm / X1 target (ft)")
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration (s)")
	runCmd.Flags().IntVar(&variant, "variant", 0, "diagram index (0-4)")
	runCmd.Flags().StringVar(&format, "format", "", "export format: json or csv")

	surfacesCmd := &cobra.Command{
		Use:   "surfaces",
		Short: "list friction presets",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SURFACE\tMU")
			for _, s := range tug.Surfaces {
				fmt.Fprintf(w, "%s\t%.3f\n", s.Name, s.Mu)
			}
			w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named preset configurations",
		Run: func(cmd *cobra.Command, args []string) {
			names := config.ListPresets()
			sort.Strings(names)
			for _, name := range names {
				cfg := config.GetPreset(name)
				fmt.Printf("%-12s weight=%.0flb %s incline=%+.1f f1=%.0flb\n",
					name, cfg.Tug.Weight, cfg.Tug.Surface, cfg.Tug.Incline, cfg.Lever.Effort)
			}
		},
	}

	rootCmd.AddCommand(leverCmd, tugCmd, calcCmd, runCmd, surfacesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func banner() string {
	var s strings.Builder
	s.WriteString("Interactive lever and tug mechanics visualizer.\n\n")
	s.WriteString("Lever variants:\n")
	for _, k := range tug.Kinds {
		s.WriteString("  " + k.String() + "\n")
	}
	s.WriteString("\nD1a/D3a set the load-arm length; D1b/D3b set the moment arm X1 directly.\n")
	s.WriteString("D4 extends both arms by fixed offsets and appears in the tug calculator only.\n")
	return s.String()
}

func loadConfig() (*config.Config, error) {
	if preset != "" {
		cfg := config.GetPreset(preset)
		if cfg == nil {
			names := config.ListPresets()
			sort.Strings(names)
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, names)
		}
		return cfg, nil
	}
	if configFile != "" {
		cfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		return cfg, nil
	}
	return config.Default(), nil
}

func pickFrameRate(cfg *config.Config) int {
	if frameRate > 0 {
		return frameRate
	}
	if cfg.FrameRate > 0 {
		return cfg.FrameRate
	}
	return config.DefaultFrameRate
}

func runCalc(cmd *cobra.Command, args []string) error {
	calc := tug.NewCalculator()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.ApplyTug(calc)

	// Flags override the config.
	if cmd.Flags().Changed("weight") {
		calc.SetWeight(weight)
	}
	if cmd.Flags().Changed("incline") {
		calc.SetIncline(incline)
	}
	if cmd.Flags().Changed("surface") {
		if !calc.SelectSurface(surface) {
			return fmt.Errorf("unknown surface: %s", surface)
		}
	}
	if cmd.Flags().Changed("handle") || cmd.Flags().Changed("arm") {
		h, a := calc.HandleArm(), calc.AircraftArm()
		if cmd.Flags().Changed("handle") {
			h = handleArm
		}
		if cmd.Flags().Changed("arm") {
			a = aircraftArm
		}
		calc.SetArms(h, a)
	}

	snap := calc.Snapshot()
	fmt.Printf("weight: %.0f lb  surface: %s (mu=%.3f)  incline: %+.1f deg\n",
		snap.Weight, snap.Surface.Name, snap.Surface.Mu, snap.InclineDeg)
	fmt.Printf("rolling: %.1f lb  grade: %+.1f lb  total pull: %.1f lb\n\n",
		snap.Rolling, snap.Grade, snap.TotalPull)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "VARIANT\tHANDLE(ft)\tARM(ft)\tX1(ft)\tFORCE(lb)\tTORQUE(lb-ft)\tPOWER(HP)")
	for _, d := range snap.Diagrams {
		fmt.Fprintf(w, "%s\t%.1f\t%.2f\t%.2f\t%.1f\t%.2f\t%.3f\n",
			d.Name, d.Geom.PrimaryArm, d.Geom.SecondaryArm, d.Geom.MomentArm,
			d.HandleForce, d.MotorTorque, d.PowerHP)
	}
	return w.Flush()
}

func runLever(cmd *cobra.Command, args []string) error {
	if variant < 0 || variant >= len(lever.Kinds) {
		return fmt.Errorf("variant out of range: %d", variant)
	}
	if dt <= 0 {
		return fmt.Errorf("dt must be positive")
	}

	rig := lever.NewRig()
	rig.SetEffort(effort)
	rig.SetArms(arm1, arm2)
	rig.Select(variant)
	rig.Simulating = true

	kind := lever.Kinds[variant]
	slog.Info("running lever simulation",
		"variant", kind.String(), "f1", rig.Effort(), "arm1", rig.Arm1(), "arm2", rig.Arm2(),
		"dt", dt, "duration", duration)

	run := &export.Run{
		Variant:  kind.String(),
		Effort:   rig.Effort(),
		Arm1:     rig.Arm1(),
		Arm2:     rig.Arm2(),
		Dt:       dt,
		Duration: duration,
	}

	start := time.Now()
	steps := int(duration / dt)
	for i := 0; i < steps; i++ {
		rig.Step(dt)
		d := rig.Diagrams[variant]
		run.Samples = append(run.Samples, export.Sample{
			Time:            float64(i+1) * dt,
			Rotation:        d.Rotation,
			AngularVelocity: d.AngularVelocity,
			NetTorque:       d.NetTorque,
			MomentArm:       d.X1Current,
			Result:          d.Result,
		})
	}
	elapsed := time.Since(start)

	switch format {
	case "json":
		return export.JSON(os.Stdout, run)
	case "csv":
		return export.CSV(os.Stdout, run)
	case "":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	rotation := make([]float64, len(run.Samples))
	for i, s := range run.Samples {
		rotation[i] = s.Rotation
	}
	graph := asciigraph.Plot(rotation,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s rotation (deg)", kind.String())),
	)
	fmt.Println(graph)
	fmt.Println()

	d := rig.Diagrams[variant]
	fmt.Printf("final state after %.1fs (%d steps in %v):\n", duration, steps, elapsed)
	fmt.Printf("  rotation:  %8.2f deg\n", d.Rotation)
	fmt.Printf("  omega:     %8.2f deg/s\n", d.AngularVelocity)
	fmt.Printf("  torque:    %8.1f lb-ft\n", d.NetTorque)
	fmt.Printf("  X1:        %8.2f ft\n", d.X1Current)
	fmt.Printf("  F2:        %8.1f lb\n", d.Result)

	groups := rig.Groups()
	fmt.Println("\nforce groups:")
	for i, diag := range rig.Diagrams {
		fmt.Printf("  [%d] %-22s F2=%7.1f lb\n", groups[i], diag.Name, diag.Result)
	}

	return nil
}
