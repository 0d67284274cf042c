package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/orrery/internal/automation"
	"github.com/san-kum/orrery/internal/config"
	"github.com/san-kum/orrery/internal/gui"
	"github.com/san-kum/orrery/internal/logging"
	"github.com/san-kum/orrery/internal/metrics"
	"github.com/san-kum/orrery/internal/scene"
	"github.com/san-kum/orrery/internal/sim"
	"github.com/san-kum/orrery/internal/storage"
	"github.com/san-kum/orrery/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	seed       int64
	width      float64
	height     float64
	asteroids  int
	stars      int
	fps        float64
	frames     int
	speedScale float64
	theme      string

	runs    int
	gifPath string

	log = logging.NewLogger()
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "orrery",
		Short:         "a small animated solar system",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runLive,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".orrery", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Int64Var(&seed, "seed", config.DefaultSeed, "random seed for belt and starfield")
	pf.Float64Var(&width, "width", config.DefaultWidth, "scene width")
	pf.Float64Var(&height, "height", config.DefaultHeight, "scene height")
	pf.IntVar(&asteroids, "asteroids", config.DefaultAsteroids, "asteroid count")
	pf.IntVar(&stars, "stars", config.DefaultStars, "star count")
	pf.Float64Var(&fps, "fps", config.DefaultFPS, "frames per second")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	pf.Float64Var(&speedScale, "speed-scale", 1, "multiplier on every orbital speed")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "terminal colour theme")

	rootCmd.Flags().StringVar(&gifPath, "gif", "orrery.gif", "where [g] saves recordings")

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "interactive preset menu, then the live view",
		RunE: func(cmd *cobra.Command, args []string) error {
			return viz.RunInteractive()
		},
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the desktop window",
		RunE:  runGUI,
	}
	guiCmd.Flags().Int32("window-width", 1280, "window width in pixels")
	guiCmd.Flags().Int32("window-height", 720, "window height in pixels")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and record body positions",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&runs, "runs", 1, "number of runs over consecutive seeds")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot distance from the sun over time",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringSlice("bodies", []string{"Mercury", "Earth", "Mars"}, "bodies to plot")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "estimate orbital periods",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}
	analyzeCmd.Flags().String("body", "Earth", "body whose spectrum is plotted")

	traceCmd := &cobra.Command{
		Use:   "trace [run_id] [body]",
		Short: "draw the path a body took",
		Args:  cobra.ExactArgs(2),
		RunE:  traceRun,
	}
	traceCmd.Flags().String("svg", "", "write the path as svg instead")
	traceCmd.Flags().Int("cols", 80, "plot width in characters")
	traceCmd.Flags().Int("rows", 30, "plot height in characters")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id] [output]",
		Short: "copy a run's positions to csv",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id] [output]",
		Short: "export a run with metadata as json",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  exportJSON,
	}

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [output.png|output.svg]",
		Short: "render a single frame",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshot,
	}
	snapshotCmd.Flags().Int("frame", 0, "frame to render")
	snapshotCmd.Flags().Bool("no-orbits", false, "omit orbit paths")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Printf("  %-10s %s\n", name, config.Describe(name))
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", args[0])
			return nil
		},
	}

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file.yaml]",
		Short: "run a scripted batch of recordings",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [param]",
		Short: "vary one parameter and report a body's distance from the sun",
		Args:  cobra.ExactArgs(1),
		RunE:  runSweep,
	}
	sweepCmd.Flags().Float64("min", 0.5, "first value")
	sweepCmd.Flags().Float64("max", 5, "last value")
	sweepCmd.Flags().Int("steps", 5, "number of values")
	sweepCmd.Flags().String("body", "Earth", "body to watch")

	rootCmd.AddCommand(tuiCmd, guiCmd, runCmd, listCmd, plotCmd, analyzeCmd, traceCmd,
		exportCSVCmd, exportJSONCmd, snapshotCmd, presetsCmd, initCmd, scenarioCmd, sweepCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Error(context.Background(), "command failed", err)
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// resolveConfig layers preset, config file and explicitly set flags, in that
// order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %s)", err, strings.Join(config.ListPresets(), ", "))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("asteroids") {
		cfg.Asteroids = asteroids
	}
	if flags.Changed("stars") {
		cfg.Stars = stars
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("speed-scale") {
		cfg.SpeedScale = speedScale
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Debug(cmd.Context(), "config resolved",
		"preset", preset, "width", cfg.Width, "height", cfg.Height,
		"seed", cfg.Seed, "asteroids", cfg.Asteroids, "fps", cfg.FPS)
	return cfg, nil
}

func newScene(cmd *cobra.Command) (*config.Config, *scene.Scene, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	s, err := scene.New(cfg.Scene())
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, s, err := newScene(cmd)
	if err != nil {
		return err
	}
	// the alt screen owns stdout and stderr until the program exits
	log = logging.Discard()
	return viz.Run(viz.NewModel(s, viz.Options{FPS: cfg.FPS, Theme: cfg.Theme, GIFPath: gifPath}))
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, s, err := newScene(cmd)
	if err != nil {
		return err
	}
	rate, err := windowFPS(cfg.FPS)
	if err != nil {
		return err
	}
	w, _ := cmd.Flags().GetInt32("window-width")
	h, _ := cmd.Flags().GetInt32("window-height")
	log.Info(cmd.Context(), "opening window", "width", w, "height", h, "fps", rate)
	gui.Run(s, gui.Options{Width: w, Height: h, FPS: rate})
	return nil
}

var errWindowRate = errors.New("the window needs at least 1 fps")

// windowFPS rounds the configured rate to raylib's whole-frame target.
func windowFPS(rate float64) (int32, error) {
	if !(rate >= 1) || rate > math.MaxInt32 {
		return 0, fmt.Errorf("%w, got %g", errWindowRate, rate)
	}
	return int32(math.Round(rate)), nil
}

func runMetrics() []sim.Metric {
	return []sim.Metric{
		metrics.NewRevolutionCounter(),
		metrics.NewBeltContainment(1e-6),
		metrics.NewMeanRadius("Earth"),
	}
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", runs)
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simCfg := sim.Config{Frames: cfg.Frames, FPS: cfg.FPS, Seed: cfg.Seed}
	fmt.Printf("running %d frame(s) at %.0f fps...\n", cfg.Frames, cfg.FPS)
	start := time.Now()

	var results []*sim.Result
	if runs == 1 {
		s, err := scene.New(cfg.Scene())
		if err != nil {
			return err
		}
		d := sim.New(s)
		for _, m := range runMetrics() {
			d.AddMetric(m)
		}
		result, err := d.Run(ctx, simCfg)
		switch {
		case errors.Is(err, context.Canceled) && result != nil:
			log.Warn(ctx, "run interrupted, saving partial recording", "frames", len(result.Times)-1)
		case err != nil:
			return err
		}
		results = append(results, result)
	} else {
		results, err = sim.NewEnsemble(cfg.Scene(), runMetrics, runs, cfg.Seed).Run(ctx, simCfg)
		if err != nil {
			return err
		}
	}
	elapsed := time.Since(start)

	name := preset
	if name == "" {
		name = "run"
	}
	for i, result := range results {
		info := storage.RunInfo{
			Preset: name,
			Seed:   cfg.Seed + int64(i),
			FPS:    cfg.FPS,
			Width:  cfg.Width,
			Height: cfg.Height,
		}
		runID, err := st.Save(info, result)
		if err != nil {
			return err
		}
		log.Info(logging.WithRunID(ctx, runID), "run saved", "frames", len(result.Times)-1, "seed", info.Seed)

		fmt.Printf("\nrun id: %s\n", runID)
		fmt.Printf("frames: %d\n", len(result.Times)-1)
		printMetrics(result.Metrics)
	}
	fmt.Printf("\ncompleted in %v\n", elapsed)
	return nil
}

func printMetrics(m map[string]float64) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	fmt.Println("metrics:")
	for _, k := range keys {
		fmt.Printf("  %-24s %.4f\n", k, m[k])
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario: %s\n", sc.Name)
	if sc.Description != "" {
		fmt.Printf("  %s\n", sc.Description)
	}
	results, err := automation.RunScenario(ctx, sc, runMetrics, os.Stdout)
	if err != nil {
		return err
	}

	for _, r := range results {
		name := r.Step.SaveAs
		if name == "" {
			name = r.Step.Preset
		}
		runID, err := st.Save(storage.RunInfo{
			Preset: name,
			Seed:   r.Config.Seed,
			FPS:    r.Config.FPS,
			Width:  r.Config.Width,
			Height: r.Config.Height,
		}, r.Result)
		if err != nil {
			return err
		}
		log.Info(logging.WithRunID(ctx, runID), "scenario step saved", "scenario", sc.Name)
		fmt.Printf("  saved %s\n", runID)
	}
	return nil
}

func runSweep(cmd *cobra.Command, args []string) error {
	lo, _ := cmd.Flags().GetFloat64("min")
	hi, _ := cmd.Flags().GetFloat64("max")
	steps, _ := cmd.Flags().GetInt("steps")
	name, _ := cmd.Flags().GetString("body")

	sweep := &automation.ParameterSweep{
		Preset:    preset,
		ParamName: args[0],
		ParamMin:  lo,
		ParamMax:  hi,
		NumSteps:  steps,
		Body:      name,
	}
	if cmd.Flags().Changed("frames") {
		sweep.Frames = frames
	}

	results, err := automation.RunSweep(cmd.Context(), sweep, os.Stderr)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tMIN R\tMEAN R\tMAX R\tREVS\n", strings.ToUpper(args[0]))
	for _, r := range results {
		fmt.Fprintf(w, "%.4f\t%.2f\t%.2f\t%.2f\t%d\n", r.ParamValue, r.MinRadius, r.MeanRadius, r.MaxRadius, r.Revolutions)
	}
	return w.Flush()
}
