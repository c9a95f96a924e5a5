package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/stride/internal/config"
	"github.com/san-kum/stride/internal/demo"
	"github.com/san-kum/stride/internal/tui"
	"github.com/san-kum/stride/internal/viz"
)

var (
	start      float64
	stop       float64
	size       float64
	minStep    float64
	tolerance  float64
	inclusive  bool
	width      float64
	errorScale float64
	profile    string
	sequence   []float64
	stops      []float64
	configFile string
	preset     string
	csvPath    string
	jsonPath   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "stride",
		Short: "adaptive step-size control lab",
	}

	runCmd := &cobra.Command{
		Use:   "run [stepper]",
		Short: "run a traversal over a demo profile",
		Args:  cobra.ExactArgs(1),
		RunE:  runTraversal,
	}
	addTraversalFlags(runCmd)
	runCmd.Flags().StringVar(&csvPath, "csv", "", "export attempts to CSV file")
	runCmd.Flags().StringVar(&jsonPath, "json", "", "export attempts to JSON file")

	liveCmd := &cobra.Command{
		Use:   "live [stepper]",
		Short: "watch a traversal step by step",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addTraversalFlags(liveCmd)

	compareCmd := &cobra.Command{
		Use:   "compare [stepper1] [stepper2] ...",
		Short: "run several steppers over the same profile",
		Args:  cobra.MinimumNArgs(2),
		RunE:  compareSteppers,
	}
	addTraversalFlags(compareCmd)

	initCmd := &cobra.Command{
		Use:   "init-config [path]",
		Short: "write a default configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, compareCmd, initCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addTraversalFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&start, "start", config.DefaultStart, "start of range")
	cmd.Flags().Float64Var(&stop, "stop", config.DefaultStop, "end of range")
	cmd.Flags().Float64Var(&size, "size", config.DefaultSize, "suggested step size")
	cmd.Flags().Float64Var(&minStep, "min-step", 0, "smallest permissible step")
	cmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "error acceptance threshold")
	cmd.Flags().BoolVar(&inclusive, "inclusive", false, "evaluate the start position too")
	cmd.Flags().Float64Var(&width, "width", config.DefaultWidth, "demo profile transition width")
	cmd.Flags().Float64Var(&errorScale, "error-scale", config.DefaultErrorScale, "normalization scale for errors")
	cmd.Flags().StringVar(&profile, "profile", "tanh", "demo profile (tanh, ramp, pulse)")
	cmd.Flags().Float64SliceVar(&sequence, "sizes", nil, "prescribed sizes (sequence stepper)")
	cmd.Flags().Float64SliceVar(&stops, "stops", nil, "checkpoint positions (checkpoint stepper)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func buildConfig(stepper string) (*config.Config, error) {
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
			return nil, fmt.Errorf("unknown preset: %s", preset)
		}
	default:
		cfg = config.DefaultConfig()
		cfg.Start = start
		cfg.Stop = stop
		cfg.Size = size
		cfg.MinStep = minStep
		cfg.Tolerance = tolerance
		cfg.Inclusive = inclusive
		cfg.Sequence = sequence
		cfg.Checkpoints = stops
		cfg.Demo.Profile = profile
		cfg.Demo.Width = width
		cfg.Demo.ErrorScale = errorScale
	}
	if stepper != "" {
		cfg.Stepper = stepper
	}
	return cfg, nil
}

func runOne(cfg *config.Config) (*demo.Result, error) {
	w, err := demo.BuildStepper(cfg)
	if err != nil {
		return nil, err
	}
	prof, err := demo.ByName(cfg.Demo.Profile, cfg.Stop-cfg.Start, cfg.Demo.Width)
	if err != nil {
		return nil, err
	}
	return demo.Run(w, prof, cfg.Demo.ErrorScale)
}

func runTraversal(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}

	res, runErr := runOne(cfg)
	if res == nil {
		return runErr
	}

	fmt.Println(viz.Summary(cfg.Stepper, res, runErr))
	if plot := viz.SizePlot(res); plot != "" {
		fmt.Println(plot)
		fmt.Println()
	}
	if plot := viz.ValuePlot(res); plot != "" {
		fmt.Println(plot)
		fmt.Println()
	}

	if csvPath != "" {
		if err := exportCSV(csvPath, res); err != nil {
			return err
		}
	}
	if jsonPath != "" {
		if err := exportJSON(jsonPath, res); err != nil {
			return err
		}
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(args[0])
	if err != nil {
		return err
	}
	w, err := demo.BuildStepper(cfg)
	if err != nil {
		return err
	}
	prof, err := demo.ByName(cfg.Demo.Profile, cfg.Stop-cfg.Start, cfg.Demo.Width)
	if err != nil {
		return err
	}
	return tui.Run(w, prof, cfg.Demo.ErrorScale)
}

func compareSteppers(cmd *cobra.Command, args []string) error {
	configs := make([]*config.Config, len(args))
	for i, name := range args {
		cfg, err := buildConfig(name)
		if err != nil {
			return err
		}
		configs[i] = cfg
	}
	results, errs := demo.NewBatch(configs).Run()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "stepper\tattempts\taccepted\trejected\tfinal\tmax err\tstatus")
	for i, name := range args {
		res, runErr := results[i], errs[i]
		if res == nil {
			return runErr
		}
		status := "completed"
		if runErr != nil {
			status = runErr.Error()
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%g\t%.3g\t%s\n",
			name, res.Attempts, res.Accepted, res.Attempts-res.Accepted,
			res.Final, res.MaxAcceptedError(), status)
	}
	return tw.Flush()
}

func exportCSV(path string, res *demo.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"position", "size", "value", "error", "accepted"}); err != nil {
		return err
	}
	for i := range res.Positions {
		rec := []string{
			strconv.FormatFloat(res.Positions[i], 'g', -1, 64),
			strconv.FormatFloat(res.Sizes[i], 'g', -1, 64),
			strconv.FormatFloat(res.Values[i], 'g', -1, 64),
			strconv.FormatFloat(res.Errors[i], 'g', -1, 64),
			strconv.FormatBool(res.Successes[i]),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func exportJSON(path string, res *demo.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
