package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/crashplot/internal/config"
	"github.com/nao1215/crashplot/internal/log"
	"github.com/nao1215/crashplot/internal/model"
	"github.com/nao1215/crashplot/internal/pipeline"
	"github.com/nao1215/crashplot/internal/report"
)

// summaryHeading is the markdown heading printed above the summary table.
const summaryHeading = "Crash latency summary"

// NewRootCmd creates the root command for crashplot.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crashplot [csv_path]",
		Short: "Plot average crash latency per test category",
		Long: `crashplot reads a crash-timing CSV file, averages Time_ns per Test
category and writes the result as a bar chart.

The CSV must have a header row with the columns Test and Time_ns.
An optional SegFaulted column is counted in the --markdown and --json
summaries. When csv_path is omitted, mem_crash_results.csv in the current
directory is read.

Examples:
  # Read mem_crash_results.csv and write mem_crash_plot.png
  crashplot

  # Read another file and also print a markdown summary
  crashplot results/run-42.csv --markdown

  # Use the go-chart backend and a config file
  crashplot -r go-chart -c .crashplot.yaml`,
		Args:          cobra.MaximumNArgs(1),
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("log-format", config.LogFormatText,
		"Log format on stderr (text or json)")

	cmd.Flags().StringP("config", "c", "",
		"Path to a YAML configuration file")
	cmd.Flags().StringP("renderer", "r", config.DefaultRenderer,
		"Chart backend (gonum or go-chart)")
	cmd.Flags().StringP("output", "o", config.DefaultOutputPath,
		"Chart image path")
	cmd.Flags().BoolP("markdown", "m", false,
		"Print a markdown summary table")
	cmd.Flags().BoolP("json", "j", false,
		"Print the summary as JSON")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// runRootCmd executes the load, aggregate and render pipeline.
func runRootCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	logger := log.New(cmd.ErrOrStderr(), cfg.LogFormat, cfg.Verbose)
	logger.Debug("configuration",
		"input", cfg.InputPath,
		"output", cfg.OutputPath,
		"renderer", cfg.Renderer,
		"config_file", cfg.ConfigFilePath,
	)

	renderer, err := report.NewRenderer(cfg.Renderer, report.ChartOptionsFromConfig(cfg), logger)
	if err != nil {
		return err
	}

	p := pipeline.DefaultPipeline(renderer, summaryWriter(cmd, cfg), cmd.OutOrStdout(), logger)
	run := model.NewRun(cfg.InputPath, cfg.OutputPath)
	return p.Execute(cmd.Context(), run)
}

// buildConfig merges defaults, the optional config file, changed flags and
// the positional argument, in that order, and validates the result.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	flags := cmd.Flags()

	configPath, err := flags.GetString("config")
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		if err := applyConfigFile(cfg, configPath); err != nil {
			return nil, err
		}
	}

	if flags.Changed("renderer") {
		if cfg.Renderer, err = flags.GetString("renderer"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("output") {
		if cfg.OutputPath, err = flags.GetString("output"); err != nil {
			return nil, err
		}
	}
	if cfg.MarkdownReport, err = flags.GetBool("markdown"); err != nil {
		return nil, err
	}
	if cfg.JSONReport, err = flags.GetBool("json"); err != nil {
		return nil, err
	}
	if cfg.Verbose, err = flags.GetBool("verbose"); err != nil {
		return nil, err
	}
	if cfg.LogFormat, err = flags.GetString("log-format"); err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// applyConfigFile loads path (or its XDG fallback) into cfg.
func applyConfigFile(cfg *config.Config, path string) error {
	resolved := config.FindConfigFile(path)
	if resolved == "" {
		return fmt.Errorf("%w: %s", config.ErrConfigNotFound, path)
	}

	file, err := config.LoadConfigFile(resolved)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return fmt.Errorf("%w: %s", err, resolved)
		}
		return err
	}

	file.Apply(cfg)
	cfg.ConfigFilePath = resolved
	return nil
}

// summaryWriter returns the writer selected by --json or --markdown, or nil.
func summaryWriter(cmd *cobra.Command, cfg *config.Config) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(cmd.OutOrStdout(), report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(cmd.OutOrStdout(), report.WithHeading(summaryHeading))
	default:
		return nil
	}
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
