// Package main provides the CLI entrypoint for weatherman.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/termkit/internal/config"
	"github.com/verte-zerg/termkit/internal/logging"
	"github.com/verte-zerg/termkit/internal/model"
	"github.com/verte-zerg/termkit/internal/report"
	"github.com/verte-zerg/termkit/internal/textfmt"
	"github.com/verte-zerg/termkit/internal/weather"
)

var (
	yearlyArg  string
	monthlyArg string
	graphArg   string
	colorArg   string
	logLevel   string
	configPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "weatherman DIR",
		Short:         "Weather file reports",
		Long:          "Summarize weather log files: yearly extremes, monthly averages and a daily temperature graph.",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReportCmd,
	}

	rootCmd.Flags().StringVarP(&yearlyArg, "yearly", "e", "", "yearly extremes for YYYY")
	rootCmd.Flags().StringVarP(&monthlyArg, "monthly", "a", "", "monthly averages for YYYY/MM")
	rootCmd.Flags().StringVarP(&graphArg, "graph", "c", "", "daily temperature graph for YYYY/MM")
	rootCmd.Flags().StringVar(&colorArg, "color", "", "graph color: auto, always or never (default from config)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file path (default: $XDG_CONFIG_HOME/termkit/config.toml)")

	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.Edit(resolveConfigPath())
		},
	}
}

type reportJob struct {
	kind string
	sel  weather.Selector
}

func runReportCmd(cmd *cobra.Command, args []string) error {
	dir := args[0]
	if err := weather.ValidateDir(dir); err != nil {
		return err
	}
	jobs, err := parseJobs()
	if err != nil {
		return err
	}

	fileCfg, err := config.LoadConfig(resolveConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	level, format := config.ResolveLog(fileCfg)
	if logLevel != "" {
		level = logLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level, format)
	if err != nil {
		return err
	}
	weatherCfg := config.ResolveWeather(fileCfg)
	mode, err := colorMode(colorArg, weatherCfg)
	if err != nil {
		return err
	}

	if len(jobs) == 0 {
		logger.Warn("no report requested; pass -e, -a or -c")
		return nil
	}

	paths, err := weather.ListFiles(dir)
	if err != nil {
		return err
	}
	logger.Debug("listed weather files", "dir", dir, "count", len(paths))

	r := &reporter{
		out:    cmd.OutOrStdout(),
		paths:  paths,
		logger: logger,
		opts:   weather.ParseOptions{DateColumns: weatherCfg.DateColumns, Logger: logger},
		color:  textfmt.UseColor(cmd.OutOrStdout(), mode),
	}
	for _, job := range jobs {
		if err := r.run(job); err != nil {
			return err
		}
	}
	return nil
}

func parseJobs() ([]reportJob, error) {
	var jobs []reportJob
	if yearlyArg != "" {
		sel, err := weather.ParseYearSelector(yearlyArg)
		if err != nil {
			return nil, fmt.Errorf("-e: %w", err)
		}
		jobs = append(jobs, reportJob{kind: "yearly", sel: sel})
	}
	if monthlyArg != "" {
		sel, err := weather.ParseMonthSelector(monthlyArg)
		if err != nil {
			return nil, fmt.Errorf("-a: %w", err)
		}
		jobs = append(jobs, reportJob{kind: "monthly", sel: sel})
	}
	if graphArg != "" {
		sel, err := weather.ParseMonthSelector(graphArg)
		if err != nil {
			return nil, fmt.Errorf("-c: %w", err)
		}
		jobs = append(jobs, reportJob{kind: "graph", sel: sel})
	}
	return jobs, nil
}

type reporter struct {
	out    io.Writer
	paths  []string
	logger *slog.Logger
	opts   weather.ParseOptions
	color  bool
}

func (r *reporter) run(job reportJob) error {
	records, err := r.load(job.sel)
	if err != nil {
		return err
	}
	switch job.kind {
	case "yearly":
		var metrics *weather.YearlyMetrics
		if records != nil {
			m, err := weather.ComputeYearly(records)
			ok, err := r.computed(job, err)
			if err != nil {
				return err
			}
			if ok {
				metrics = &m
			}
		}
		return report.RenderYearly(r.out, job.sel, metrics)
	case "monthly":
		var metrics *weather.MonthlyMetrics
		if records != nil {
			m, err := weather.ComputeMonthly(records)
			ok, err := r.computed(job, err)
			if err != nil {
				return err
			}
			if ok {
				metrics = &m
			}
		}
		return report.RenderMonthly(r.out, job.sel, metrics)
	default:
		var series *weather.Series
		if records != nil {
			s := weather.DailySeries(records)
			series = &s
		}
		return report.RenderGraph(r.out, job.sel, series, report.GraphOptions{Color: r.color})
	}
}

// load returns nil records, without error, when no file matches.
func (r *reporter) load(sel weather.Selector) ([]model.WeatherRecord, error) {
	records, err := weather.LoadRecords(r.paths, sel, r.opts)
	if errors.Is(err, weather.ErrNoMatchingFiles) {
		r.logger.Info("no weather files matched", "selector", sel.String())
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load weather files: %w", err)
	}
	if records == nil {
		records = []model.WeatherRecord{}
	}
	return records, nil
}

// computed reports whether aggregation produced metrics. An empty set is
// logged and rendered as missing data.
func (r *reporter) computed(job reportJob, err error) (bool, error) {
	if errors.Is(err, weather.ErrEmptyAggregationSet) {
		r.logger.Warn("no readings to aggregate", "report", job.kind, "selector", job.sel.String(), "err", err)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func colorMode(flag string, cfg model.WeatherConfig) (textfmt.ColorMode, error) {
	switch flag {
	case "":
		if cfg.Color {
			return textfmt.ColorAuto, nil
		}
		return textfmt.ColorNever, nil
	case "auto":
		return textfmt.ColorAuto, nil
	case "always":
		return textfmt.ColorAlways, nil
	case "never":
		return textfmt.ColorNever, nil
	default:
		return 0, fmt.Errorf("--color must be auto, always or never")
	}
}

func resolveConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.DefaultConfigPath()
}
