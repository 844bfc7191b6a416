package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/signalsfoundry/rf-linkbudget/core"
	"github.com/signalsfoundry/rf-linkbudget/internal/logging"
	"github.com/signalsfoundry/rf-linkbudget/internal/observability"
	"github.com/signalsfoundry/rf-linkbudget/internal/report"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

const noSwitchMessage = "No suitable switch found!"

type rootOptions struct {
	amplifier   string
	catalogPath string
	configPath  string
	format      string
	noColor     bool
	metricsFile string
	logLevel    string
	logFormat   string
}

// NewRootCommand creates the linkbudget command. It runs one pass of the
// selection pipeline and prints the report.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "linkbudget",
		Short: "RF signal chain component selection and link budget check",
		Long: `linkbudget picks an amplifier and a switch from a component catalog,
sizes the attenuator pads that keep the amplifier out of compression,
and checks output power and switch-off leakage at 1 GHz and 20 GHz
against the system thresholds.

Without --amplifier the amplifier is chosen by weighted score; with it
the named amplifier is used as-is.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runLinkBudget(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.amplifier, "amplifier", "", "use this amplifier ID instead of scoring the catalog")
	flags.StringVar(&opts.catalogPath, "catalog", "", "JSON component catalog (default: built-in catalog)")
	flags.StringVar(&opts.configPath, "config", "", "YAML system config (default: built-in thresholds)")
	flags.StringVar(&opts.format, "format", string(report.FormatText), "report format: text or json")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	flags.StringVar(&opts.metricsFile, "metrics-file", "", "write Prometheus metrics to this file after the run")
	flags.StringVar(&opts.logLevel, "log-level", envOr("LOG_LEVEL", "warn"), "log level: debug, info, warn, error")
	flags.StringVar(&opts.logFormat, "log-format", envOr("LOG_FORMAT", "text"), "log format: text or json")

	return cmd
}

func runLinkBudget(ctx context.Context, out, errOut io.Writer, opts *rootOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	log := logging.New(logging.Config{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		Writer: errOut,
	})

	format, err := report.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	tracingCfg := observability.TracingConfigFromEnv()
	tracingCfg.Writer = errOut
	shutdown, err := observability.InitTracing(ctx, tracingCfg, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer observability.ShutdownWithTimeout(context.Background(), shutdown, log)

	catalog, err := loadCatalog(opts.catalogPath, opts.amplifier != "")
	if err != nil {
		return err
	}
	cfg, err := loadSystemConfig(opts.configPath)
	if err != nil {
		return err
	}

	var strategy core.AmplifierStrategy = core.ScoredAmplifier{Weights: cfg.ScoreWeights}
	if opts.amplifier != "" {
		strategy = core.FixedAmplifier{ID: opts.amplifier}
	}

	collector, err := observability.NewBudgetCollector(prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("init metrics: %w", err)
	}

	svc := core.NewLinkBudgetService(catalog, cfg, strategy,
		core.WithLogger(log),
		core.WithMetricsRecorder(collector),
	)
	rep, runErr := svc.Run(ctx)
	if runErr != nil {
		if err := writeMetrics(collector, opts.metricsFile); err != nil {
			log.Warn(ctx, "metrics export failed", logging.Err(err))
		}
		return runErr
	}

	renderer, err := report.NewRenderer(report.Options{
		Format:   format,
		Color:    !opts.noColor && isTerminal(out),
		ErrColor: !opts.noColor && isTerminal(errOut),
	})
	if err != nil {
		return err
	}
	if err := renderer.Render(out, errOut, rep, cfg); err != nil {
		return fmt.Errorf("render report: %w", err)
	}

	collector.RecordMargins(rep, cfg)
	return writeMetrics(collector, opts.metricsFile)
}

func loadCatalog(path string, fixed bool) (*core.Catalog, error) {
	switch {
	case path == "" && fixed:
		return core.DefaultFixedCatalog(), nil
	case path == "":
		return core.DefaultCatalog(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return core.LoadCatalog(f)
}

func loadSystemConfig(path string) (core.SystemConfig, error) {
	if path == "" {
		return core.DefaultSystemConfig(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return core.SystemConfig{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return core.LoadSystemConfig(f)
}

func writeMetrics(c *observability.BudgetCollector, path string) error {
	if path == "" {
		return nil
	}
	return c.WriteTextfile(path)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// ErrorMessage is the line printed for a failed run.
func ErrorMessage(err error) string {
	if errors.Is(err, core.ErrNoSuitableSwitch) {
		return noSwitchMessage
	}
	return fmt.Sprintf("Error: %v", err)
}

// ExitCode maps a run error to a process exit status. A completed run is
// 0 even when the chain misses its thresholds.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
