package core

import (
	"context"
	"errors"
	"time"

	"github.com/signalsfoundry/rf-linkbudget/internal/logging"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/signalsfoundry/rf-linkbudget/core"

// BudgetMetricsRecorder receives the outcome of every pipeline run.
type BudgetMetricsRecorder interface {
	RecordSelectionFailure(strategy, component string)
	RecordEvaluation(r *Report, elapsed time.Duration)
}

// Report is everything a run produced. It holds no timestamps or run IDs,
// so two runs over the same inputs yield equal reports.
type Report struct {
	Strategy   string
	Amplifier  Amplifier
	Switch     Switch
	Candidates []SwitchCandidate
	Cascade    Cascade
	Verdict    Verdict
}

// LinkBudgetService runs the selection and verification pipeline:
// amplifier strategy -> switch selector -> cascade -> threshold check.
type LinkBudgetService struct {
	Catalog  *Catalog
	Config   SystemConfig
	Strategy AmplifierStrategy

	log     logging.Logger
	metrics BudgetMetricsRecorder
	tracer  trace.Tracer
}

// LinkBudgetOption configures optional collaborators.
type LinkBudgetOption func(*LinkBudgetService)

// WithLogger sets the base logger; defaults to Noop.
func WithLogger(l logging.Logger) LinkBudgetOption {
	return func(s *LinkBudgetService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithMetricsRecorder attaches an optional metrics recorder.
func WithMetricsRecorder(m BudgetMetricsRecorder) LinkBudgetOption {
	return func(s *LinkBudgetService) {
		s.metrics = m
	}
}

// WithTracer overrides the tracer taken from the global provider.
func WithTracer(t trace.Tracer) LinkBudgetOption {
	return func(s *LinkBudgetService) {
		if t != nil {
			s.tracer = t
		}
	}
}

func NewLinkBudgetService(catalog *Catalog, cfg SystemConfig, strategy AmplifierStrategy, opts ...LinkBudgetOption) *LinkBudgetService {
	s := &LinkBudgetService{
		Catalog:  catalog,
		Config:   cfg,
		Strategy: strategy,
		log:      logging.Noop(),
	}
	if s.Strategy == nil {
		s.Strategy = FixedAmplifier{ID: DefaultFixedAmplifierID}
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer(tracerName)
	}
	return s
}

// Run executes the pipeline once. A *SelectionError aborts the run; a
// chain that misses its thresholds is returned with a failing Verdict and
// a nil error.
func (s *LinkBudgetService) Run(ctx context.Context) (*Report, error) {
	ctx, log := logging.WithRunLogger(ctx, s.log)
	log = log.With(logging.String("strategy", s.Strategy.Name()))

	ctx, span := s.tracer.Start(ctx, "link_budget.run",
		trace.WithAttributes(attribute.String("strategy", s.Strategy.Name())))
	defer span.End()

	start := time.Now()
	report := &Report{Strategy: s.Strategy.Name()}

	amp, err := s.selectAmplifier(ctx)
	if err != nil {
		s.fail(ctx, span, log, "amplifier", err)
		return nil, err
	}
	report.Amplifier = amp
	fields := []logging.Field{
		logging.String("amplifier", amp.ID),
		logging.String("cost", amp.Cost.String()),
	}
	if scored, ok := s.Strategy.(ScoredAmplifier); ok {
		fields = append(fields, logging.Float64("score", ScoreAmplifier(amp, scored.Weights)))
	}
	log.Info(ctx, "amplifier selected", fields...)

	sw, candidates, err := s.selectSwitch(ctx, amp)
	report.Candidates = candidates
	for _, c := range candidates {
		log.Debug(ctx, "switch candidate",
			logging.String("switch", c.Switch.ID),
			logging.Bool("qualified", c.Qualified),
			logging.Strings("reasons", c.Reasons))
	}
	if err != nil {
		s.fail(ctx, span, log, "switch", err)
		return nil, err
	}
	report.Switch = sw
	log.Info(ctx, "switch selected",
		logging.String("switch", sw.ID),
		logging.String("cost", sw.Cost.String()))

	_, cascadeSpan := s.tracer.Start(ctx, "link_budget.evaluate_cascade")
	report.Cascade = EvaluateCascade(s.Config, amp, sw)
	cascadeSpan.End()

	_, checkSpan := s.tracer.Start(ctx, "link_budget.check_specification")
	report.Verdict = CheckSpecification(s.Config, report.Cascade)
	checkSpan.SetAttributes(attribute.Bool("pass", report.Verdict.Pass))
	checkSpan.End()

	for _, r := range report.Cascade.Results {
		log.Debug(ctx, "band evaluated",
			logging.String("band", r.Band.String()),
			logging.Float64("pad_db", r.PadDB),
			logging.Float64("output_power_dbm", r.OutputPowerDBm),
			logging.Float64("leakage_dbm", r.LeakageDBm))
	}
	if report.Verdict.Pass {
		log.Info(ctx, "system meets specifications")
	} else {
		log.Warn(ctx, "system failed to meet specifications",
			logging.Err(report.Verdict.Err()))
	}

	span.SetAttributes(
		attribute.String("amplifier", amp.ID),
		attribute.String("switch", sw.ID),
		attribute.Bool("pass", report.Verdict.Pass),
	)
	if s.metrics != nil {
		s.metrics.RecordEvaluation(report, time.Since(start))
	}
	return report, nil
}

func (s *LinkBudgetService) selectAmplifier(ctx context.Context) (Amplifier, error) {
	_, span := s.tracer.Start(ctx, "link_budget.select_amplifier")
	defer span.End()

	amp, err := s.Strategy.SelectAmplifier(s.Catalog)
	if err == nil {
		span.SetAttributes(attribute.String("amplifier", amp.ID))
	}
	return amp, err
}

// selectSwitch sizes the switch against the amplifier's minimum gain, the
// worst case for delivered power.
func (s *LinkBudgetService) selectSwitch(ctx context.Context, amp Amplifier) (Switch, []SwitchCandidate, error) {
	_, span := s.tracer.Start(ctx, "link_budget.select_switch")
	defer span.End()

	minGain := PerBand{At1GHz: amp.Gain1GHz.Min, At20GHz: amp.Gain20GHz.Min}
	candidates := QualifySwitches(s.Catalog.Switches(), s.Config, s.Config.InputPowerDBm, minGain)
	sw, err := pickSwitch(candidates)
	if err == nil {
		span.SetAttributes(attribute.String("switch", sw.ID))
	}
	return sw, candidates, err
}

func (s *LinkBudgetService) fail(ctx context.Context, span trace.Span, log logging.Logger, component string, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	log.Error(ctx, "component selection failed",
		logging.String("component", component),
		logging.Err(err))
	if s.metrics != nil {
		var se *SelectionError
		if errors.As(err, &se) && se.Component != "" {
			component = se.Component
		}
		s.metrics.RecordSelectionFailure(s.Strategy.Name(), component)
	}
}
