package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/signalsfoundry/rf-linkbudget/core"
)

// BudgetCollector bundles Prometheus metrics for link budget runs. It
// satisfies core.BudgetMetricsRecorder.
type BudgetCollector struct {
	gatherer prometheus.Gatherer

	Runs              *prometheus.CounterVec
	SelectionFailures *prometheus.CounterVec
	RunDuration       prometheus.Histogram

	OutputPower *prometheus.GaugeVec
	Leakage     *prometheus.GaugeVec
	Pad         *prometheus.GaugeVec
	Margin      *prometheus.GaugeVec

	SelectedCost *prometheus.GaugeVec
}

// NewBudgetCollector registers link budget metrics against the provided
// registerer, defaulting to the global Prometheus registry when nil.
func NewBudgetCollector(reg prometheus.Registerer) (*BudgetCollector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	runs, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkbudget_runs_total",
		Help: "Completed link budget runs, labeled by amplifier strategy and result (pass, fail).",
	}, []string{"strategy", "result"}), "linkbudget_runs_total")
	if err != nil {
		return nil, err
	}

	failures, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "linkbudget_selection_failures_total",
		Help: "Runs aborted because no component could be selected, labeled by strategy and component.",
	}, []string{"strategy", "component"}), "linkbudget_selection_failures_total")
	if err != nil {
		return nil, err
	}

	duration, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkbudget_run_duration_seconds",
		Help:    "Wall time of a link budget run.",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}), "linkbudget_run_duration_seconds")
	if err != nil {
		return nil, err
	}

	output, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "linkbudget_output_power_dbm",
		Help: "Max-power case output power per band in dBm.",
	}, []string{"band"}), "linkbudget_output_power_dbm")
	if err != nil {
		return nil, err
	}

	leakage, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "linkbudget_leakage_dbm",
		Help: "Switch-off leakage per band in dBm.",
	}, []string{"band"}), "linkbudget_leakage_dbm")
	if err != nil {
		return nil, err
	}

	pad, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "linkbudget_pad_db",
		Help: "Attenuation applied to keep the amplifier below compression, per band.",
	}, []string{"band"}), "linkbudget_pad_db")
	if err != nil {
		return nil, err
	}

	margin, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "linkbudget_margin_db",
		Help: "Distance to each threshold per band and metric; negative means the threshold is missed.",
	}, []string{"band", "metric"}), "linkbudget_margin_db")
	if err != nil {
		return nil, err
	}

	selectedCost, err := registerGaugeVec(reg, prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "linkbudget_selected_component_cost",
		Help: "Cost of the selected component, labeled by component kind and id.",
	}, []string{"component", "id"}), "linkbudget_selected_component_cost")
	if err != nil {
		return nil, err
	}

	return &BudgetCollector{
		gatherer:          gatherer,
		Runs:              runs,
		SelectionFailures: failures,
		RunDuration:       duration,
		OutputPower:       output,
		Leakage:           leakage,
		Pad:               pad,
		Margin:            margin,
		SelectedCost:      selectedCost,
	}, nil
}

// Gatherer returns the Prometheus gatherer associated with the collector.
func (c *BudgetCollector) Gatherer() prometheus.Gatherer {
	if c == nil {
		return nil
	}
	return c.gatherer
}

// WriteTextfile writes every gathered metric to path in the Prometheus
// text format, suitable for the node_exporter textfile collector.
func (c *BudgetCollector) WriteTextfile(path string) error {
	gatherer := c.Gatherer()
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	if err := prometheus.WriteToTextfile(path, gatherer); err != nil {
		return fmt.Errorf("write metrics textfile %q: %w", path, err)
	}
	return nil
}

// RecordSelectionFailure counts a run aborted by a selection error.
func (c *BudgetCollector) RecordSelectionFailure(strategy, component string) {
	if c == nil || c.SelectionFailures == nil {
		return
	}
	c.SelectionFailures.WithLabelValues(strategy, component).Inc()
}

// RecordEvaluation stores the per-band results of a completed run.
func (c *BudgetCollector) RecordEvaluation(r *core.Report, elapsed time.Duration) {
	if c == nil || r == nil {
		return
	}

	result := "fail"
	if r.Verdict.Pass {
		result = "pass"
	}
	if c.Runs != nil {
		c.Runs.WithLabelValues(r.Strategy, result).Inc()
	}
	if c.RunDuration != nil {
		c.RunDuration.Observe(elapsed.Seconds())
	}
	if c.SelectedCost != nil {
		c.SelectedCost.WithLabelValues("amplifier", r.Amplifier.ID).Set(r.Amplifier.Cost.InexactFloat64())
		c.SelectedCost.WithLabelValues("switch", r.Switch.ID).Set(r.Switch.Cost.InexactFloat64())
	}

	for _, br := range r.Cascade.Results {
		band := br.Band.Key()
		if c.OutputPower != nil {
			c.OutputPower.WithLabelValues(band).Set(br.OutputPowerDBm)
		}
		if c.Leakage != nil {
			c.Leakage.WithLabelValues(band).Set(br.LeakageDBm)
		}
		if c.Pad != nil {
			c.Pad.WithLabelValues(band).Set(br.PadDB)
		}
	}
}

// RecordMargins stores threshold margins for a completed run. Positive
// margins mean the threshold is met with room to spare.
func (c *BudgetCollector) RecordMargins(r *core.Report, cfg core.SystemConfig) {
	if c == nil || r == nil || c.Margin == nil {
		return
	}
	for _, br := range r.Cascade.Results {
		band := br.Band.Key()
		c.Margin.WithLabelValues(band, core.MetricOutputPower).Set(br.OutputPowerDBm - cfg.MinOutputPowerDBm.At(br.Band))
		c.Margin.WithLabelValues(band, core.MetricLeakage).Set(cfg.MaxLeakageDBm.At(br.Band) - br.LeakageDBm)
	}
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerGaugeVec(reg prometheus.Registerer, vec *prometheus.GaugeVec, name string) (*prometheus.GaugeVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.GaugeVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}
