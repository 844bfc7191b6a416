package core

import (
	"errors"
	"strings"
	"testing"
)

func TestCheckSpecificationDefaultChainFails(t *testing.T) {
	c := DefaultFixedCatalog()
	cfg := DefaultSystemConfig()
	cascade := EvaluateCascade(cfg, mustAmplifier(t, c, "Amp-E"), mustSwitch(t, c, "SW-C"))

	v := CheckSpecification(cfg, cascade)
	if v.Pass {
		t.Fatalf("Pass = true, want false")
	}
	if len(v.Violations) != 4 {
		t.Fatalf("len(Violations) = %d, want 4: %v", len(v.Violations), v.Violations)
	}
	first := v.Violations[0]
	if first.Band != Band1GHz || first.Metric != MetricOutputPower || first.LimitDBm != 19 {
		t.Fatalf("Violations[0] = %+v, want 1 GHz output_power below 19", first)
	}

	err := v.Err()
	var sv *SpecificationViolation
	if !errors.As(err, &sv) {
		t.Fatalf("Err() = %T, want *SpecificationViolation", err)
	}
	if IsSelectionError(err) {
		t.Fatalf("specification failure reported as selection error")
	}
	if !strings.Contains(err.Error(), "leakage at 20 GHz") {
		t.Fatalf("Err() = %q, want leakage detail", err.Error())
	}
}

func TestCheckSpecificationPassesAtBoundary(t *testing.T) {
	cfg := DefaultSystemConfig()
	cfg.MinOutputPowerDBm = PerBand{At1GHz: 11, At20GHz: 10}
	cfg.MaxLeakageDBm = PerBand{At1GHz: -40, At20GHz: -15}
	cascade := Cascade{Results: []BandResult{
		{Band: Band1GHz, OutputPowerDBm: 11, LeakageDBm: -40},
		{Band: Band20GHz, OutputPowerDBm: 10, LeakageDBm: -15},
	}}

	v := CheckSpecification(cfg, cascade)
	if !v.Pass || len(v.Violations) != 0 {
		t.Fatalf("verdict = %+v, want pass at exact thresholds", v)
	}
	if v.Err() != nil {
		t.Fatalf("Err() = %v, want nil", v.Err())
	}
}

func TestCheckSpecificationSingleViolation(t *testing.T) {
	cfg := DefaultSystemConfig()
	cfg.MinOutputPowerDBm = PerBand{At1GHz: 0, At20GHz: 0}
	cfg.MaxLeakageDBm = PerBand{At1GHz: 0, At20GHz: -20}
	cascade := Cascade{Results: []BandResult{
		{Band: Band1GHz, OutputPowerDBm: 11.7, LeakageDBm: -39.5},
		{Band: Band20GHz, OutputPowerDBm: 10.2, LeakageDBm: -15.5},
	}}

	v := CheckSpecification(cfg, cascade)
	if v.Pass {
		t.Fatalf("Pass = true, want false")
	}
	if len(v.Violations) != 1 {
		t.Fatalf("len(Violations) = %d, want 1", len(v.Violations))
	}
	got := v.Violations[0]
	if got.Band != Band20GHz || got.Metric != MetricLeakage || got.ValueDBm != -15.5 || got.BandLabel != "20 GHz" {
		t.Fatalf("violation = %+v, want 20 GHz leakage -15.5", got)
	}
}

func TestCheckSpecificationMissingBand(t *testing.T) {
	cfg := DefaultSystemConfig()
	cfg.MinOutputPowerDBm = PerBand{}
	cfg.MaxLeakageDBm = PerBand{}
	cascade := Cascade{Results: []BandResult{{Band: Band1GHz, OutputPowerDBm: 5, LeakageDBm: -50}}}

	v := CheckSpecification(cfg, cascade)
	if v.Pass {
		t.Fatalf("Pass = true with a band missing")
	}
	if len(v.Violations) != 2 {
		t.Fatalf("len(Violations) = %d, want 2", len(v.Violations))
	}
	for _, viol := range v.Violations {
		if viol.Band != Band20GHz {
			t.Fatalf("violation band = %v, want 20 GHz", viol.Band)
		}
	}
}
