package core

const (
	MetricOutputPower = "output_power"
	MetricLeakage     = "leakage"
)

// Verdict is the outcome of checking a cascade against the thresholds.
type Verdict struct {
	Pass       bool
	Violations []Violation
}

// Err returns a *SpecificationViolation for a failing verdict, nil
// otherwise.
func (v Verdict) Err() error {
	if v.Pass {
		return nil
	}
	return &SpecificationViolation{Violations: append([]Violation(nil), v.Violations...)}
}

// CheckSpecification passes when every band delivers at least the
// minimum output power and leaks no more than the maximum leakage.
func CheckSpecification(cfg SystemConfig, c Cascade) Verdict {
	var violations []Violation
	for _, b := range Bands() {
		r, ok := c.At(b)
		if !ok {
			// a missing band can not be shown to meet either threshold
			violations = append(violations,
				Violation{Band: b, BandLabel: b.String(), Metric: MetricOutputPower, LimitDBm: cfg.MinOutputPowerDBm.At(b)},
				Violation{Band: b, BandLabel: b.String(), Metric: MetricLeakage, LimitDBm: cfg.MaxLeakageDBm.At(b)},
			)
			continue
		}
		if floor := cfg.MinOutputPowerDBm.At(b); r.OutputPowerDBm < floor {
			violations = append(violations, Violation{
				Band: b, BandLabel: b.String(), Metric: MetricOutputPower,
				ValueDBm: r.OutputPowerDBm, LimitDBm: floor,
			})
		}
		if ceiling := cfg.MaxLeakageDBm.At(b); r.LeakageDBm > ceiling {
			violations = append(violations, Violation{
				Band: b, BandLabel: b.String(), Metric: MetricLeakage,
				ValueDBm: r.LeakageDBm, LimitDBm: ceiling,
			})
		}
	}
	return Verdict{Pass: len(violations) == 0, Violations: violations}
}
