package core

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoSuitableSwitch = errors.New("no suitable switch found")
	ErrUnknownAmplifier = errors.New("amplifier not in catalog")
	ErrNoAmplifiers     = errors.New("amplifier catalog is empty")
)

// SelectionError reports that no component could be selected. It ends the
// run: the catalog is static, so retrying gives the same answer.
type SelectionError struct {
	Component string // "amplifier" or "switch"
	Reason    string
	Err       error
}

func (e *SelectionError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s selection failed: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("%s selection failed: %v (%s)", e.Component, e.Err, e.Reason)
}

func (e *SelectionError) Unwrap() error { return e.Err }

// IsSelectionError reports whether err carries a *SelectionError.
func IsSelectionError(err error) bool {
	var se *SelectionError
	return errors.As(err, &se)
}

// Violation is one failed threshold comparison.
type Violation struct {
	Band      Band    `json:"-"`
	Metric    string  `json:"metric"` // "output_power" or "leakage"
	ValueDBm  float64 `json:"value_dbm"`
	LimitDBm  float64 `json:"limit_dbm"`
	BandLabel string  `json:"band"`
}

func (v Violation) String() string {
	switch v.Metric {
	case MetricLeakage:
		return fmt.Sprintf("leakage at %s is %.2f dBm, above %.2f dBm", v.Band, v.ValueDBm, v.LimitDBm)
	default:
		return fmt.Sprintf("max power output at %s is %.2f dBm, below %.2f dBm", v.Band, v.ValueDBm, v.LimitDBm)
	}
}

// SpecificationViolation is the non-fatal outcome of a chain that was
// built but misses one or more thresholds.
type SpecificationViolation struct {
	Violations []Violation
}

func (e *SpecificationViolation) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return "system failed to meet specifications: " + strings.Join(parts, "; ")
}
