package core

import (
	"fmt"
	"math"
)

// AmplifierStrategy picks the amplifier the chain is built around.
type AmplifierStrategy interface {
	SelectAmplifier(c *Catalog) (Amplifier, error)
	Name() string
}

// FixedAmplifier always uses the amplifier with the given ID.
type FixedAmplifier struct {
	ID string
}

func (f FixedAmplifier) Name() string { return "fixed" }

func (f FixedAmplifier) SelectAmplifier(c *Catalog) (Amplifier, error) {
	amp, ok := c.Amplifier(f.ID)
	if !ok {
		return Amplifier{}, &SelectionError{
			Component: "amplifier",
			Reason:    fmt.Sprintf("id %q", f.ID),
			Err:       ErrUnknownAmplifier,
		}
	}
	return amp, nil
}

// ScoreWeights weight the terms of the amplifier score. Gain and power
// handling enter as reciprocals, so larger is better; cost enters linearly.
type ScoreWeights struct {
	Gain          float64 `yaml:"gain" json:"gain"`
	PowerHandling float64 `yaml:"power_handling" json:"power_handling"`
	Cost          float64 `yaml:"cost" json:"cost"`
}

// DefaultScoreWeights returns 0.5 gain, 0.3 power handling, 0.2 cost.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Gain:          0.5,
		PowerHandling: 0.3,
		Cost:          0.2,
	}
}

// Validate rejects negative or non-finite weights.
func (w ScoreWeights) Validate() error {
	names := []string{"gain", "power_handling", "cost"}
	for i, v := range []float64{w.Gain, w.PowerHandling, w.Cost} {
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("score weight %s must be a finite non-negative number, got %v", names[i], v)
		}
	}
	return nil
}

// ScoreAmplifier is the weighted-reciprocal heuristic; lower is better.
func ScoreAmplifier(a Amplifier, w ScoreWeights) float64 {
	gainTerm := 1/a.Gain1GHz.Typical() + 1/a.Gain20GHz.Typical()
	return w.Gain*gainTerm + w.PowerHandling*(1/a.P1dBm) + w.Cost*a.Cost.InexactFloat64()
}

// ScoredAmplifier picks the amplifier with the lowest score. On equal
// score the one listed first wins.
type ScoredAmplifier struct {
	Weights ScoreWeights
}

func (s ScoredAmplifier) Name() string { return "scored" }

func (s ScoredAmplifier) SelectAmplifier(c *Catalog) (Amplifier, error) {
	amps := c.Amplifiers()
	if len(amps) == 0 {
		return Amplifier{}, &SelectionError{Component: "amplifier", Err: ErrNoAmplifiers}
	}

	best := amps[0]
	bestScore := ScoreAmplifier(best, s.Weights)
	for _, amp := range amps[1:] {
		if score := ScoreAmplifier(amp, s.Weights); score < bestScore {
			best, bestScore = amp, score
		}
	}
	return best, nil
}
