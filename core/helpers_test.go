package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) <= tolerance
}

func mustCatalog(t *testing.T, amps []Amplifier, switches []Switch) *Catalog {
	t.Helper()
	c, err := NewCatalog(amps, switches)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	return c
}

func mustAmplifier(t *testing.T, c *Catalog, id string) Amplifier {
	t.Helper()
	amp, ok := c.Amplifier(id)
	if !ok {
		t.Fatalf("amplifier %q not in catalog", id)
	}
	return amp
}

func mustSwitch(t *testing.T, c *Catalog, id string) Switch {
	t.Helper()
	sw, ok := c.Switch(id)
	if !ok {
		t.Fatalf("switch %q not in catalog", id)
	}
	return sw
}

func minGain(a Amplifier) PerBand {
	return PerBand{At1GHz: a.Gain1GHz.Min, At20GHz: a.Gain20GHz.Min}
}
