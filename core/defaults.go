package core

import "github.com/shopspring/decimal"

// DefaultFixedAmplifierID is the amplifier the fixed variant uses when
// none is named.
const DefaultFixedAmplifierID = "Amp-E"

func typ(v float64) *float64 { return &v }

func cost(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// DefaultAmplifiers is the built-in amplifier shortlist.
func DefaultAmplifiers() []Amplifier {
	return []Amplifier{
		{ID: "Amp-A", Gain1GHz: GainRange{Min: 15.0, Typ: typ(17.0), Max: 19.0}, Gain20GHz: GainRange{Min: 14.0, Typ: typ(16.0), Max: 18.0}, P1dBm: 20.0, Cost: cost(20.0)},
		{ID: "Amp-B", Gain1GHz: GainRange{Min: 12.0, Typ: typ(14.0), Max: 15.0}, Gain20GHz: GainRange{Min: 8.0, Typ: typ(11.0), Max: 12.0}, P1dBm: 26.0, Cost: cost(60.0)},
		{ID: "Amp-C", Gain1GHz: GainRange{Min: 8.0, Typ: typ(10.0), Max: 12.0}, Gain20GHz: GainRange{Min: 8.0, Typ: typ(10.0), Max: 12.0}, P1dBm: 21.0, Cost: cost(21.0)},
		{ID: "Amp-D", Gain1GHz: GainRange{Min: 12.0, Typ: typ(14.0), Max: 15.0}, Gain20GHz: GainRange{Min: 13.0, Typ: typ(15.0), Max: 16.0}, P1dBm: 29.0, Cost: cost(77.0)},
		{ID: "Amp-E", Gain1GHz: GainRange{Min: 14.0, Typ: typ(15.0), Max: 17.5}, Gain20GHz: GainRange{Min: 13.0, Typ: typ(15.0), Max: 17.5}, P1dBm: 20.0, Cost: cost(17.5)},
		{ID: "Amp-F", Gain1GHz: GainRange{Min: 13.5, Typ: typ(14.5), Max: 15.0}, Gain20GHz: GainRange{Min: 14.0, Typ: typ(15.0), Max: 16.0}, P1dBm: 11.0, Cost: cost(33.0)},
	}
}

// DefaultSwitches is the built-in switch shortlist.
func DefaultSwitches() []Switch {
	return []Switch{
		{ID: "SW-A", On1GHz: -0.7, On20GHz: -1.4, Off1GHz: -65.0, Off20GHz: -55.0, P1dBm: 28.0, Cost: cost(45.0)},
		{ID: "SW-B", On1GHz: -0.1, On20GHz: -2.0, Off1GHz: -45.0, Off20GHz: -20.0, P1dBm: 27.0, Cost: cost(19.0)},
		{ID: "SW-C", On1GHz: -1.3, On20GHz: -1.8, Off1GHz: -60.0, Off20GHz: -35.0, P1dBm: 35.0, Cost: cost(13.0)},
		{ID: "SW-D", On1GHz: -0.8, On20GHz: -1.6, Off1GHz: -65.0, Off20GHz: -45.0, P1dBm: 28.0, Cost: cost(35.0)},
		{ID: "SW-E", On1GHz: -1.5, On20GHz: -2.5, Off1GHz: -60.0, Off20GHz: -40.0, P1dBm: 27.5, Cost: cost(24.0)},
		{ID: "SW-F", On1GHz: -1.1, On20GHz: -1.5, Off1GHz: -60.0, Off20GHz: -34.0, P1dBm: 27.5, Cost: cost(22.0)},
	}
}

// DefaultFixedAmplifier is the Amp-E record of the fixed-amplifier bench
// sheet. It quotes no typical gain and a lower 20 GHz maximum than the
// shortlist entry.
func DefaultFixedAmplifier() Amplifier {
	return Amplifier{
		ID:        DefaultFixedAmplifierID,
		Gain1GHz:  GainRange{Min: 14.0, Max: 17.5},
		Gain20GHz: GainRange{Min: 13.0, Max: 16.0},
		P1dBm:     20.0,
		Cost:      cost(17.5),
	}
}

// DefaultFixedAmplifiers is the shortlist with Amp-E replaced by
// DefaultFixedAmplifier.
func DefaultFixedAmplifiers() []Amplifier {
	amps := DefaultAmplifiers()
	for i := range amps {
		if amps[i].ID == DefaultFixedAmplifierID {
			amps[i] = DefaultFixedAmplifier()
		}
	}
	return amps
}

// DefaultCatalog builds the catalog the scored variant picks from.
func DefaultCatalog() *Catalog {
	return mustDefaultCatalog(DefaultAmplifiers())
}

// DefaultFixedCatalog builds the catalog the fixed variant resolves its
// amplifier ID against.
func DefaultFixedCatalog() *Catalog {
	return mustDefaultCatalog(DefaultFixedAmplifiers())
}

func mustDefaultCatalog(amps []Amplifier) *Catalog {
	c, err := NewCatalog(amps, DefaultSwitches())
	if err != nil {
		// the built-in records are valid; reaching here is a programming error
		panic(err)
	}
	return c
}

// DefaultSystemConfig returns the reference chain: 10 dBm drive, a 1 dB
// fixed pad and a 2-way divider.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		FixedAttenuatorLossDB: -1.0,
		DividerLossDB:         PerBand{At1GHz: -6.0, At20GHz: -7.0},
		InputPowerDBm:         10.0,
		MinOutputPowerDBm:     PerBand{At1GHz: 19.0, At20GHz: 16.0},
		MaxLeakageDBm:         PerBand{At1GHz: -145.0, At20GHz: -137.0},
		ScoreWeights:          DefaultScoreWeights(),
	}
}
