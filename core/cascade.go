package core

// BandResult is the cascade evaluated at one band.
type BandResult struct {
	Band Band `json:"-"`

	// Max-power case: minimum amplifier gain, switch on.
	PadDB          float64 `json:"pad_db"`
	TotalGainDB    float64 `json:"total_gain_db"`
	OutputPowerDBm float64 `json:"output_power_dbm"`

	// Leakage case: maximum amplifier gain, switch off, no pad.
	LeakageDBm float64 `json:"leakage_dbm"`
}

// Cascade holds one BandResult per band, in Bands() order.
type Cascade struct {
	Results []BandResult
}

// At returns the result for band b.
func (c Cascade) At(b Band) (BandResult, bool) {
	for _, r := range c.Results {
		if r.Band == b {
			return r, true
		}
	}
	return BandResult{}, false
}

// EvaluateCascade sums gains and losses along the chain
// amplifier -> pad -> switch -> fixed attenuator -> divider for both the
// max-power and the leakage worst cases.
func EvaluateCascade(cfg SystemConfig, amp Amplifier, sw Switch) Cascade {
	in := cfg.InputPowerDBm
	out := Cascade{Results: make([]BandResult, 0, len(Bands()))}

	for _, b := range Bands() {
		gain := amp.GainAt(b)
		passive := cfg.FixedAttenuatorLossDB + cfg.DividerLossDB.At(b)

		pad := Attenuation(in, amp.P1dBm, gain.Min)
		total := gain.Min + sw.OnGainAt(b) + passive - pad

		out.Results = append(out.Results, BandResult{
			Band:           b,
			PadDB:          pad,
			TotalGainDB:    total,
			OutputPowerDBm: in + total,
			LeakageDBm:     in + gain.Max + sw.OffGainAt(b) + passive,
		})
	}
	return out
}
