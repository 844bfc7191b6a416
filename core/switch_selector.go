package core

import (
	"fmt"
	"strings"
)

// SwitchCandidate is the verdict for one switch during selection.
type SwitchCandidate struct {
	Switch    Switch
	Qualified bool
	// Reasons lists every failed constraint; empty when Qualified.
	Reasons []string
}

// QualifySwitches checks every switch against the post-amplifier power
// targets and the input power-handling limit. ampGain holds the amplifier
// gain per band that the selection should assume (the minimum gain, for
// the worst case).
func QualifySwitches(switches []Switch, cfg SystemConfig, inputPowerDBm float64, ampGain PerBand) []SwitchCandidate {
	out := make([]SwitchCandidate, 0, len(switches))
	for _, sw := range switches {
		cand := SwitchCandidate{Switch: sw}
		for _, b := range Bands() {
			got := inputPowerDBm + ampGain.At(b) + sw.OnGainAt(b)
			if want := cfg.MinOutputPowerDBm.At(b); got < want {
				cand.Reasons = append(cand.Reasons,
					fmt.Sprintf("%.2f dBm at %s below %.2f dBm", got, b, want))
			}
		}
		if sw.P1dBm < inputPowerDBm {
			cand.Reasons = append(cand.Reasons,
				fmt.Sprintf("power handling %.2f dBm below input %.2f dBm", sw.P1dBm, inputPowerDBm))
		}
		cand.Qualified = len(cand.Reasons) == 0
		out = append(out, cand)
	}
	return out
}

// SelectSwitch returns the cheapest qualifying switch. On equal cost the
// one listed first wins. When nothing qualifies it returns a
// *SelectionError wrapping ErrNoSuitableSwitch.
func SelectSwitch(switches []Switch, cfg SystemConfig, inputPowerDBm float64, ampGain PerBand) (Switch, error) {
	return pickSwitch(QualifySwitches(switches, cfg, inputPowerDBm, ampGain))
}

func pickSwitch(candidates []SwitchCandidate) (Switch, error) {
	var (
		best  Switch
		found bool
	)
	for _, cand := range candidates {
		if !cand.Qualified {
			continue
		}
		if !found || cand.Switch.Cost.LessThan(best.Cost) {
			best = cand.Switch
			found = true
		}
	}
	if !found {
		return Switch{}, &SelectionError{
			Component: "switch",
			Reason:    describeRejections(candidates),
			Err:       ErrNoSuitableSwitch,
		}
	}
	return best, nil
}

func describeRejections(candidates []SwitchCandidate) string {
	if len(candidates) == 0 {
		return "no switches in catalog"
	}
	parts := make([]string, 0, len(candidates))
	for _, c := range candidates {
		parts = append(parts, c.Switch.ID+": "+strings.Join(c.Reasons, ", "))
	}
	return strings.Join(parts, "; ")
}
