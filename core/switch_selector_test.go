package core

import (
	"errors"
	"strings"
	"testing"
)

func TestSelectSwitchPicksCheapestQualifying(t *testing.T) {
	c := DefaultFixedCatalog()
	cfg := DefaultSystemConfig()
	amp := mustAmplifier(t, c, "Amp-E")

	sw, err := SelectSwitch(c.Switches(), cfg, cfg.InputPowerDBm, minGain(amp))
	if err != nil {
		t.Fatalf("SelectSwitch: %v", err)
	}
	if sw.ID != "SW-C" {
		t.Fatalf("selected switch = %q, want SW-C", sw.ID)
	}
}

func TestSelectedSwitchIsQualifiedAndCheapest(t *testing.T) {
	c := DefaultCatalog()
	cfg := DefaultSystemConfig()

	for _, amp := range c.Amplifiers() {
		candidates := QualifySwitches(c.Switches(), cfg, cfg.InputPowerDBm, minGain(amp))
		sw, err := pickSwitch(candidates)
		if err != nil {
			continue
		}
		for _, cand := range candidates {
			if cand.Switch.ID == sw.ID && !cand.Qualified {
				t.Fatalf("%s: selected %s is not qualified", amp.ID, sw.ID)
			}
			if cand.Qualified && cand.Switch.Cost.LessThan(sw.Cost) {
				t.Fatalf("%s: qualified %s is cheaper than selected %s", amp.ID, cand.Switch.ID, sw.ID)
			}
		}
		for _, b := range Bands() {
			got := cfg.InputPowerDBm + amp.GainAt(b).Min + sw.OnGainAt(b)
			if got < cfg.MinOutputPowerDBm.At(b) {
				t.Fatalf("%s/%s: %v dBm at %s below target", amp.ID, sw.ID, got, b)
			}
		}
		if sw.P1dBm < cfg.InputPowerDBm {
			t.Fatalf("%s/%s: power handling below input", amp.ID, sw.ID)
		}
	}
}

func TestQualifySwitchesRecordsReasons(t *testing.T) {
	c := DefaultCatalog()
	cfg := DefaultSystemConfig()
	amp := mustAmplifier(t, c, "Amp-C")

	candidates := QualifySwitches(c.Switches(), cfg, cfg.InputPowerDBm, minGain(amp))
	if len(candidates) != len(c.Switches()) {
		t.Fatalf("len(candidates) = %d, want %d", len(candidates), len(c.Switches()))
	}
	swA := candidates[0]
	if swA.Switch.ID != "SW-A" || swA.Qualified {
		t.Fatalf("candidate[0] = %s qualified=%v, want SW-A rejected", swA.Switch.ID, swA.Qualified)
	}
	// 10 + 8 - 0.7 misses 19 dBm at 1 GHz; 10 + 8 - 1.4 clears 16 dBm at 20 GHz.
	if len(swA.Reasons) != 1 || !strings.Contains(swA.Reasons[0], "1 GHz") {
		t.Fatalf("SW-A reasons = %v, want one 1 GHz shortfall", swA.Reasons)
	}
}

func TestQualifySwitchesChecksPowerHandling(t *testing.T) {
	cfg := DefaultSystemConfig()
	weak := Switch{ID: "SW-weak", On1GHz: -0.5, On20GHz: -0.5, Off1GHz: -60, Off20GHz: -60, P1dBm: 5, Cost: cost(1)}
	strong := Switch{ID: "SW-strong", On1GHz: -0.5, On20GHz: -0.5, Off1GHz: -60, Off20GHz: -60, P1dBm: 30, Cost: cost(2)}

	sw, err := SelectSwitch([]Switch{weak, strong}, cfg, cfg.InputPowerDBm, PerBand{At1GHz: 15, At20GHz: 15})
	if err != nil {
		t.Fatalf("SelectSwitch: %v", err)
	}
	if sw.ID != "SW-strong" {
		t.Fatalf("selected = %q, want SW-strong (SW-weak cannot take 10 dBm)", sw.ID)
	}
}

func TestSelectSwitchTieKeepsCatalogOrder(t *testing.T) {
	cfg := DefaultSystemConfig()
	first := Switch{ID: "SW-1", On1GHz: -1, On20GHz: -1, Off1GHz: -60, Off20GHz: -60, P1dBm: 30, Cost: cost(10)}
	second := first
	second.ID = "SW-2"

	sw, err := SelectSwitch([]Switch{first, second}, cfg, cfg.InputPowerDBm, PerBand{At1GHz: 15, At20GHz: 15})
	if err != nil {
		t.Fatalf("SelectSwitch: %v", err)
	}
	if sw.ID != "SW-1" {
		t.Fatalf("tie resolved to %q, want SW-1", sw.ID)
	}
}

func TestSelectSwitchNoneQualifying(t *testing.T) {
	c := DefaultCatalog()
	cfg := DefaultSystemConfig()
	amp := mustAmplifier(t, c, "Amp-C")

	_, err := SelectSwitch(c.Switches(), cfg, cfg.InputPowerDBm, minGain(amp))
	if !errors.Is(err, ErrNoSuitableSwitch) {
		t.Fatalf("err = %v, want ErrNoSuitableSwitch", err)
	}
	var se *SelectionError
	if !errors.As(err, &se) {
		t.Fatalf("err = %T, want *SelectionError", err)
	}
	if se.Component != "switch" {
		t.Fatalf("Component = %q, want switch", se.Component)
	}
	if !strings.Contains(se.Reason, "SW-A") {
		t.Fatalf("Reason = %q, want per-switch rejections", se.Reason)
	}
}

func TestSelectSwitchEmptyList(t *testing.T) {
	cfg := DefaultSystemConfig()
	_, err := SelectSwitch(nil, cfg, cfg.InputPowerDBm, PerBand{At1GHz: 15, At20GHz: 15})
	if !IsSelectionError(err) || !errors.Is(err, ErrNoSuitableSwitch) {
		t.Fatalf("err = %v, want SelectionError wrapping ErrNoSuitableSwitch", err)
	}
	if !strings.Contains(err.Error(), "no switches in catalog") {
		t.Fatalf("err = %q, want empty-catalog reason", err.Error())
	}
}

func TestSelectSwitchIsIdempotent(t *testing.T) {
	c := DefaultCatalog()
	cfg := DefaultSystemConfig()
	gain := minGain(mustAmplifier(t, c, "Amp-A"))

	first, err := SelectSwitch(c.Switches(), cfg, cfg.InputPowerDBm, gain)
	if err != nil {
		t.Fatalf("SelectSwitch: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := SelectSwitch(c.Switches(), cfg, cfg.InputPowerDBm, gain)
		if err != nil {
			t.Fatalf("SelectSwitch run %d: %v", i, err)
		}
		if again.ID != first.ID {
			t.Fatalf("run %d selected %q, want %q", i, again.ID, first.ID)
		}
	}
}
