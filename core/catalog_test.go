package core

import (
	"errors"
	"testing"
)

func TestDefaultCatalogOrderAndLookup(t *testing.T) {
	c := DefaultCatalog()

	amps := c.Amplifiers()
	if len(amps) != 6 {
		t.Fatalf("len(Amplifiers) = %d, want 6", len(amps))
	}
	wantAmps := []string{"Amp-A", "Amp-B", "Amp-C", "Amp-D", "Amp-E", "Amp-F"}
	for i, id := range wantAmps {
		if amps[i].ID != id {
			t.Fatalf("Amplifiers()[%d] = %q, want %q", i, amps[i].ID, id)
		}
	}

	switches := c.Switches()
	if len(switches) != 6 {
		t.Fatalf("len(Switches) = %d, want 6", len(switches))
	}
	if switches[2].ID != "SW-C" {
		t.Fatalf("Switches()[2] = %q, want SW-C", switches[2].ID)
	}

	sw := mustSwitch(t, c, "SW-C")
	if sw.Off20GHz != -35 || sw.P1dBm != 35 {
		t.Fatalf("SW-C = %+v, want off_20ghz -35 and p1db 35", sw)
	}
	if _, ok := c.Amplifier("Amp-Z"); ok {
		t.Fatalf("Amplifier(Amp-Z) found, want missing")
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c := DefaultCatalog()

	amps := c.Amplifiers()
	amps[0].ID = "mutated"
	switches := c.Switches()
	switches[0].P1dBm = -100

	if got := c.Amplifiers()[0].ID; got != "Amp-A" {
		t.Fatalf("catalog amplifier mutated through copy: got %q", got)
	}
	if got := mustSwitch(t, c, "SW-A").P1dBm; got != 28 {
		t.Fatalf("catalog switch mutated through copy: p1db = %v", got)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	amps := DefaultAmplifiers()
	_, err := NewCatalog(append(amps, amps[0]), nil)
	if !errors.Is(err, ErrAmplifierExists) {
		t.Fatalf("duplicate amplifier err = %v, want ErrAmplifierExists", err)
	}

	switches := DefaultSwitches()
	_, err = NewCatalog(nil, append(switches, switches[3]))
	if !errors.Is(err, ErrSwitchExists) {
		t.Fatalf("duplicate switch err = %v, want ErrSwitchExists", err)
	}
}

func TestNewCatalogRejectsInvalidComponents(t *testing.T) {
	cases := []struct {
		name     string
		amps     []Amplifier
		switches []Switch
	}{
		{
			name: "empty amplifier id",
			amps: []Amplifier{{Gain1GHz: GainRange{Min: 1, Max: 2}, Gain20GHz: GainRange{Min: 1, Max: 2}}},
		},
		{
			name: "min above max",
			amps: []Amplifier{{ID: "a", Gain1GHz: GainRange{Min: 5, Max: 2}, Gain20GHz: GainRange{Min: 1, Max: 2}}},
		},
		{
			name: "typical outside envelope",
			amps: []Amplifier{{ID: "a", Gain1GHz: GainRange{Min: 1, Max: 2}, Gain20GHz: GainRange{Min: 1, Typ: typ(3), Max: 2}}},
		},
		{
			name: "negative amplifier cost",
			amps: []Amplifier{{ID: "a", Gain1GHz: GainRange{Min: 1, Max: 2}, Gain20GHz: GainRange{Min: 1, Max: 2}, Cost: cost(-1)}},
		},
		{
			name:     "positive insertion gain",
			switches: []Switch{{ID: "s", On1GHz: 0.5, On20GHz: -1, Off1GHz: -40, Off20GHz: -40}},
		},
		{
			name:     "isolation weaker than insertion",
			switches: []Switch{{ID: "s", On1GHz: -1, On20GHz: -1, Off1GHz: -40, Off20GHz: -0.5}},
		},
		{
			name:     "empty switch id",
			switches: []Switch{{On1GHz: -1, On20GHz: -1, Off1GHz: -40, Off20GHz: -40}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewCatalog(tc.amps, tc.switches)
			if !errors.Is(err, ErrInvalidComponent) {
				t.Fatalf("NewCatalog err = %v, want ErrInvalidComponent", err)
			}
		})
	}
}

func TestNilCatalogIsEmpty(t *testing.T) {
	var c *Catalog
	if len(c.Amplifiers()) != 0 || len(c.Switches()) != 0 {
		t.Fatalf("nil catalog returned components")
	}
	if _, ok := c.Switch("SW-A"); ok {
		t.Fatalf("nil catalog found SW-A")
	}
}

func TestGainRangeTypicalFallsBackToMidpoint(t *testing.T) {
	g := GainRange{Min: 12, Max: 16}
	if got := g.Typical(); got != 14 {
		t.Fatalf("Typical() = %v, want 14", got)
	}
	g.Typ = typ(13)
	if got := g.Typical(); got != 13 {
		t.Fatalf("Typical() = %v, want 13", got)
	}
}

func TestDefaultFixedCatalogUsesBenchSheetAmpE(t *testing.T) {
	c := DefaultFixedCatalog()

	amp := mustAmplifier(t, c, DefaultFixedAmplifierID)
	if amp.Gain20GHz.Max != 16 || amp.Gain1GHz.Max != 17.5 {
		t.Fatalf("Amp-E max gains = %v/%v, want 17.5/16", amp.Gain1GHz.Max, amp.Gain20GHz.Max)
	}
	if amp.Gain1GHz.Typ != nil || amp.Gain20GHz.Typ != nil {
		t.Fatalf("Amp-E quotes typical gain, want none")
	}
	if !amp.Cost.Equal(cost(17.5)) || amp.P1dBm != 20 {
		t.Fatalf("Amp-E = %+v, want p1db 20 cost 17.5", amp)
	}

	// the rest of the shortlist is unchanged and keeps its order
	fixed, shortlist := c.Amplifiers(), DefaultCatalog().Amplifiers()
	if len(fixed) != len(shortlist) {
		t.Fatalf("len(Amplifiers) = %d, want %d", len(fixed), len(shortlist))
	}
	for i := range fixed {
		if fixed[i].ID != shortlist[i].ID {
			t.Fatalf("Amplifiers()[%d] = %q, want %q", i, fixed[i].ID, shortlist[i].ID)
		}
	}
	if got := mustAmplifier(t, DefaultCatalog(), "Amp-E").Gain20GHz.Max; got != 17.5 {
		t.Fatalf("shortlist Amp-E max gain at 20 GHz = %v, want 17.5", got)
	}
}
