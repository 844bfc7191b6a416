package core

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrInvalidComponent = errors.New("invalid component")

// GainRange is the datasheet gain of a device over one band in dB.
// Typ is optional; some datasheets only quote the min/max envelope.
type GainRange struct {
	Min float64  `json:"min"`
	Typ *float64 `json:"typ,omitempty"`
	Max float64  `json:"max"`
}

// Typical returns Typ when quoted, otherwise the midpoint of the
// envelope.
func (g GainRange) Typical() float64 {
	if g.Typ != nil {
		return *g.Typ
	}
	return (g.Min + g.Max) / 2
}

// Validate checks Min <= Typ <= Max.
func (g GainRange) Validate() error {
	if g.Min > g.Max {
		return fmt.Errorf("min gain %.2f dB above max gain %.2f dB", g.Min, g.Max)
	}
	if g.Typ != nil && (*g.Typ < g.Min || *g.Typ > g.Max) {
		return fmt.Errorf("typical gain %.2f dB outside [%.2f, %.2f] dB", *g.Typ, g.Min, g.Max)
	}
	return nil
}

// Amplifier describes a gain stage candidate.
type Amplifier struct {
	ID string `json:"id"`

	Gain1GHz  GainRange `json:"gain_1ghz"`
	Gain20GHz GainRange `json:"gain_20ghz"`

	// P1dBm is the output 1 dB compression point, used as the output
	// power ceiling when sizing the pad.
	P1dBm float64 `json:"p1db_dbm"`

	Cost decimal.Decimal `json:"cost"`
}

// GainAt returns the gain envelope for band b.
func (a Amplifier) GainAt(b Band) GainRange {
	if b == Band20GHz {
		return a.Gain20GHz
	}
	return a.Gain1GHz
}

func (a Amplifier) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("%w: amplifier with empty id", ErrInvalidComponent)
	}
	for _, b := range Bands() {
		if err := a.GainAt(b).Validate(); err != nil {
			return fmt.Errorf("%w: amplifier %q at %s: %v", ErrInvalidComponent, a.ID, b, err)
		}
	}
	if a.Cost.IsNegative() {
		return fmt.Errorf("%w: amplifier %q has negative cost %s", ErrInvalidComponent, a.ID, a.Cost)
	}
	return nil
}

// Switch describes a SPST switch candidate. On-state values are insertion
// gain (a loss, so <= 0); off-state values are isolation.
type Switch struct {
	ID string `json:"id"`

	On1GHz  float64 `json:"on_1ghz"`
	On20GHz float64 `json:"on_20ghz"`

	Off1GHz  float64 `json:"off_1ghz"`
	Off20GHz float64 `json:"off_20ghz"`

	// P1dBm is the input power the switch can handle.
	P1dBm float64 `json:"p1db_dbm"`

	Cost decimal.Decimal `json:"cost"`
}

// OnGainAt returns the on-state insertion gain for band b.
func (s Switch) OnGainAt(b Band) float64 {
	if b == Band20GHz {
		return s.On20GHz
	}
	return s.On1GHz
}

// OffGainAt returns the off-state isolation for band b.
func (s Switch) OffGainAt(b Band) float64 {
	if b == Band20GHz {
		return s.Off20GHz
	}
	return s.Off1GHz
}

func (s Switch) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("%w: switch with empty id", ErrInvalidComponent)
	}
	for _, b := range Bands() {
		if s.OnGainAt(b) > 0 {
			return fmt.Errorf("%w: switch %q has positive on-state gain %.2f dB at %s",
				ErrInvalidComponent, s.ID, s.OnGainAt(b), b)
		}
		if s.OffGainAt(b) > s.OnGainAt(b) {
			return fmt.Errorf("%w: switch %q isolation %.2f dB weaker than insertion %.2f dB at %s",
				ErrInvalidComponent, s.ID, s.OffGainAt(b), s.OnGainAt(b), b)
		}
	}
	if s.Cost.IsNegative() {
		return fmt.Errorf("%w: switch %q has negative cost %s", ErrInvalidComponent, s.ID, s.Cost)
	}
	return nil
}
