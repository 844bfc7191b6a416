package core

import (
	"errors"
	"fmt"
)

var (
	ErrAmplifierExists = errors.New("amplifier already exists")
	ErrSwitchExists    = errors.New("switch already exists")
)

// Catalog is the component catalog: every amplifier and switch the
// selectors may pick from, kept in insertion order. Order matters because
// equal-cost and equal-score candidates resolve to the first one listed.
//
// A Catalog is immutable once NewCatalog returns, so it is safe to share
// without locking.
type Catalog struct {
	amplifiers []Amplifier
	switches   []Switch

	ampIndex    map[string]int
	switchIndex map[string]int
}

// NewCatalog validates and indexes the given components. It fails on the
// first invalid record or duplicate ID.
func NewCatalog(amplifiers []Amplifier, switches []Switch) (*Catalog, error) {
	c := &Catalog{
		amplifiers:  make([]Amplifier, 0, len(amplifiers)),
		switches:    make([]Switch, 0, len(switches)),
		ampIndex:    make(map[string]int, len(amplifiers)),
		switchIndex: make(map[string]int, len(switches)),
	}

	for _, amp := range amplifiers {
		if err := amp.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.ampIndex[amp.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrAmplifierExists, amp.ID)
		}
		c.ampIndex[amp.ID] = len(c.amplifiers)
		c.amplifiers = append(c.amplifiers, amp)
	}

	for _, sw := range switches {
		if err := sw.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.switchIndex[sw.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrSwitchExists, sw.ID)
		}
		c.switchIndex[sw.ID] = len(c.switches)
		c.switches = append(c.switches, sw)
	}

	return c, nil
}

// Amplifier returns the amplifier with the given ID.
func (c *Catalog) Amplifier(id string) (Amplifier, bool) {
	if c == nil {
		return Amplifier{}, false
	}
	i, ok := c.ampIndex[id]
	if !ok {
		return Amplifier{}, false
	}
	return c.amplifiers[i], true
}

// Switch returns the switch with the given ID.
func (c *Catalog) Switch(id string) (Switch, bool) {
	if c == nil {
		return Switch{}, false
	}
	i, ok := c.switchIndex[id]
	if !ok {
		return Switch{}, false
	}
	return c.switches[i], true
}

// Amplifiers returns a copy of the amplifiers in catalog order.
func (c *Catalog) Amplifiers() []Amplifier {
	if c == nil {
		return nil
	}
	return append([]Amplifier(nil), c.amplifiers...)
}

// Switches returns a copy of the switches in catalog order.
func (c *Catalog) Switches() []Switch {
	if c == nil {
		return nil
	}
	return append([]Switch(nil), c.switches...)
}
