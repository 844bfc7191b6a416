package core

import (
	"encoding/json"
	"fmt"
	"io"
)

// catalogJSON is the on-disk catalog shape. Component records decode
// straight into the model types.
type catalogJSON struct {
	Amplifiers []Amplifier `json:"amplifiers"`
	Switches   []Switch    `json:"switches"`
}

// LoadCatalog reads a JSON component catalog from r:
//
//	{"amplifiers": [{"id": "Amp-A", "gain_1ghz": {"min": 15, "typ": 17, "max": 19}, ...}],
//	 "switches":   [{"id": "SW-A", "on_1ghz": -0.7, "off_1ghz": -65, ...}]}
//
// Record order in the file is catalog order. Unknown fields, invalid
// records and duplicate IDs are errors.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var payload catalogJSON
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadCatalog: decode failed: %w", err)
	}

	c, err := NewCatalog(payload.Amplifiers, payload.Switches)
	if err != nil {
		return nil, fmt.Errorf("LoadCatalog: %w", err)
	}
	return c, nil
}
