package core

// Band identifies one of the two frequencies the signal chain is
// evaluated at.
type Band int

const (
	Band1GHz Band = iota
	Band20GHz
)

// Bands returns every evaluated band in reporting order.
func Bands() []Band {
	return []Band{Band1GHz, Band20GHz}
}

// FrequencyGHz returns the nominal frequency of the band.
func (b Band) FrequencyGHz() float64 {
	switch b {
	case Band1GHz:
		return 1
	case Band20GHz:
		return 20
	default:
		return 0
	}
}

func (b Band) String() string {
	switch b {
	case Band1GHz:
		return "1 GHz"
	case Band20GHz:
		return "20 GHz"
	default:
		return "unknown"
	}
}

// Key is the short label used in config files, metrics and JSON output.
func (b Band) Key() string {
	switch b {
	case Band1GHz:
		return "1ghz"
	case Band20GHz:
		return "20ghz"
	default:
		return "unknown"
	}
}

// PerBand holds one float64 value per band.
type PerBand struct {
	At1GHz  float64 `json:"1ghz" yaml:"1ghz"`
	At20GHz float64 `json:"20ghz" yaml:"20ghz"`
}

// At returns the value for band b. Unknown bands read as zero.
func (p PerBand) At(b Band) float64 {
	switch b {
	case Band1GHz:
		return p.At1GHz
	case Band20GHz:
		return p.At20GHz
	default:
		return 0
	}
}
