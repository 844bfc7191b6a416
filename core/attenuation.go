package core

import "math"

// Attenuation returns the pad in dB needed so that the drive level plus
// the device gain stays at or below ceilingDBm. It is never negative.
func Attenuation(inputPowerDBm, ceilingDBm, deviceGainDB float64) float64 {
	return math.Max(0, inputPowerDBm+deviceGainDB-ceilingDBm)
}
