package core

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid system config")

// SystemConfig holds the fixed parts of the signal chain and the
// thresholds the cascade is checked against. All values are in dB / dBm.
type SystemConfig struct {
	// FixedAttenuatorLossDB is the gain of the fixed pad (negative).
	FixedAttenuatorLossDB float64 `yaml:"fixed_attenuator_loss_db"`

	// DividerLossDB is the power divider gain per band (negative).
	DividerLossDB PerBand `yaml:"divider_loss_db"`

	// InputPowerDBm is the nominal drive level into the amplifier.
	InputPowerDBm float64 `yaml:"input_power_dbm"`

	// MinOutputPowerDBm is the lowest acceptable max-power output per band.
	MinOutputPowerDBm PerBand `yaml:"min_output_power_dbm"`

	// MaxLeakageDBm is the highest acceptable leakage with the switch off.
	MaxLeakageDBm PerBand `yaml:"max_leakage_dbm"`

	// ScoreWeights tune the dynamic amplifier scorer.
	ScoreWeights ScoreWeights `yaml:"score_weights"`
}

// Validate rejects configs that would make the cascade meaningless.
func (c SystemConfig) Validate() error {
	values := []struct {
		key string
		v   float64
	}{
		{"fixed_attenuator_loss_db", c.FixedAttenuatorLossDB},
		{"input_power_dbm", c.InputPowerDBm},
		{"divider_loss_db.1ghz", c.DividerLossDB.At1GHz},
		{"divider_loss_db.20ghz", c.DividerLossDB.At20GHz},
		{"min_output_power_dbm.1ghz", c.MinOutputPowerDBm.At1GHz},
		{"min_output_power_dbm.20ghz", c.MinOutputPowerDBm.At20GHz},
		{"max_leakage_dbm.1ghz", c.MaxLeakageDBm.At1GHz},
		{"max_leakage_dbm.20ghz", c.MaxLeakageDBm.At20GHz},
	}
	for _, f := range values {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s is not a finite number", ErrInvalidConfig, f.key)
		}
	}
	if c.FixedAttenuatorLossDB > 0 {
		return fmt.Errorf("%w: fixed_attenuator_loss_db must be <= 0, got %.2f", ErrInvalidConfig, c.FixedAttenuatorLossDB)
	}
	for _, b := range Bands() {
		if c.DividerLossDB.At(b) > 0 {
			return fmt.Errorf("%w: divider_loss_db at %s must be <= 0, got %.2f", ErrInvalidConfig, b, c.DividerLossDB.At(b))
		}
	}
	if err := c.ScoreWeights.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// LoadSystemConfig reads a YAML system config from r. Keys left out keep
// their DefaultSystemConfig value; unknown keys are an error so typos do
// not silently fall back to defaults.
func LoadSystemConfig(r io.Reader) (SystemConfig, error) {
	cfg := DefaultSystemConfig()

	data, err := io.ReadAll(r)
	if err != nil {
		return SystemConfig{}, fmt.Errorf("LoadSystemConfig: read failed: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return SystemConfig{}, fmt.Errorf("LoadSystemConfig: decode failed: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return SystemConfig{}, err
	}
	return cfg, nil
}
