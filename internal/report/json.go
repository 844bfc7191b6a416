package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/signalsfoundry/rf-linkbudget/core"
)

// JSONRenderer prints a machine-readable report.
type JSONRenderer struct {
	Indent string
}

type jsonReport struct {
	Strategy   string           `json:"strategy"`
	Amplifier  jsonComponent    `json:"amplifier"`
	Switch     jsonComponent    `json:"switch"`
	Candidates []jsonCandidate  `json:"switch_candidates"`
	Bands      []jsonBand       `json:"bands"`
	Pass       bool             `json:"pass"`
	Violations []core.Violation `json:"violations"`
	Thresholds jsonThresholds   `json:"thresholds"`
}

type jsonComponent struct {
	ID   string          `json:"id"`
	Cost decimal.Decimal `json:"cost"`
}

type jsonCandidate struct {
	ID        string   `json:"id"`
	Qualified bool     `json:"qualified"`
	Reasons   []string `json:"reasons,omitempty"`
}

type jsonBand struct {
	Band string `json:"band"`
	core.BandResult
}

type jsonThresholds struct {
	MinOutputPowerDBm core.PerBand `json:"min_output_power_dbm"`
	MaxLeakageDBm     core.PerBand `json:"max_leakage_dbm"`
}

func (j *JSONRenderer) Render(out, _ io.Writer, r *core.Report, cfg core.SystemConfig) error {
	if r == nil {
		return fmt.Errorf("nil report")
	}

	payload := jsonReport{
		Strategy:   r.Strategy,
		Amplifier:  jsonComponent{ID: r.Amplifier.ID, Cost: r.Amplifier.Cost},
		Switch:     jsonComponent{ID: r.Switch.ID, Cost: r.Switch.Cost},
		Candidates: make([]jsonCandidate, 0, len(r.Candidates)),
		Bands:      make([]jsonBand, 0, len(r.Cascade.Results)),
		Pass:       r.Verdict.Pass,
		Violations: append([]core.Violation{}, r.Verdict.Violations...),
		Thresholds: jsonThresholds{
			MinOutputPowerDBm: cfg.MinOutputPowerDBm,
			MaxLeakageDBm:     cfg.MaxLeakageDBm,
		},
	}
	for _, c := range r.Candidates {
		payload.Candidates = append(payload.Candidates, jsonCandidate{
			ID:        c.Switch.ID,
			Qualified: c.Qualified,
			Reasons:   c.Reasons,
		})
	}
	for _, br := range r.Cascade.Results {
		payload.Bands = append(payload.Bands, jsonBand{Band: br.Band.String(), BandResult: br})
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", j.Indent)
	return enc.Encode(payload)
}
