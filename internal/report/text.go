package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/signalsfoundry/rf-linkbudget/core"
)

const (
	passLine = "System meets specifications!"
	failLine = "System failed to meet specifications!"
)

// TextRenderer prints the human-readable report. Color applies to the
// output stream and ErrColor to the error stream.
type TextRenderer struct {
	Color    bool
	ErrColor bool
}

type textScheme struct {
	label *color.Color
	pass  *color.Color
	fail  *color.Color
}

func newTextScheme(enabled bool) textScheme {
	s := textScheme{
		label: color.New(color.FgCyan),
		pass:  color.New(color.FgGreen, color.Bold),
		fail:  color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{s.label, s.pass, s.fail} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (t *TextRenderer) Render(out, errOut io.Writer, r *core.Report, cfg core.SystemConfig) error {
	if r == nil {
		return fmt.Errorf("nil report")
	}
	s := newTextScheme(t.Color)

	var lines []string
	// the fixed variant names its amplifier up front, so only a scored
	// selection is worth reporting
	if r.Strategy != (core.FixedAmplifier{}).Name() {
		lines = append(lines, fmt.Sprintf("%s %s (Cost: $%s)",
			s.label.Sprint("Selected Amplifier:"), r.Amplifier.ID, r.Amplifier.Cost.String()))
	}
	lines = append(lines, fmt.Sprintf("%s %s (Cost: $%s)",
		s.label.Sprint("Selected Switch:"), r.Switch.ID, r.Switch.Cost.String()))

	for _, b := range core.Bands() {
		br, _ := r.Cascade.At(b)
		lines = append(lines, fmt.Sprintf("%s %s dBm",
			s.label.Sprintf("Max Power Output at %s:", b), formatDB(br.OutputPowerDBm)))
	}
	for _, b := range core.Bands() {
		br, _ := r.Cascade.At(b)
		lines = append(lines, fmt.Sprintf("%s %s dBm",
			s.label.Sprintf("Leakage at %s:", b), formatDB(br.LeakageDBm)))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	if r.Verdict.Pass {
		_, err := s.pass.Fprintln(out, passLine)
		return err
	}
	if errOut == nil {
		_, err := s.fail.Fprintln(out, failLine)
		return err
	}
	_, err := newTextScheme(t.ErrColor).fail.Fprintln(errOut, failLine)
	return err
}
