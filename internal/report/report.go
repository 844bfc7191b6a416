// Package report renders link budget results for people and tools.
//
// The text format mirrors the classic bench printout: selected parts,
// four metric lines, then a pass/fail line. The pass line goes to the
// output stream and the fail line to the error stream, so a wrapper
// script can tell them apart without parsing. The JSON format carries the
// same values plus the switch qualification details and the violations.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signalsfoundry/rf-linkbudget/core"
)

// Format selects a renderer.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatText, "":
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported report format %q (want text or json)", s)
	}
}

// Options controls rendering.
type Options struct {
	Format   Format
	Color    bool // color on the output stream
	ErrColor bool // color on the error stream
}

// Renderer writes a report. Out receives the report body; ErrOut receives
// the failure line of the text format.
type Renderer interface {
	Render(out, errOut io.Writer, r *core.Report, cfg core.SystemConfig) error
}

// NewRenderer returns the renderer for opts.Format.
func NewRenderer(opts Options) (Renderer, error) {
	switch opts.Format {
	case FormatText, "":
		return &TextRenderer{Color: opts.Color, ErrColor: opts.ErrColor}, nil
	case FormatJSON:
		return &JSONRenderer{Indent: "  "}, nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", opts.Format)
	}
}

// formatDB prints like a default C++ ostream: six significant digits,
// trailing zeros dropped.
func formatDB(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
