// Package render writes evaluation outcomes for people and for other
// programs. Every renderer receives the raw inputs together with the outcome
// so a report can always be traced back to what was typed.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/specialistvlad/bmicalc/internal/bmi"
)

// Item is one evaluated measurement.
type Item struct {
	// Name is empty for a one-off evaluation.
	Name    string
	Height  string
	Weight  string
	Outcome bmi.Outcome
}

// Renderer writes a list of items in one format.
type Renderer interface {
	Render(w io.Writer, items []Item) error
}

// Formats lists the accepted format names.
var Formats = []string{"text", "json", "hcl"}

// New returns the renderer for format.
func New(format string) (Renderer, error) {
	switch strings.ToLower(format) {
	case "text":
		return Text{}, nil
	case "json":
		return JSON{}, nil
	case "hcl":
		return HCL{}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q: must be one of %s", format, strings.Join(Formats, ", "))
	}
}

// errorMessages returns the messages in field order.
func errorMessages(errs bmi.ValidationErrors) []string {
	var out []string
	for _, f := range bmi.Fields {
		if msg := errs.Get(f); msg != "" {
			out = append(out, msg)
		}
	}
	return out
}
