package render

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"text/tabwriter"

	"github.com/specialistvlad/bmicalc/internal/bmi"
	"github.com/specialistvlad/bmicalc/internal/form"
)

// Text is the human-readable renderer.
type Text struct{}

// Render prints each item. Named items get a header line and indented body.
func (Text) Render(w io.Writer, items []Item) error {
	for i, it := range items {
		indent := ""
		if it.Name != "" {
			if i > 0 {
				if _, err := fmt.Fprintln(w); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(w, "%s:\n", it.Name); err != nil {
				return err
			}
			indent = "  "
		}

		if it.Outcome.OK() {
			if _, err := fmt.Fprintf(w, "%sYour BMI: %s\n%sStatus: %s\n", indent, it.Outcome.Result.Display(), indent, it.Outcome.Result.Status); err != nil {
				return err
			}
			continue
		}
		for _, msg := range errorMessages(it.Outcome.Errors) {
			if _, err := fmt.Fprintf(w, "%s%s\n", indent, msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// Form prints the form view: field errors under their inputs, then the
// result if there is one.
func Form(w io.Writer, v form.View) error {
	if v.HeightError != "" {
		if _, err := fmt.Fprintf(w, "  ! %s\n", v.HeightError); err != nil {
			return err
		}
	}
	if v.WeightError != "" {
		if _, err := fmt.Fprintf(w, "  ! %s\n", v.WeightError); err != nil {
			return err
		}
	}
	if !v.ShowResult {
		return nil
	}

	suffix := ""
	if v.Stale {
		suffix = " (inputs changed since last calculation)"
	}
	_, err := fmt.Fprintf(w, "Your BMI: %s\nStatus: %s%s\n", v.BMI, v.Status, suffix)
	return err
}

// Categories prints the classification table.
func Categories(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STATUS\tBMI RANGE")
	for _, c := range bmi.Categories() {
		fmt.Fprintf(tw, "%s\t%s\n", c.Status, rangeText(c))
	}
	return tw.Flush()
}

func rangeText(c bmi.Category) string {
	lower := strconv.FormatFloat(c.Lower, 'f', -1, 64)
	if math.IsInf(c.Upper, 1) {
		return ">= " + lower
	}
	if c.Lower == 0 {
		return "< " + strconv.FormatFloat(c.Upper, 'f', -1, 64)
	}
	return lower + " - <" + strconv.FormatFloat(c.Upper, 'f', -1, 64)
}
