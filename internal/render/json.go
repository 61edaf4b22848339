package render

import (
	"encoding/json"
	"io"
	"math"

	"github.com/specialistvlad/bmicalc/internal/bmi"
)

// JSON renders `{"results": [...]}`.
type JSON struct{}

type jsonItem struct {
	Name   string               `json:"name,omitempty"`
	Height string               `json:"height"`
	Weight string               `json:"weight"`
	BMI    string               `json:"bmi,omitempty"`
	Value  *float64             `json:"value,omitempty"`
	Status *bmi.Status          `json:"status,omitempty"`
	Errors bmi.ValidationErrors `json:"errors,omitempty"`
}

// NewJSONItem converts an item into its JSON shape. It is shared with the
// HTTP handler and the view publisher.
func NewJSONItem(it Item) any {
	out := jsonItem{Name: it.Name, Height: it.Height, Weight: it.Weight}
	if !it.Outcome.OK() {
		out.Errors = it.Outcome.Errors
		return out
	}

	res := it.Outcome.Result
	out.BMI = res.Display()
	if !math.IsInf(res.Value, 0) && !math.IsNaN(res.Value) {
		v := res.Value
		out.Value = &v
	}
	status := res.Status
	out.Status = &status
	return out
}

// Render writes the items as indented JSON. Messages such as "> 0" are
// written verbatim, not HTML-escaped.
func (JSON) Render(w io.Writer, items []Item) error {
	results := make([]any, 0, len(items))
	for _, it := range items {
		results = append(results, NewJSONItem(it))
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{"results": results})
}
