package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/bmicalc/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// Converter turns attribute expressions into the raw text the evaluator
// expects.
type Converter struct{}

// NewConverter creates a new HCL converter.
func NewConverter() *Converter {
	return &Converter{}
}

// Text evaluates expr without variables or functions and converts the result
// to a string. A missing or null attribute yields "".
func (c *Converter) Text(ctx context.Context, expr hcl.Expression) (string, error) {
	logger := ctxlog.FromContext(ctx)
	if expr == nil {
		return "", nil
	}

	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return "", diags
	}
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", fmt.Errorf("value is not known")
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}
	if !val.Type().Equals(cty.String) {
		logger.Debug("Implicitly converted value type.",
			"from", val.Type().FriendlyName(),
			"to", cty.String.FriendlyName(),
		)
	}

	var out string
	if err := gocty.FromCtyValue(strVal, &out); err != nil {
		return "", err
	}
	return out, nil
}
