package render

import (
	"io"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/gocty"
)

// HCL renders one `result` block per item, in the same language the batch
// files are written in.
type HCL struct{}

// Render writes the items as formatted HCL.
func (HCL) Render(w io.Writer, items []Item) error {
	f := hclwrite.NewEmptyFile()
	root := f.Body()

	for i, it := range items {
		if i > 0 {
			root.AppendNewline()
		}
		var labels []string
		if it.Name != "" {
			labels = []string{it.Name}
		}
		body := root.AppendNewBlock("result", labels).Body()
		body.SetAttributeValue("height", cty.StringVal(it.Height))
		body.SetAttributeValue("weight", cty.StringVal(it.Weight))

		if it.Outcome.OK() {
			body.SetAttributeValue("bmi", cty.StringVal(it.Outcome.Result.Display()))
			body.SetAttributeValue("status", cty.StringVal(it.Outcome.Result.Status.String()))
			continue
		}

		errs := make(map[string]string, len(it.Outcome.Errors))
		for field, msg := range it.Outcome.Errors {
			errs[string(field)] = msg
		}
		val, err := gocty.ToCtyValue(errs, cty.Map(cty.String))
		if err != nil {
			return err
		}
		body.SetAttributeValue("errors", val)
	}

	_, err := w.Write(hclwrite.Format(f.Bytes()))
	return err
}
