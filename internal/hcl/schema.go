package hcl

import "github.com/hashicorp/hcl/v2"

// fileRoot is the top-level structure of a batch file. It has no remain
// field, so unknown blocks and attributes are decode errors.
type fileRoot struct {
	Measurements []*measurementBlock `hcl:"measurement,block"`
}

// measurementBlock is a `measurement` block. Attributes are kept as
// expressions so any literal type can be turned into text afterwards.
type measurementBlock struct {
	Name   string         `hcl:"name,label"`
	Height hcl.Expression `hcl:"height,optional"`
	Weight hcl.Expression `hcl:"weight,optional"`
}
