// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It is responsible for file discovery, parsing, decoding of
// `measurement` blocks and the cty-to-text conversion of their attributes.
//
// A batch file looks like:
//
//	measurement "alice" {
//	  height = "180"
//	  weight = 70
//	}
//
// Attributes may be written as strings or numbers; either way they reach the
// evaluator as raw text. Leaving an attribute out is the same as submitting
// an empty field.
package hcl
