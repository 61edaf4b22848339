// Package config defines the format-agnostic model for batch inputs, along
// with the Loader interface that concrete formats implement.
//
// The `config.Model` carries raw, unvalidated text exactly as written in the
// source files. Validation is the job of the bmi package, so a file with an
// empty or malformed value still loads; the problem is reported per
// measurement when it is evaluated. Concrete implementations, such as for
// HCL, live in separate packages.
package config
