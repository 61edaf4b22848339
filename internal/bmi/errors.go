package bmi

import (
	"fmt"
	"strings"
)

// Field names one of the two user inputs.
type Field string

const (
	FieldHeight Field = "height"
	FieldWeight Field = "weight"
)

// Fields lists the inputs in the order they are validated and reported.
var Fields = []Field{FieldHeight, FieldWeight}

// Label is the capitalized name used in user-facing messages.
func (f Field) Label() string {
	if f == "" {
		return ""
	}
	return strings.ToUpper(string(f[:1])) + string(f[1:])
}

// Reason tells why a field was rejected.
type Reason int

const (
	// ReasonMissing means the field was empty after trimming whitespace.
	ReasonMissing Reason = iota + 1
	// ReasonNotPositive covers both unparseable text and numbers <= 0.
	ReasonNotPositive
)

// FieldError is the failure of a single field.
type FieldError struct {
	Field  Field
	Reason Reason
}

// Error returns the message shown next to the field.
func (e *FieldError) Error() string {
	switch e.Reason {
	case ReasonMissing:
		return e.Field.Label() + " is required"
	default:
		return e.Field.Label() + " must be a number > 0"
	}
}

// ValidationErrors maps each failing field to its message. Fields that passed
// are absent.
type ValidationErrors map[Field]string

// Error joins the messages in the order of Fields.
func (v ValidationErrors) Error() string {
	msgs := make([]string, 0, len(v))
	for _, f := range Fields {
		if msg, ok := v[f]; ok {
			msgs = append(msgs, msg)
		}
	}
	return fmt.Sprintf("invalid input: %s", strings.Join(msgs, "; "))
}

// Get returns the message for a field, or "" when it passed.
func (v ValidationErrors) Get(f Field) string {
	return v[f]
}
