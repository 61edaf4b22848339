package bmi

import (
	"fmt"
	"math"
	"strconv"
)

// Measurement is a validated height/weight pair. The zero value is not valid;
// build one with NewMeasurement or obtain it from Validate.
type Measurement struct {
	heightCm float64
	weightKg float64
}

// NewMeasurement checks that both values are positive finite numbers.
func NewMeasurement(heightCm, weightKg float64) (Measurement, error) {
	errs := ValidationErrors{}
	if !(heightCm > 0) || math.IsInf(heightCm, 1) {
		errs[FieldHeight] = (&FieldError{Field: FieldHeight, Reason: ReasonNotPositive}).Error()
	}
	if !(weightKg > 0) || math.IsInf(weightKg, 1) {
		errs[FieldWeight] = (&FieldError{Field: FieldWeight, Reason: ReasonNotPositive}).Error()
	}
	if len(errs) > 0 {
		return Measurement{}, errs
	}
	return Measurement{heightCm: heightCm, weightKg: weightKg}, nil
}

// HeightCm returns the height in centimeters.
func (m Measurement) HeightCm() float64 { return m.heightCm }

// WeightKg returns the weight in kilograms.
func (m Measurement) WeightKg() float64 { return m.weightKg }

// BMI computes weight / height_m².
func (m Measurement) BMI() float64 {
	h := m.heightCm / 100
	return m.weightKg / (h * h)
}

// Result is a computed BMI and its status.
type Result struct {
	Value  float64
	Status Status
}

// Display formats the value rounded to two decimals, e.g. "21.60".
func (r Result) Display() string {
	return strconv.FormatFloat(r.Value, 'f', 2, 64)
}

// String renders the result the way the form shows it.
func (r Result) String() string {
	return fmt.Sprintf("%s (%s)", r.Display(), r.Status)
}

// Validate parses both raw inputs and collects every failure. The returned
// error, if any, is a ValidationErrors.
func Validate(rawHeight, rawWeight string) (Measurement, error) {
	m, errs := validate(rawHeight, rawWeight)
	if errs != nil {
		return Measurement{}, errs
	}
	return m, nil
}

// validate returns a nil map when both fields pass.
func validate(rawHeight, rawWeight string) (Measurement, ValidationErrors) {
	errs := ValidationErrors{}

	h, err := ParseField(FieldHeight, rawHeight)
	if err != nil {
		errs[FieldHeight] = err.Error()
	}
	w, err := ParseField(FieldWeight, rawWeight)
	if err != nil {
		errs[FieldWeight] = err.Error()
	}

	if len(errs) > 0 {
		return Measurement{}, errs
	}
	return Measurement{heightCm: h, weightKg: w}, nil
}

// Compute derives the result for an already validated measurement.
func Compute(m Measurement) Result {
	v := m.BMI()
	return Result{Value: v, Status: Classify(v)}
}

// Evaluate validates the two raw inputs and, only when both pass, computes
// the BMI. On failure the error is a ValidationErrors holding a message for
// every field that failed.
func Evaluate(rawHeight, rawWeight string) (Result, error) {
	m, err := Validate(rawHeight, rawWeight)
	if err != nil {
		return Result{}, err
	}
	return Compute(m), nil
}

// Outcome is what a presentation layer renders: exactly one of Result or
// Errors is set.
type Outcome struct {
	Result *Result
	Errors ValidationErrors
}

// OK reports whether the evaluation produced a result.
func (o Outcome) OK() bool { return o.Result != nil }

// EvaluateOutcome is Evaluate for presentation layers: the result or the
// field errors, as an Outcome.
func EvaluateOutcome(rawHeight, rawWeight string) Outcome {
	m, errs := validate(rawHeight, rawWeight)
	if errs != nil {
		return Outcome{Errors: errs}
	}
	res := Compute(m)
	return Outcome{Result: &res}
}
