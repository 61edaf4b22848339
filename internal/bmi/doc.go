/*
Package bmi turns two raw text inputs, a height in centimeters and a weight
in kilograms, into a Body Mass Index value and its status category.

The flow is validate, compute, classify:

	res, err := bmi.Evaluate("180", "70")
	// res.Display() == "21.60", res.Status == bmi.Normal

Validation checks both fields independently and reports every failure at
once through ValidationErrors. Nothing is computed unless both fields pass.
All functions in this package are pure and safe for concurrent use.
*/
package bmi
