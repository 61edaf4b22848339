package bmi

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Success(t *testing.T) {
	res, err := Evaluate("180", "70")
	require.NoError(t, err)

	assert.InDelta(t, 21.6049, res.Value, 0.0001)
	assert.Equal(t, "21.60", res.Display())
	assert.Equal(t, Normal, res.Status)
	assert.Equal(t, "21.60 (Normal)", res.String())
}

func TestEvaluate_TrimsWhitespace(t *testing.T) {
	res, err := Evaluate("  180 ", "\t70\n")
	require.NoError(t, err)
	assert.Equal(t, "21.60", res.Display())
}

func TestEvaluate_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name      string
		height    string
		weight    string
		expectErr ValidationErrors
	}{
		{
			name:   "both empty",
			height: "",
			weight: "",
			expectErr: ValidationErrors{
				FieldHeight: "Height is required",
				FieldWeight: "Weight is required",
			},
		},
		{
			name:      "whitespace only",
			height:    "   ",
			weight:    "70",
			expectErr: ValidationErrors{FieldHeight: "Height is required"},
		},
		{
			name:      "negative height",
			height:    "-5",
			weight:    "70",
			expectErr: ValidationErrors{FieldHeight: "Height must be a number > 0"},
		},
		{
			name:      "zero height",
			height:    "0",
			weight:    "70",
			expectErr: ValidationErrors{FieldHeight: "Height must be a number > 0"},
		},
		{
			name:      "unparseable height",
			height:    "abc",
			weight:    "70",
			expectErr: ValidationErrors{FieldHeight: "Height must be a number > 0"},
		},
		{
			name:   "mixed failures",
			height: "",
			weight: "heavy",
			expectErr: ValidationErrors{
				FieldHeight: "Height is required",
				FieldWeight: "Weight must be a number > 0",
			},
		},
		{
			name:      "trailing unit",
			height:    "180",
			weight:    "70kg",
			expectErr: ValidationErrors{FieldWeight: "Weight must be a number > 0"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Evaluate(tc.height, tc.weight)
			require.Error(t, err)
			assert.Equal(t, Result{}, res, "no result may be computed on failure")

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			if diff := cmp.Diff(tc.expectErr, verrs); diff != "" {
				t.Errorf("validation errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	first, err1 := Evaluate("165.5", "92.3")
	second, err2 := Evaluate("165.5", "92.3")
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)

	_, err1 = Evaluate("x", "")
	_, err2 = Evaluate("x", "")
	assert.Equal(t, err1, err2)
}

func TestEvaluateOutcome(t *testing.T) {
	ok := EvaluateOutcome("150", "90")
	require.True(t, ok.OK())
	assert.Nil(t, ok.Errors)
	assert.Equal(t, "40.00", ok.Result.Display())
	assert.Equal(t, ObeseClassIII, ok.Result.Status)

	bad := EvaluateOutcome("150", "-1")
	require.False(t, bad.OK())
	assert.Nil(t, bad.Result)
	assert.Equal(t, "Weight must be a number > 0", bad.Errors.Get(FieldWeight))
	assert.Empty(t, bad.Errors.Get(FieldHeight))
}

func TestNewMeasurement(t *testing.T) {
	m, err := NewMeasurement(200, 100)
	require.NoError(t, err)
	assert.Equal(t, 200.0, m.HeightCm())
	assert.Equal(t, 100.0, m.WeightKg())
	assert.Equal(t, 25.0, m.BMI())
	assert.Equal(t, Overweight, Compute(m).Status)

	_, err = NewMeasurement(0, -3)
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Len(t, verrs, 2)
}

func TestValidationErrors_Error(t *testing.T) {
	err := ValidationErrors{
		FieldWeight: "Weight is required",
		FieldHeight: "Height is required",
	}
	assert.Equal(t, "invalid input: Height is required; Weight is required", err.Error())
}

func TestValidationErrors_FollowsFieldOrder(t *testing.T) {
	saved := Fields
	t.Cleanup(func() { Fields = saved })
	Fields = []Field{FieldWeight, FieldHeight}

	err := ValidationErrors{
		FieldHeight: "Height is required",
		FieldWeight: "Weight is required",
	}
	assert.Equal(t, "invalid input: Weight is required; Height is required", err.Error())
	assert.Equal(t, "invalid input: Height is required", ValidationErrors{FieldHeight: "Height is required"}.Error())
}

func TestValidate_NilErrorOnSuccess(t *testing.T) {
	m, err := Validate("180", "70")
	assert.Nil(t, err)
	assert.Equal(t, 180.0, m.HeightCm())

	_, err = Validate("180", "")
	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, map[Field]string{FieldWeight: "Weight is required"}, map[Field]string(verrs))
}
