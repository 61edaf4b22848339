package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/specialistvlad/bmicalc/internal/bmi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Observe(t *testing.T) {
	r := New()
	r.Observe(bmi.EvaluateOutcome("180", "70"))
	r.Observe(bmi.EvaluateOutcome("180", "70"))
	r.Observe(bmi.EvaluateOutcome("150", "90"))
	r.Observe(bmi.EvaluateOutcome("", ""))

	assert.Equal(t, 2.0, testutil.ToFloat64(r.Evaluations().WithLabelValues("ok", "Normal")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Evaluations().WithLabelValues("ok", "Obese Class III")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Evaluations().WithLabelValues("invalid", "none")))
}

func TestRecorder_Handler(t *testing.T) {
	r := New()
	r.Observe(bmi.EvaluateOutcome("180", "70"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `bmicalc_evaluations_total{outcome="ok",status="Normal"} 1`)
}

func TestNew_Isolated(t *testing.T) {
	// Two recorders must not share state or panic on registration.
	a, b := New(), New()
	a.Observe(bmi.EvaluateOutcome("180", "70"))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Evaluations().WithLabelValues("ok", "Normal")))
}
