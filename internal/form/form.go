// Package form holds the state of the single-screen BMI form as an explicit
// value. The state only changes in response to discrete events, and the
// evaluator runs only when the form is submitted.
package form

import "github.com/specialistvlad/bmicalc/internal/bmi"

// State is an immutable snapshot of the form.
type State struct {
	HeightText string
	WeightText string

	// Last is the outcome of the most recent submit, nil before the first one.
	Last *bmi.Outcome
	// Stale is set when a field was edited after Last was produced.
	Stale bool
}

// Event is anything that can change the form.
type Event interface {
	apply(State) State
}

// HeightChanged replaces the height text.
type HeightChanged struct{ Text string }

// WeightChanged replaces the weight text.
type WeightChanged struct{ Text string }

// Submitted asks for an evaluation of the current text.
type Submitted struct{}

// Reset clears the form back to its initial state.
type Reset struct{}

func (e HeightChanged) apply(s State) State {
	if s.HeightText != e.Text && s.Last != nil {
		s.Stale = true
	}
	s.HeightText = e.Text
	return s
}

func (e WeightChanged) apply(s State) State {
	if s.WeightText != e.Text && s.Last != nil {
		s.Stale = true
	}
	s.WeightText = e.Text
	return s
}

// apply replaces the previous outcome, errors included, with a fresh one.
func (Submitted) apply(s State) State {
	s.Stale = false
	outcome := bmi.EvaluateOutcome(s.HeightText, s.WeightText)
	s.Last = &outcome
	return s
}

func (Reset) apply(State) State {
	return State{}
}

// Apply returns the state that results from ev. The receiver is not modified.
func (s State) Apply(ev Event) State {
	if ev == nil {
		return s
	}
	return ev.apply(s)
}

// View is the render model derived from a State.
type View struct {
	HeightText  string
	WeightText  string
	HeightError string
	WeightError string

	ShowResult bool
	BMI        string
	Status     string
	// Stale marks a result that no longer matches the text in the fields.
	Stale bool
}

// View computes what a presentation layer should display.
func (s State) View() View {
	v := View{HeightText: s.HeightText, WeightText: s.WeightText}
	if s.Last == nil {
		return v
	}

	if !s.Last.OK() {
		v.HeightError = s.Last.Errors.Get(bmi.FieldHeight)
		v.WeightError = s.Last.Errors.Get(bmi.FieldWeight)
		return v
	}

	v.ShowResult = true
	v.BMI = s.Last.Result.Display()
	v.Status = s.Last.Result.Status.String()
	v.Stale = s.Stale
	return v
}
