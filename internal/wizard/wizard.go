// Package wizard provides the generic multi-step form engine shared by the
// job-creation, application, and signup flows. The engine owns a draft and a
// step cursor; it knows nothing about field semantics and performs no
// validation or network I/O — callers gate advancement behind their own
// validators.
package wizard

import (
	"errors"
	"math"
)

// Draft is the in-memory, not-yet-submitted form state of one wizard
// instance: field name to value of whatever type the form needs.
type Draft map[string]interface{}

// Engine holds the ordered step names, the current step index, and the
// draft. It is not safe for concurrent use; a wizard instance belongs to a
// single flow.
type Engine struct {
	steps []string
	step  int
	draft Draft
}

// ErrNoSteps is returned when an engine is created with an empty step list.
var ErrNoSteps = errors.New("wizard requires at least one step")

// New creates an engine over the given step sequence, seeded with the
// initial draft. A nil initial draft starts empty.
func New(steps []string, initial Draft) (*Engine, error) {
	if len(steps) == 0 {
		return nil, ErrNoSteps
	}

	draft := Draft{}
	for k, v := range initial {
		draft[k] = v
	}

	return &Engine{
		steps: append([]string(nil), steps...),
		draft: draft,
	}, nil
}

// Steps returns the step names in order.
func (e *Engine) Steps() []string {
	return append([]string(nil), e.steps...)
}

// Step returns the current step index.
func (e *Engine) Step() int { return e.step }

// StepName returns the current step's name.
func (e *Engine) StepName() string { return e.steps[e.step] }

// IsLast reports whether the cursor sits on the final step.
func (e *Engine) IsLast() bool { return e.step == len(e.steps)-1 }

// Percent returns the progress through the steps, rounded, for headers.
func (e *Engine) Percent() int {
	return int(math.Round(float64(e.step+1) / float64(len(e.steps)) * 100))
}

// Draft returns a copy of the current draft.
func (e *Engine) Draft() Draft {
	out := Draft{}
	for k, v := range e.draft {
		out[k] = v
	}
	return out
}

// Get returns one draft field.
func (e *Engine) Get(field string) (interface{}, bool) {
	v, ok := e.draft[field]
	return v, ok
}

// Patch shallow-merges a partial update into the draft, last write wins per
// field, and returns the updated draft. It does not validate.
func (e *Engine) Patch(partial Draft) Draft {
	for k, v := range partial {
		e.draft[k] = v
	}
	return e.Draft()
}

// Next advances one step, clamped at the last step. The engine performs no
// validation; callers must gate advancement first.
func (e *Engine) Next() {
	if e.step < len(e.steps)-1 {
		e.step++
	}
}

// Prev retreats one step, clamped at step 0.
func (e *Engine) Prev() {
	if e.step > 0 {
		e.step--
	}
}

// Goto jumps to an arbitrary step, silently clamped into range. Out-of-range
// targets land on the nearest boundary; Goto never fails.
func (e *Engine) Goto(index int) {
	if index < 0 {
		index = 0
	}
	if index > len(e.steps)-1 {
		index = len(e.steps) - 1
	}
	e.step = index
}
