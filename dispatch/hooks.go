package dispatch

import (
	"github.com/vdelcros/vma/control"
	"github.com/vdelcros/vma/guard"
)

// PreHook runs before an event is evaluated. Returning false forces a
// Reject verdict without consulting the evaluators.
type PreHook func(ctrl control.Control, ev Event) bool

// PostHook observes the verdict after evaluation.
type PostHook func(ctrl control.Control, ev Event, verdict guard.Verdict)

// Rule is an extra admission predicate consulted after the built-in
// checks admit an operation. inserted is the content the operation would
// add: the digit for an admitted keystroke, empty for control keys and
// modifier combinations, the full payload for a paste. A failing rule
// turns the verdict into Reject; rules never admit what the built-in
// checks rejected.
type Rule interface {
	// Name identifies the rule for diagnostics.
	Name() string

	// Admit reports whether the operation may proceed.
	Admit(value string, selectionLength int, inserted string) bool
}

// RuleFunc adapts a function to the Rule interface.
type RuleFunc struct {
	// RuleName identifies the rule.
	RuleName string

	// Fn is the predicate.
	Fn func(value string, selectionLength int, inserted string) bool
}

// Name implements Rule.
func (r RuleFunc) Name() string { return r.RuleName }

// Admit implements Rule.
func (r RuleFunc) Admit(value string, selectionLength int, inserted string) bool {
	if r.Fn == nil {
		return true
	}
	return r.Fn(value, selectionLength, inserted)
}
