// Package terminal hosts guarded numeric fields in a tcell terminal.
//
// TranslateKey maps tcell key events onto the canonical keystroke shape
// the dispatcher evaluates, and Field is a single-line entry widget that
// asks its binding for a verdict before every mutation. The widget is the
// "external dispatcher" role from the admission model: it owns the event
// loop glue and applies suppress-on-reject, while the decision logic
// stays in the guard.
package terminal
