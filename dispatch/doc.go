// Package dispatch connects host input events to the admission evaluators.
//
// The dispatcher is the boundary where host quirks end. Raw keystroke
// events are normalized once — character-code precedence, legacy
// control-key codes, modifier flags — into canonical Keystroke values, and
// paste payloads are resolved through an ordered chain of clipboard
// sources, so the evaluators in package guard never see platform detail.
//
// # Wiring
//
// Attach is the externally visible entry point. It couples a control with
// suppress-on-reject handlers:
//
//	d := dispatch.New()
//	binding := d.Attach(ctrl)
//
//	// in the host's keypress handler:
//	if !binding.Keypress(raw) {
//	    // suppress the native insertion
//	}
//
// The handlers return true when the host should allow the native default
// action and false when it must be suppressed.
//
// # Hooks and rules
//
// Pre-dispatch hooks run before evaluation and can force rejection by
// returning false. Post-dispatch hooks observe the verdict. Rules are
// extra admission predicates consulted only after the built-in checks
// admit an operation; a rule can narrow admission but never widen it.
package dispatch
