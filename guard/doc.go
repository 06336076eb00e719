// Package guard implements the admission evaluator for numeric text entry.
//
// The evaluator answers one question: given a control's current value and
// selection, should a pending keystroke or paste be allowed to insert?
// Every function here is pure and total — there is no state, no error
// return, and no input that panics. Malformed constraints degrade to
// "constraint disabled" and unrecognized keystrokes degrade to Reject.
//
// # Verdicts
//
// A keystroke is admitted when it is a control key (code zero), carries any
// modifier (the modifier bypass keeps native shortcuts working), or decodes
// to a digit — and, when a max constraint is active, when the predicted
// resulting length stays within the constraint's digit count:
//
//	predicted = runes(current) - selectionLength + admittedLength
//
// A paste is admitted when its payload is entirely digits and the same
// length prediction holds with the payload length substituted.
//
// # The max constraint
//
// The constraint is compared by digit count, not numeric magnitude: a
// three-digit max admits any three-digit value. This mirrors maxlength
// emulation, not numeric bounding.
package guard
