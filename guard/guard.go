package guard

import (
	"unicode/utf8"

	"github.com/vdelcros/vma/keycode"
)

// Verdict is the binary outcome of an admission evaluation.
type Verdict uint8

const (
	// Reject suppresses the pending input operation.
	Reject Verdict = iota

	// Admit lets the pending input operation proceed.
	Admit
)

// Admitted returns true for an Admit verdict.
func (v Verdict) Admitted() bool {
	return v == Admit
}

// String returns "Admit" or "Reject".
func (v Verdict) String() string {
	if v == Admit {
		return "Admit"
	}
	return "Reject"
}

// AdmissibleKeystroke classifies a single keystroke. Control keys are always
// admissible since they never insert text. Any held modifier admits
// unconditionally so native shortcuts (copy, paste, select-all) keep
// working; that bypass also lets shifted letters through, a known
// over-permissiveness kept for shortcut compatibility. Otherwise only
// digits pass.
func AdmissibleKeystroke(code keycode.Code, mods keycode.Modifier) bool {
	if code.IsControl() {
		return true
	}
	if !mods.IsEmpty() {
		return true
	}
	return code.IsDigit()
}

// AdmittedLength returns the number of characters the keystroke will insert
// if allowed through: 1 for a bare digit, 0 for control keys, modifier
// combinations, and anything that would be blocked anyway.
func AdmittedLength(code keycode.Code, mods keycode.Modifier) int {
	if code.IsControl() || !mods.IsEmpty() {
		return 0
	}
	if code.IsDigit() {
		return 1
	}
	return 0
}

// ClipboardNumeric reports whether a paste payload is entirely ASCII
// digits. Empty payloads are rejected.
func ClipboardNumeric(text string) bool {
	return digitString(text)
}

// KeystrokeExceedsMax predicts the control's length after the keystroke and
// reports whether it would overflow the constraint. A disabled constraint
// never overflows.
func KeystrokeExceedsMax(current string, selectionLength int, code keycode.Code, mods keycode.Modifier, c Constraint) bool {
	return exceeds(current, selectionLength, AdmittedLength(code, mods), c)
}

// PasteExceedsMax is the paste counterpart of KeystrokeExceedsMax, with the
// full payload length as the inserted length.
func PasteExceedsMax(current string, selectionLength int, text string, c Constraint) bool {
	return exceeds(current, selectionLength, utf8.RuneCountInString(text), c)
}

// EvaluateKeystroke combines classification and length prediction into the
// final keystroke verdict.
func EvaluateKeystroke(current string, selectionLength int, code keycode.Code, mods keycode.Modifier, c Constraint) Verdict {
	if !AdmissibleKeystroke(code, mods) {
		return Reject
	}
	if KeystrokeExceedsMax(current, selectionLength, code, mods, c) {
		return Reject
	}
	return Admit
}

// EvaluatePaste combines the numeric-payload check and length prediction
// into the final paste verdict.
func EvaluatePaste(current string, selectionLength int, text string, c Constraint) Verdict {
	if !ClipboardNumeric(text) {
		return Reject
	}
	if PasteExceedsMax(current, selectionLength, text, c) {
		return Reject
	}
	return Admit
}

// exceeds applies the length-prediction formula: the selection is replaced
// by the inserted content, so its length is subtracted before the insertion
// length is added.
func exceeds(current string, selectionLength, insertedLength int, c Constraint) bool {
	limit := c.DigitLength()
	if limit == 0 {
		return false
	}
	predicted := utf8.RuneCountInString(current) - selectionLength + insertedLength
	return predicted > limit
}
