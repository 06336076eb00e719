package dispatch

import "github.com/vdelcros/vma/keycode"

// Event is a canonical input event: a Keystroke or a Paste.
type Event interface {
	isEvent()
}

// Keystroke is a normalized keystroke event.
type Keystroke struct {
	// Code is the character code; keycode.None for control keys.
	Code keycode.Code

	// Key is the host's key identifier, kept for diagnostics.
	Key uint32

	// Modifiers are the modifier keys held during the keystroke.
	Modifiers keycode.Modifier
}

func (Keystroke) isEvent() {}

// Paste is a normalized paste event carrying the plain-text payload.
type Paste struct {
	Text string
}

func (Paste) isEvent() {}

// Raw mirrors the keystroke fields hosts actually deliver, before
// normalization. Hosts disagree about which field carries the character
// code; Normalize applies the precedence once so nothing downstream has
// to.
type Raw struct {
	// CharCode is the character code on hosts that report one. Control
	// keys carry zero here.
	CharCode uint32

	// HasCharCode is true when the host populates CharCode at all.
	// Legacy hosts leave it unset and report through Which or KeyCode.
	HasCharCode bool

	// Which is the legacy combined character field.
	Which uint32

	// KeyCode is the legacy key identifier field.
	KeyCode uint32

	// Modifier flags as delivered by the host event.
	Alt   bool
	Ctrl  bool
	Shift bool
	Meta  bool
}

// Legacy key identifiers that name control keys rather than characters.
// On hosts without a character-code field these arrive through the
// fallback fields and must not be mistaken for printable input.
const (
	legacyBackspace = 8
	legacyTab       = 9
	legacyEnd       = 35
	legacyHome      = 36
	legacyLeft      = 37
	legacyUp        = 38
	legacyRight     = 39
	legacyDown      = 40
	legacyDelete    = 46
)

// Normalize collapses the host fields into a canonical Keystroke.
// Precedence: CharCode when the host supplies it (zero included — that is
// the control-key signal), then Which, then KeyCode. Legacy control-key
// identifiers normalize to keycode.None.
func (r Raw) Normalize() Keystroke {
	code := r.CharCode
	if !r.HasCharCode {
		code = r.Which
		if code == 0 {
			code = r.KeyCode
		}
		if legacyControlKey(code) {
			code = 0
		}
	}
	return Keystroke{
		Code:      keycode.Code(code),
		Key:       r.KeyCode,
		Modifiers: keycode.FromFlags(r.Alt, r.Ctrl, r.Shift, r.Meta),
	}
}

// legacyControlKey reports whether a legacy key identifier names a
// non-printing control key.
func legacyControlKey(code uint32) bool {
	switch code {
	case legacyBackspace, legacyTab, legacyDelete:
		return true
	case legacyEnd, legacyHome, legacyLeft, legacyUp, legacyRight, legacyDown:
		return true
	}
	return false
}
