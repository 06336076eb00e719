package keycode

import "fmt"

// Code is the numeric character code carried by a keystroke event.
// For printable keys it is the code point of the character the key would
// insert. The zero value identifies non-printing control keys.
type Code uint32

// None is the code reported for non-printing control keys (arrows,
// backspace, delete, tab). Control keys never insert text.
const None Code = 0

// FromRune returns the code for a printable character.
func FromRune(r rune) Code {
	return Code(r)
}

// Rune returns the character the code decodes to.
func (c Code) Rune() rune {
	return rune(c)
}

// IsControl returns true for the control-key code.
func (c Code) IsControl() bool {
	return c == None
}

// IsDigit returns true iff the decoded character is a base-10 ASCII digit.
func (c Code) IsDigit() bool {
	return c >= '0' && c <= '9'
}

// String returns a readable form, "Control" for the zero code.
func (c Code) String() string {
	if c == None {
		return "Control"
	}
	return fmt.Sprintf("%q", rune(c))
}
