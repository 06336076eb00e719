// Package keycode provides the keystroke primitives for admission decisions.
//
// This package defines the two values every keystroke evaluation starts from:
//
//   - Code: the numeric character code reported by the host for a keystroke.
//     Code zero identifies non-printing control keys (arrows, backspace,
//     delete, tab), which never insert text.
//   - Modifier: bitflags for the Shift, Ctrl, Alt and Meta keys.
//
// Classification here is deliberately narrow: the admission core only needs
// to know whether a code decodes to a base-10 ASCII digit and whether any
// modifier is held. Everything else about the keystroke is the host's
// business.
package keycode
