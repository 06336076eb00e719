package dispatch

import (
	"testing"

	"github.com/vdelcros/vma/keycode"
)

func TestNormalizePrecedence(t *testing.T) {
	tests := []struct {
		name string
		raw  Raw
		want keycode.Code
	}{
		{"char code wins", Raw{CharCode: '5', HasCharCode: true, Which: 'x', KeyCode: 99}, keycode.FromRune('5')},
		{"char code zero means control key", Raw{CharCode: 0, HasCharCode: true, Which: 'x', KeyCode: 37}, keycode.None},
		{"which fallback", Raw{Which: '7', KeyCode: 99}, keycode.FromRune('7')},
		{"key code last", Raw{KeyCode: '9'}, keycode.FromRune('9')},
	}

	for _, tt := range tests {
		got := tt.raw.Normalize()
		if got.Code != tt.want {
			t.Errorf("Normalize(%s).Code = %v, want %v", tt.name, got.Code, tt.want)
		}
	}
}

func TestNormalizeLegacyControlKeys(t *testing.T) {
	// On hosts without a character-code field these identifiers collide
	// with printable code points ('%' is 37, '.' is 46) and must map to
	// the control-key code instead.
	legacy := []uint32{8, 9, 35, 36, 37, 38, 39, 40, 46}
	for _, code := range legacy {
		ev := Raw{KeyCode: code}.Normalize()
		if ev.Code != keycode.None {
			t.Errorf("Normalize(KeyCode=%d).Code = %v, want None", code, ev.Code)
		}
	}

	// With a character-code field present the same values are real input.
	ev := Raw{CharCode: 37, HasCharCode: true}.Normalize()
	if ev.Code != keycode.FromRune('%') {
		t.Errorf("Normalize(CharCode=37).Code = %v, want '%%'", ev.Code)
	}
}

func TestNormalizeModifiers(t *testing.T) {
	ev := Raw{CharCode: 'a', HasCharCode: true, Ctrl: true, Shift: true}.Normalize()
	want := keycode.ModCtrl | keycode.ModShift
	if ev.Modifiers != want {
		t.Errorf("Normalize modifiers = %v, want %v", ev.Modifiers, want)
	}
}

func TestNormalizeKeepsKeyCode(t *testing.T) {
	ev := Raw{CharCode: '5', HasCharCode: true, KeyCode: 53}.Normalize()
	if ev.Key != 53 {
		t.Errorf("Normalize.Key = %d, want 53", ev.Key)
	}
}
