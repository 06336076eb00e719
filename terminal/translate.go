package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vdelcros/vma/dispatch"
	"github.com/vdelcros/vma/keycode"
)

// TranslateKey maps a tcell key event onto the canonical keystroke shape.
// Rune keys carry their code point; editing and navigation keys map to
// the control-key code since they never insert text.
func TranslateKey(ev *tcell.EventKey) dispatch.Keystroke {
	mods := translateModifiers(ev.Modifiers())

	if ev.Key() == tcell.KeyRune {
		return dispatch.Keystroke{
			Code:      keycode.FromRune(ev.Rune()),
			Modifiers: mods,
		}
	}

	// tcell reports Ctrl-modified letters as dedicated key constants with
	// the Ctrl flag; surface them as modified letter runes so the
	// modifier bypass sees them the way other hosts report shortcuts.
	if mods.HasCtrl() && ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		letter := 'a' + rune(ev.Key()-tcell.KeyCtrlA)
		return dispatch.Keystroke{
			Code:      keycode.FromRune(letter),
			Modifiers: mods,
		}
	}

	return dispatch.Keystroke{Code: keycode.None, Modifiers: mods}
}

// translateModifiers maps the tcell modifier mask.
func translateModifiers(m tcell.ModMask) keycode.Modifier {
	return keycode.FromFlags(
		m&tcell.ModAlt != 0,
		m&tcell.ModCtrl != 0,
		m&tcell.ModShift != 0,
		m&tcell.ModMeta != 0,
	)
}
