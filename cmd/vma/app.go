package main

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vdelcros/vma/config"
	"github.com/vdelcros/vma/dispatch"
	"github.com/vdelcros/vma/terminal"
)

// app owns the screen, the dispatcher, and the form fields.
type app struct {
	screen tcell.Screen
	d      *dispatch.Dispatcher

	fields []*terminal.Field
	focus  int

	// Bracketed paste accumulates runes between paste start and end.
	pasting  bool
	pasteBuf []rune
}

func newApp(screen tcell.Screen, d *dispatch.Dispatcher) *app {
	return &app{screen: screen, d: d}
}

// applyConfig rebuilds the form fields from a configuration.
func (a *app) applyConfig(cfg config.Config) {
	for _, f := range a.fields {
		f.Detach()
	}
	a.fields = a.fields[:0]

	for _, fc := range cfg.Fields {
		label := fc.Label
		if label == "" {
			label = fc.Name
		}
		max := fc.EffectiveMax(cfg.Guard)
		a.fields = append(a.fields, terminal.NewField(a.d, label, max, fc.Value))
	}
	if a.focus >= len(a.fields) {
		a.focus = 0
	}
}

// loop runs the event loop until the user quits.
func (a *app) loop() {
	for {
		a.draw()
		ev := a.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventInterrupt:
			if cfg, ok := ev.Data().(config.Config); ok {
				a.applyConfig(cfg)
			}
		case *tcell.EventPaste:
			a.handlePaste(ev)
		case *tcell.EventKey:
			if a.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey processes one key event. It returns true when the app should
// exit.
func (a *app) handleKey(ev *tcell.EventKey) bool {
	if a.pasting {
		if ev.Key() == tcell.KeyRune {
			a.pasteBuf = append(a.pasteBuf, ev.Rune())
		}
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyTab, tcell.KeyDown:
		a.moveFocus(1)
	case tcell.KeyBacktab, tcell.KeyUp:
		a.moveFocus(-1)
	default:
		if len(a.fields) > 0 {
			a.fields[a.focus].HandleKey(ev)
		}
	}
	return false
}

// handlePaste tracks bracketed paste boundaries and delivers the payload.
func (a *app) handlePaste(ev *tcell.EventPaste) {
	if ev.Start() {
		a.pasting = true
		a.pasteBuf = a.pasteBuf[:0]
		return
	}
	a.pasting = false
	if len(a.fields) > 0 {
		a.fields[a.focus].HandlePaste(string(a.pasteBuf))
	}
}

func (a *app) moveFocus(delta int) {
	if len(a.fields) == 0 {
		return
	}
	a.focus = (a.focus + delta + len(a.fields)) % len(a.fields)
}

func (a *app) draw() {
	a.screen.Clear()
	a.screen.HideCursor()

	title := "vma - numeric entry demo"
	titleStyle := tcell.StyleDefault.Bold(true)
	for i, r := range []rune(title) {
		a.screen.SetContent(2+i, 1, r, nil, titleStyle)
	}

	for i, f := range a.fields {
		f.Draw(a.screen, 2, 3+i*2, i == a.focus)
	}

	hint := "Tab: next field   Ctrl+A: select all   Ctrl+V: paste   Esc: quit"
	hintStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	_, h := a.screen.Size()
	for i, r := range []rune(hint) {
		a.screen.SetContent(2+i, h-2, r, nil, hintStyle)
	}

	a.screen.Show()
}
