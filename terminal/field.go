package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vdelcros/vma/control"
	"github.com/vdelcros/vma/dispatch"
	"github.com/vdelcros/vma/guard"
)

// Field is a single-line numeric entry widget. Every keystroke and paste
// is evaluated through the field's binding before the buffer is touched;
// rejected operations are dropped, which is the terminal rendering of
// "suppress the default action".
type Field struct {
	label   string
	buf     *control.Buffer
	binding *dispatch.Binding
	d       *dispatch.Dispatcher
}

// NewField creates a field bound to the dispatcher. max is the field's
// max attribute; empty leaves the constraint disabled.
func NewField(d *dispatch.Dispatcher, label, max, value string) *Field {
	buf := control.NewBuffer()
	if max != "" {
		buf.SetAttr(control.MaxAttr, max)
	}
	buf.SetValue(value)
	buf.SetCursor(buf.Len())

	return &Field{
		label:   label,
		buf:     buf,
		binding: d.Attach(buf),
		d:       d,
	}
}

// Label returns the field's label.
func (f *Field) Label() string {
	return f.label
}

// Value returns the field's current text.
func (f *Field) Value() string {
	return f.buf.Value()
}

// Buffer exposes the underlying control, mainly for tests.
func (f *Field) Buffer() *control.Buffer {
	return f.buf
}

// Detach releases the field's binding.
func (f *Field) Detach() {
	f.d.Detach(f.binding.ID())
}

// HandleKey routes one key event through admission and applies the
// admitted mutation. It returns true when the event was consumed.
func (f *Field) HandleKey(ev *tcell.EventKey) bool {
	ks := TranslateKey(ev)
	if !f.binding.Keystroke(ks) {
		// Rejected: swallow the event so nothing is inserted.
		return true
	}

	// Admitted. Control keys mutate through their editing semantics;
	// shortcut combinations are interpreted here; bare digits insert.
	extend := ks.Modifiers.HasShift()
	switch ev.Key() {
	case tcell.KeyLeft:
		f.buf.MoveCursor(-1, extend)
	case tcell.KeyRight:
		f.buf.MoveCursor(1, extend)
	case tcell.KeyHome:
		f.buf.MoveCursor(-f.buf.Len(), extend)
	case tcell.KeyEnd:
		f.buf.MoveCursor(f.buf.Len(), extend)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		f.buf.Backspace()
	case tcell.KeyDelete:
		f.buf.Delete()
	case tcell.KeyCtrlA:
		f.buf.SelectAll()
	case tcell.KeyCtrlV:
		f.pasteFromClipboard()
	case tcell.KeyRune:
		if guard.AdmittedLength(ks.Code, ks.Modifiers) > 0 {
			f.buf.Replace(string(ks.Code.Rune()))
		}
	default:
		return false
	}
	return true
}

// HandlePaste routes a paste payload (bracketed paste) through admission.
func (f *Field) HandlePaste(text string) {
	if f.binding.Paste(text, true) {
		f.buf.Replace(text)
	}
}

// pasteFromClipboard reads the system clipboard and treats its content as
// a paste event.
func (f *Field) pasteFromClipboard() {
	text, ok := dispatch.SystemClipboard{}.Text()
	if !ok {
		return
	}
	if f.binding.Paste(text, true) {
		f.buf.Replace(text)
	}
}

// Draw renders the field at (x, y). The focused field shows the hardware
// cursor and highlights its selection.
func (f *Field) Draw(s tcell.Screen, x, y int, focused bool) {
	labelStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)
	if focused {
		labelStyle = tcell.StyleDefault.Bold(true)
	}

	col := x
	for _, r := range f.label {
		s.SetContent(col, y, r, nil, labelStyle)
		col++
	}
	s.SetContent(col, y, ':', nil, labelStyle)
	col += 2

	selStart, selEnd, _ := f.buf.SelectionRange()
	valueStart := col
	for i, r := range []rune(f.buf.Value()) {
		style := tcell.StyleDefault
		if focused && f.buf.HasSelection() && i >= selStart && i < selEnd {
			style = style.Reverse(true)
		}
		s.SetContent(col, y, r, nil, style)
		col++
	}

	if max, ok := f.buf.Attr(control.MaxAttr); ok {
		hint := " (max " + max + ")"
		hintStyle := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		for _, r := range hint {
			s.SetContent(col, y, r, nil, hintStyle)
			col++
		}
	}

	if focused {
		s.ShowCursor(valueStart+f.buf.Cursor(), y)
	}
}
