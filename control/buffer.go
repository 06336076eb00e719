package control

// Buffer is an editable in-memory text control with a cursor and a
// selection anchor. It backs the terminal field widget and the test
// suites. Content is kept as runes so positions are character positions.
//
// Buffer is not safe for concurrent use; each control belongs to a single
// event loop and evaluations run to completion before the next event.
type Buffer struct {
	content []rune
	cursor  int
	anchor  int
	attrs   map[string]string
}

// NewBuffer creates an empty buffer control.
func NewBuffer() *Buffer {
	return &Buffer{content: make([]rune, 0, 16)}
}

// Value returns the current text.
func (b *Buffer) Value() string {
	return string(b.content)
}

// SetValue replaces the text, clamping cursor and anchor.
func (b *Buffer) SetValue(text string) {
	b.content = []rune(text)
	b.cursor = b.clamp(b.cursor)
	b.anchor = b.clamp(b.anchor)
}

// Len returns the number of characters.
func (b *Buffer) Len() int {
	return len(b.content)
}

// Attr returns a named attribute.
func (b *Buffer) Attr(name string) (string, bool) {
	v, ok := b.attrs[name]
	return v, ok
}

// SetAttr sets a named attribute, such as the "max" constraint.
func (b *Buffer) SetAttr(name, value string) {
	if b.attrs == nil {
		b.attrs = make(map[string]string, 1)
	}
	b.attrs[name] = value
}

// SelectionRange returns the ordered selection bounds. It always succeeds
// for a Buffer.
func (b *Buffer) SelectionRange() (int, int, bool) {
	start, end := b.ordered()
	return start, end, true
}

// HasSelection returns true when the anchor and cursor differ.
func (b *Buffer) HasSelection() bool {
	return b.anchor != b.cursor
}

// SelectedText returns the selected text, empty when nothing is selected.
func (b *Buffer) SelectedText() string {
	start, end := b.ordered()
	return string(b.content[start:end])
}

// Cursor returns the cursor position.
func (b *Buffer) Cursor() int {
	return b.cursor
}

// SetCursor moves the cursor, collapsing any selection.
func (b *Buffer) SetCursor(pos int) {
	b.cursor = b.clamp(pos)
	b.anchor = b.cursor
}

// MoveCursor moves the cursor by delta characters. When extend is true the
// anchor stays put, growing or shrinking the selection.
func (b *Buffer) MoveCursor(delta int, extend bool) {
	b.cursor = b.clamp(b.cursor + delta)
	if !extend {
		b.anchor = b.cursor
	}
}

// SelectAll selects the whole value.
func (b *Buffer) SelectAll() {
	b.anchor = 0
	b.cursor = len(b.content)
}

// Select sets the selection to [start, end], cursor at end.
func (b *Buffer) Select(start, end int) {
	b.anchor = b.clamp(start)
	b.cursor = b.clamp(end)
}

// ClearSelection collapses the selection onto the cursor.
func (b *Buffer) ClearSelection() {
	b.anchor = b.cursor
}

// Replace substitutes the current selection with text and places the
// cursor after the insertion. With no selection it inserts at the cursor.
// This is the mutation a host performs after an Admit verdict.
func (b *Buffer) Replace(text string) {
	start, end := b.ordered()
	ins := []rune(text)
	out := make([]rune, 0, len(b.content)-(end-start)+len(ins))
	out = append(out, b.content[:start]...)
	out = append(out, ins...)
	out = append(out, b.content[end:]...)
	b.content = out
	b.cursor = start + len(ins)
	b.anchor = b.cursor
}

// Backspace deletes the selection, or the character before the cursor when
// nothing is selected.
func (b *Buffer) Backspace() {
	if b.HasSelection() {
		b.Replace("")
		return
	}
	if b.cursor == 0 {
		return
	}
	b.content = append(b.content[:b.cursor-1], b.content[b.cursor:]...)
	b.cursor--
	b.anchor = b.cursor
}

// Delete deletes the selection, or the character after the cursor when
// nothing is selected.
func (b *Buffer) Delete() {
	if b.HasSelection() {
		b.Replace("")
		return
	}
	if b.cursor >= len(b.content) {
		return
	}
	b.content = append(b.content[:b.cursor], b.content[b.cursor+1:]...)
	b.anchor = b.cursor
}

// ordered returns selection bounds with start <= end.
func (b *Buffer) ordered() (int, int) {
	if b.anchor <= b.cursor {
		return b.anchor, b.cursor
	}
	return b.cursor, b.anchor
}

// clamp bounds a position to [0, len(content)].
func (b *Buffer) clamp(pos int) int {
	if pos < 0 {
		return 0
	}
	if pos > len(b.content) {
		return len(b.content)
	}
	return pos
}
