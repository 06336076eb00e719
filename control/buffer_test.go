package control

import "testing"

func TestBufferValueAndAttrs(t *testing.T) {
	b := NewBuffer()
	if b.Value() != "" {
		t.Errorf("new Buffer.Value() = %q, want empty", b.Value())
	}

	if _, ok := b.Attr(MaxAttr); ok {
		t.Error("Attr(max) on fresh buffer reported ok")
	}

	b.SetAttr(MaxAttr, "100")
	v, ok := b.Attr(MaxAttr)
	if !ok || v != "100" {
		t.Errorf("Attr(max) = %q, %v, want \"100\", true", v, ok)
	}

	b.SetValue("123")
	if b.Value() != "123" {
		t.Errorf("Value() = %q, want %q", b.Value(), "123")
	}
	if b.Len() != 3 {
		t.Errorf("Len() = %d, want 3", b.Len())
	}
}

func TestBufferSelection(t *testing.T) {
	b := NewBuffer()
	b.SetValue("12345")

	start, end, ok := b.SelectionRange()
	if !ok || start != 0 || end != 0 {
		t.Errorf("initial SelectionRange() = %d, %d, %v, want 0, 0, true", start, end, ok)
	}

	b.SelectAll()
	start, end, _ = b.SelectionRange()
	if start != 0 || end != 5 {
		t.Errorf("SelectAll range = [%d, %d], want [0, 5]", start, end)
	}
	if b.SelectedText() != "12345" {
		t.Errorf("SelectedText() = %q, want %q", b.SelectedText(), "12345")
	}

	b.Select(3, 1)
	start, end, _ = b.SelectionRange()
	if start != 1 || end != 3 {
		t.Errorf("reversed Select range = [%d, %d], want ordered [1, 3]", start, end)
	}

	b.ClearSelection()
	if b.HasSelection() {
		t.Error("HasSelection() = true after ClearSelection")
	}
}

func TestBufferMoveCursor(t *testing.T) {
	b := NewBuffer()
	b.SetValue("123")
	b.SetCursor(3)

	b.MoveCursor(-1, true)
	b.MoveCursor(-1, true)
	start, end, _ := b.SelectionRange()
	if start != 1 || end != 3 {
		t.Errorf("extended selection = [%d, %d], want [1, 3]", start, end)
	}

	b.MoveCursor(-10, false)
	if b.Cursor() != 0 {
		t.Errorf("Cursor() = %d after clamped move, want 0", b.Cursor())
	}
	if b.HasSelection() {
		t.Error("plain move kept a selection")
	}
}

func TestBufferReplace(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		selStart   int
		selEnd     int
		text       string
		want       string
		wantCursor int
	}{
		{"insert at cursor", "12", 2, 2, "5", "125", 3},
		{"replace full selection", "123", 0, 3, "5", "5", 1},
		{"replace middle", "12345", 1, 4, "9", "195", 2},
		{"delete selection", "123", 1, 2, "", "13", 1},
	}

	for _, tt := range tests {
		b := NewBuffer()
		b.SetValue(tt.value)
		b.Select(tt.selStart, tt.selEnd)
		b.Replace(tt.text)
		if b.Value() != tt.want {
			t.Errorf("%s: Value() = %q, want %q", tt.name, b.Value(), tt.want)
		}
		if b.Cursor() != tt.wantCursor {
			t.Errorf("%s: Cursor() = %d, want %d", tt.name, b.Cursor(), tt.wantCursor)
		}
		if b.HasSelection() {
			t.Errorf("%s: selection survived Replace", tt.name)
		}
	}
}

func TestBufferBackspaceDelete(t *testing.T) {
	b := NewBuffer()
	b.SetValue("123")
	b.SetCursor(3)

	b.Backspace()
	if b.Value() != "12" || b.Cursor() != 2 {
		t.Errorf("Backspace: value %q cursor %d, want \"12\" 2", b.Value(), b.Cursor())
	}

	b.SetCursor(0)
	b.Backspace() // nothing before cursor
	if b.Value() != "12" {
		t.Errorf("Backspace at 0 changed value to %q", b.Value())
	}

	b.Delete()
	if b.Value() != "2" || b.Cursor() != 0 {
		t.Errorf("Delete: value %q cursor %d, want \"2\" 0", b.Value(), b.Cursor())
	}

	b.SetValue("456")
	b.Select(0, 3)
	b.Backspace()
	if b.Value() != "" {
		t.Errorf("Backspace with selection: value %q, want empty", b.Value())
	}
}
