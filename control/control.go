package control

// Control is the read-only view of a text-entry control.
type Control interface {
	// Value returns the control's current text.
	Value() string

	// Attr returns a named attribute of the control. The max constraint is
	// the "max" attribute. ok is false when the attribute is absent.
	Attr(name string) (value string, ok bool)
}

// MaxAttr is the attribute name carrying the max constraint.
const MaxAttr = "max"

// Ranger is the optional capability of controls that can report their
// selection range directly. Implementations must keep
// 0 <= start <= end <= len(value) when ok is true.
type Ranger interface {
	// SelectionRange returns the current selection bounds in runes.
	// ok is false when the control cannot determine its selection.
	SelectionRange() (start, end int, ok bool)
}
