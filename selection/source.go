package selection

import (
	"unicode/utf8"

	"github.com/vdelcros/vma/control"
)

// Source is one strategy for retrieving the selected-character count of a
// control. ok reports whether the source produced a usable answer; a false
// ok hands the decision to the next source in the chain.
type Source interface {
	// Name identifies the source for diagnostics.
	Name() string

	// Length returns the selection length in characters.
	Length(ctrl control.Control) (n int, ok bool)
}

// RangeSource reads the selection directly from controls implementing
// control.Ranger. A zero-length result is reported as unusable so the
// chain can consult ambient sources, matching hosts where a control's own
// range fields read zero while a real selection exists elsewhere.
type RangeSource struct{}

// Name implements Source.
func (RangeSource) Name() string { return "range" }

// Length implements Source.
func (RangeSource) Length(ctrl control.Control) (int, bool) {
	r, ok := ctrl.(control.Ranger)
	if !ok {
		return 0, false
	}
	start, end, ok := r.SelectionRange()
	if !ok {
		return 0, false
	}
	n := end - start
	if n <= 0 {
		return 0, false
	}
	return n, true
}

// AmbientSource consults a host-global selection object and uses the
// length of its string form.
type AmbientSource struct {
	// Lookup returns the ambient selection text. ok is false when the
	// host has no such object.
	Lookup func() (text string, ok bool)
}

// Name implements Source.
func (AmbientSource) Name() string { return "ambient" }

// Length implements Source.
func (s AmbientSource) Length(control.Control) (int, bool) {
	if s.Lookup == nil {
		return 0, false
	}
	text, ok := s.Lookup()
	if !ok {
		return 0, false
	}
	return utf8.RuneCountInString(text), true
}

// Range is the object a legacy range factory yields.
type Range interface {
	// Text returns the text covered by the range.
	Text() string
}

// DocumentRangeSource consults a legacy range factory, the oldest
// selection API some hosts still carry.
type DocumentRangeSource struct {
	// CreateRange materializes the current selection as a Range. ok is
	// false when the API is absent.
	CreateRange func() (r Range, ok bool)
}

// Name implements Source.
func (DocumentRangeSource) Name() string { return "document-range" }

// Length implements Source.
func (s DocumentRangeSource) Length(control.Control) (int, bool) {
	if s.CreateRange == nil {
		return 0, false
	}
	r, ok := s.CreateRange()
	if !ok || r == nil {
		return 0, false
	}
	return utf8.RuneCountInString(r.Text()), true
}
