package selection

import (
	"testing"

	"github.com/vdelcros/vma/control"
)

// fakeSource scripts a single chain entry.
type fakeSource struct {
	name   string
	n      int
	ok     bool
	panics bool
	calls  int
}

func (f *fakeSource) Name() string { return f.name }

func (f *fakeSource) Length(control.Control) (int, bool) {
	f.calls++
	if f.panics {
		panic("source blew up")
	}
	return f.n, f.ok
}

// attrOnly implements Control without the Ranger capability.
type attrOnly struct{ value string }

func (c attrOnly) Value() string              { return c.value }
func (c attrOnly) Attr(string) (string, bool) { return "", false }

func TestResolveFirstUsableWins(t *testing.T) {
	first := &fakeSource{name: "first", n: 2, ok: true}
	second := &fakeSource{name: "second", n: 7, ok: true}
	r := NewResolver(first, second)

	if got := r.Resolve(attrOnly{}); got != 2 {
		t.Errorf("Resolve() = %d, want 2", got)
	}
	if second.calls != 0 {
		t.Errorf("second source consulted %d times, want 0", second.calls)
	}
}

func TestResolveFallsThroughInapplicable(t *testing.T) {
	first := &fakeSource{name: "first", ok: false}
	second := &fakeSource{name: "second", n: 4, ok: true}
	r := NewResolver(first, second)

	if got := r.Resolve(attrOnly{}); got != 4 {
		t.Errorf("Resolve() = %d, want 4", got)
	}
}

func TestResolvePanicIsolated(t *testing.T) {
	angry := &fakeSource{name: "angry", panics: true}
	calm := &fakeSource{name: "calm", n: 3, ok: true}
	r := NewResolver(angry, calm)

	if got := r.Resolve(attrOnly{}); got != 3 {
		t.Errorf("Resolve() after panicking source = %d, want 3", got)
	}
}

func TestResolveDefaultZero(t *testing.T) {
	r := NewResolver(&fakeSource{ok: false}, &fakeSource{panics: true})
	if got := r.Resolve(attrOnly{}); got != 0 {
		t.Errorf("Resolve() with empty chain = %d, want 0", got)
	}

	if got := NewResolver().Resolve(attrOnly{}); got != 0 {
		t.Errorf("Resolve() with no sources = %d, want 0", got)
	}
}

func TestResolveNegativeTreatedUnusable(t *testing.T) {
	bad := &fakeSource{name: "bad", n: -2, ok: true}
	good := &fakeSource{name: "good", n: 1, ok: true}
	if got := NewResolver(bad, good).Resolve(attrOnly{}); got != 1 {
		t.Errorf("Resolve() = %d, want 1", got)
	}
}

func TestRangeSource(t *testing.T) {
	src := RangeSource{}

	if _, ok := src.Length(attrOnly{value: "123"}); ok {
		t.Error("RangeSource usable on a control without Ranger")
	}

	b := control.NewBuffer()
	b.SetValue("12345")
	b.Select(1, 4)
	n, ok := src.Length(b)
	if !ok || n != 3 {
		t.Errorf("RangeSource.Length() = %d, %v, want 3, true", n, ok)
	}

	// A zero-length range falls through so ambient sources get a look.
	b.ClearSelection()
	if _, ok := src.Length(b); ok {
		t.Error("RangeSource reported a collapsed selection as usable")
	}
}

func TestAmbientSource(t *testing.T) {
	src := AmbientSource{}
	if _, ok := src.Length(attrOnly{}); ok {
		t.Error("AmbientSource with nil Lookup reported usable")
	}

	src = AmbientSource{Lookup: func() (string, bool) { return "", false }}
	if _, ok := src.Length(attrOnly{}); ok {
		t.Error("AmbientSource usable when host reports none")
	}

	src = AmbientSource{Lookup: func() (string, bool) { return "123", true }}
	n, ok := src.Length(attrOnly{})
	if !ok || n != 3 {
		t.Errorf("AmbientSource.Length() = %d, %v, want 3, true", n, ok)
	}
}

type textRange struct{ text string }

func (r textRange) Text() string { return r.text }

func TestDocumentRangeSource(t *testing.T) {
	src := DocumentRangeSource{}
	if _, ok := src.Length(attrOnly{}); ok {
		t.Error("DocumentRangeSource with nil factory reported usable")
	}

	src = DocumentRangeSource{CreateRange: func() (Range, bool) { return nil, false }}
	if _, ok := src.Length(attrOnly{}); ok {
		t.Error("DocumentRangeSource usable when API absent")
	}

	src = DocumentRangeSource{CreateRange: func() (Range, bool) { return textRange{"12"}, true }}
	n, ok := src.Length(attrOnly{})
	if !ok || n != 2 {
		t.Errorf("DocumentRangeSource.Length() = %d, %v, want 2, true", n, ok)
	}
}

func TestDefaultResolverOrdering(t *testing.T) {
	b := control.NewBuffer()
	b.SetValue("1234")
	b.Select(0, 4)

	ambient := AmbientSource{Lookup: func() (string, bool) { return "zz", true }}
	r := NewDefaultResolver(ambient)

	// The control's own range wins over the ambient source.
	if got := r.Resolve(b); got != 4 {
		t.Errorf("Resolve() = %d, want 4 from range source", got)
	}

	// With a collapsed range the ambient source answers.
	b.ClearSelection()
	if got := r.Resolve(b); got != 2 {
		t.Errorf("Resolve() = %d, want 2 from ambient source", got)
	}
}
