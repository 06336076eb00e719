package selection

import "github.com/vdelcros/vma/control"

// Resolver walks an ordered chain of sources and returns the first usable
// selection length.
type Resolver struct {
	sources []Source
}

// NewResolver creates a resolver over the given sources, consulted in
// order.
func NewResolver(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// NewDefaultResolver creates the standard chain: the control's own range
// first, then any ambient sources the host can supply.
func NewDefaultResolver(extra ...Source) *Resolver {
	sources := make([]Source, 0, 1+len(extra))
	sources = append(sources, RangeSource{})
	sources = append(sources, extra...)
	return &Resolver{sources: sources}
}

// Resolve returns the number of selected characters in ctrl, or 0 when no
// source can tell. A panicking source is treated the same as an
// inapplicable one; failures never reach the caller.
func (r *Resolver) Resolve(ctrl control.Control) int {
	for _, src := range r.sources {
		if n, ok := probe(src, ctrl); ok {
			return n
		}
	}
	return 0
}

// probe runs a single source with panic isolation.
func probe(src Source, ctrl control.Control) (n int, ok bool) {
	defer func() {
		if recover() != nil {
			n, ok = 0, false
		}
	}()
	n, ok = src.Length(ctrl)
	if n < 0 {
		return 0, false
	}
	return n, ok
}
