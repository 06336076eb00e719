package dispatch

import "github.com/atotto/clipboard"

// ClipboardSource is one strategy for retrieving a paste payload. Probed
// in order, first usable answer wins, like the selection chain.
type ClipboardSource interface {
	// Name identifies the source for diagnostics.
	Name() string

	// Text returns the pending paste payload. ok is false when this
	// source has no payload to offer.
	Text() (string, bool)
}

// PayloadSource offers the payload carried on the paste event itself.
type PayloadSource struct {
	Payload string
	Present bool
}

// Name implements ClipboardSource.
func (PayloadSource) Name() string { return "event-payload" }

// Text implements ClipboardSource.
func (s PayloadSource) Text() (string, bool) {
	return s.Payload, s.Present
}

// SystemClipboard reads the operating system clipboard. It is the fallback
// for hosts whose paste events carry no payload.
type SystemClipboard struct{}

// Name implements ClipboardSource.
func (SystemClipboard) Name() string { return "system-clipboard" }

// Text implements ClipboardSource.
func (SystemClipboard) Text() (string, bool) {
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", false
	}
	return s, true
}

// resolvePaste probes the sources in order and builds the canonical paste
// event. ok is false when no source has a payload; the caller suppresses
// the paste since its content cannot be validated.
func resolvePaste(sources ...ClipboardSource) (Paste, bool) {
	for _, src := range sources {
		if text, ok := probeClipboard(src); ok {
			return Paste{Text: text}, true
		}
	}
	return Paste{}, false
}

// probeClipboard runs a single source with panic isolation.
func probeClipboard(src ClipboardSource) (text string, ok bool) {
	defer func() {
		if recover() != nil {
			text, ok = "", false
		}
	}()
	return src.Text()
}
