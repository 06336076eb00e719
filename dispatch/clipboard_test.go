package dispatch

import "testing"

type scriptedClipboard struct {
	text   string
	ok     bool
	panics bool
}

func (scriptedClipboard) Name() string { return "scripted" }

func (s scriptedClipboard) Text() (string, bool) {
	if s.panics {
		panic("clipboard unavailable")
	}
	return s.text, s.ok
}

func TestResolvePaste(t *testing.T) {
	tests := []struct {
		name     string
		sources  []ClipboardSource
		wantText string
		wantOK   bool
	}{
		{
			"payload wins",
			[]ClipboardSource{PayloadSource{Payload: "45", Present: true}, scriptedClipboard{text: "99", ok: true}},
			"45", true,
		},
		{
			"fallback on absent payload",
			[]ClipboardSource{PayloadSource{}, scriptedClipboard{text: "99", ok: true}},
			"99", true,
		},
		{
			"panicking source isolated",
			[]ClipboardSource{scriptedClipboard{panics: true}, scriptedClipboard{text: "7", ok: true}},
			"7", true,
		},
		{
			"nothing available",
			[]ClipboardSource{PayloadSource{}, scriptedClipboard{}},
			"", false,
		},
		{
			"no sources",
			nil,
			"", false,
		},
	}

	for _, tt := range tests {
		ev, ok := resolvePaste(tt.sources...)
		if ok != tt.wantOK || ev.Text != tt.wantText {
			t.Errorf("resolvePaste(%s) = %q, %v, want %q, %v", tt.name, ev.Text, ok, tt.wantText, tt.wantOK)
		}
	}
}

func TestPayloadSource(t *testing.T) {
	if text, ok := (PayloadSource{Payload: "12", Present: true}).Text(); !ok || text != "12" {
		t.Errorf("PayloadSource.Text() = %q, %v, want \"12\", true", text, ok)
	}
	if _, ok := (PayloadSource{Payload: "12"}).Text(); ok {
		t.Error("absent PayloadSource reported ok")
	}
}
