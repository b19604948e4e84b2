package tether

import (
	"strings"
	"testing"
	"time"
)

const testTimeline = `[
	{"time": 290, "word": "ONE", "style": "normal", "font": 0},
	{"time": 565, "word": "TWO", "style": "glitch", "font": 1},
	{"time": 840, "word": "THREE", "style": "bold", "font": 2},
	{"time": 700, "word": "LATE", "style": "normal", "font": 3}
]`

func ms(n int) time.Duration { return time.Duration(n) * time.Millisecond }

func TestDecodeTimeline(t *testing.T) {
	tl, err := DecodeTimeline(strings.NewReader(testTimeline))
	if err != nil {
		t.Fatal(err)
	}
	if tl.Len() != 4 {
		t.Fatalf("Len = %d, want 4", tl.Len())
	}
	// Sorted by time.
	if tl.Cue(2).Word != "LATE" || tl.Cue(3).Word != "THREE" {
		t.Errorf("cues not sorted: %v %v", tl.Cue(2), tl.Cue(3))
	}
	if tl.Cue(1).Style != CueGlitch || tl.Cue(3).Style != CueBold {
		t.Errorf("styles = %v %v", tl.Cue(1).Style, tl.Cue(3).Style)
	}
	if tl.End() != ms(1840) {
		t.Errorf("End = %v, want 1.84s", tl.End())
	}
}

func TestDecodeTimeline_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{`},
		{"bad style", `[{"time": 1, "word": "x", "style": "wavy"}]`},
		{"negative time", `[{"time": -5, "word": "x", "style": "normal"}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTimeline(strings.NewReader(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestTimelineAt(t *testing.T) {
	tl, err := DecodeTimeline(strings.NewReader(testTimeline))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		at   time.Duration
		word string
		ok   bool
	}{
		{0, "", false},
		{ms(289), "", false},
		{ms(290), "ONE", true},
		{ms(600), "TWO", true},
		{ms(839), "LATE", true},
		{time.Minute, "THREE", true},
	}
	for _, tt := range tests {
		c, ok := tl.At(tt.at)
		if ok != tt.ok || c.Word != tt.word {
			t.Errorf("At(%v) = %q, %v; want %q, %v", tt.at, c.Word, ok, tt.word, tt.ok)
		}
	}
}

func TestCursor(t *testing.T) {
	tl, err := DecodeTimeline(strings.NewReader(testTimeline))
	if err != nil {
		t.Fatal(err)
	}
	c := NewCursor(tl)
	if _, ok := c.Current(); ok {
		t.Error("cursor should start before the first cue")
	}
	if !c.Advance(ms(600)) {
		t.Error("Advance past two cues should report a change")
	}
	if cue, _ := c.Current(); cue.Word != "TWO" {
		t.Errorf("current = %q, want TWO", cue.Word)
	}
	if c.Advance(ms(650)) {
		t.Error("no new cue between 600 and 650ms")
	}
	// Going backwards does not rewind.
	c.Advance(ms(100))
	if cue, _ := c.Current(); cue.Word != "TWO" {
		t.Errorf("current after rewind attempt = %q", cue.Word)
	}

	c.Advance(ms(900))
	if c.Finished(ms(1800)) {
		t.Error("finished before the tail elapsed")
	}
	if !c.Finished(ms(1841)) {
		t.Error("not finished after the tail")
	}

	c.Reset()
	if _, ok := c.Current(); ok || c.Finished(ms(5000)) {
		t.Error("Reset did not rewind")
	}
}

func TestCueStyleString(t *testing.T) {
	if CueGlitch.String() != "glitch" || CueStyle(9).String() != "CueStyle(9)" {
		t.Errorf("got %q and %q", CueGlitch.String(), CueStyle(9).String())
	}
}
