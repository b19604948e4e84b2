package tether

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"time"
)

// CueStyle selects how a lyric word is presented.
type CueStyle uint8

const (
	CueNormal CueStyle = iota
	CueGlitch
	CueBold
)

var cueStyleNames = [...]string{"normal", "glitch", "bold"}

// String returns the style name used in timeline JSON.
func (s CueStyle) String() string {
	if int(s) < len(cueStyleNames) {
		return cueStyleNames[s]
	}
	return fmt.Sprintf("CueStyle(%d)", s)
}

// UnmarshalJSON accepts the style name.
func (s *CueStyle) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for i, n := range cueStyleNames {
		if n == name {
			*s = CueStyle(i)
			return nil
		}
	}
	return fmt.Errorf("tether: unknown cue style %q", name)
}

// MarshalJSON writes the style name.
func (s CueStyle) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Cue is one timed lyric word.
type Cue struct {
	At    time.Duration
	Word  string
	Style CueStyle
	Font  int // index into the host's font rotation
}

type cueJSON struct {
	Time  int64    `json:"time"` // milliseconds
	Word  string   `json:"word"`
	Style CueStyle `json:"style"`
	Font  int      `json:"font"`
}

// LyricTail is how long past the last cue a Cursor keeps running.
const LyricTail = time.Second

// Timeline is an ordered list of cues.
type Timeline struct {
	cues []Cue
}

// NewTimeline returns a timeline over cues sorted by time. Cues with equal
// times keep their relative order.
func NewTimeline(cues []Cue) *Timeline {
	c := append([]Cue(nil), cues...)
	sort.SliceStable(c, func(i, j int) bool { return c[i].At < c[j].At })
	return &Timeline{cues: c}
}

// DecodeTimeline reads a JSON array of {"time","word","style","font"}
// objects, with time in milliseconds.
func DecodeTimeline(r io.Reader) (*Timeline, error) {
	var raw []cueJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("tether: decode timeline: %w", err)
	}
	cues := make([]Cue, len(raw))
	for i, c := range raw {
		if c.Time < 0 {
			return nil, fmt.Errorf("tether: decode timeline: cue %d has negative time", i)
		}
		cues[i] = Cue{
			At:    time.Duration(c.Time) * time.Millisecond,
			Word:  c.Word,
			Style: c.Style,
			Font:  c.Font,
		}
	}
	return NewTimeline(cues), nil
}

// Len returns the number of cues.
func (tl *Timeline) Len() int { return len(tl.cues) }

// Cue returns cue i.
func (tl *Timeline) Cue(i int) Cue { return tl.cues[i] }

// End returns the time after which a Cursor reports Finished.
func (tl *Timeline) End() time.Duration {
	if len(tl.cues) == 0 {
		return 0
	}
	return tl.cues[len(tl.cues)-1].At + LyricTail
}

// At returns the last cue with At <= t. ok is false before the first cue.
func (tl *Timeline) At(t time.Duration) (c Cue, ok bool) {
	i := sort.Search(len(tl.cues), func(i int) bool { return tl.cues[i].At > t })
	if i == 0 {
		return Cue{}, false
	}
	return tl.cues[i-1], true
}

// Cursor walks a timeline forward as playback advances.
type Cursor struct {
	tl   *Timeline
	next int
	cur  Cue
	ok   bool
}

// NewCursor returns a cursor positioned before the first cue.
func NewCursor(tl *Timeline) *Cursor {
	return &Cursor{tl: tl}
}

// Advance moves past every cue whose time is <= t and reports whether the
// current cue changed. Times earlier than a previous call do not move the
// cursor backwards; call Reset after seeking.
func (c *Cursor) Advance(t time.Duration) bool {
	changed := false
	for c.next < len(c.tl.cues) && t >= c.tl.cues[c.next].At {
		c.cur = c.tl.cues[c.next]
		c.ok = true
		c.next++
		changed = true
	}
	return changed
}

// Current returns the most recently passed cue.
func (c *Cursor) Current() (Cue, bool) { return c.cur, c.ok }

// Finished reports whether every cue has been passed and t is more than
// LyricTail beyond the last one.
func (c *Cursor) Finished(t time.Duration) bool {
	return c.next >= len(c.tl.cues) && t > c.tl.End()
}

// Reset rewinds the cursor to the start.
func (c *Cursor) Reset() {
	c.next = 0
	c.cur = Cue{}
	c.ok = false
}
