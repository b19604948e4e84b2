// Package audio clocks lyric timelines from a beep stream and drives a small
// spring-smoothed visualizer from the current cue.
package audio

import (
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"

	"github.com/phanxgames/tether"
)

// Playhead wraps a beep.Streamer and counts the samples it has produced, so
// the playback position can be read from another goroutine.
type Playhead struct {
	s   beep.Streamer
	sr  beep.SampleRate
	pos atomic.Int64
}

// NewPlayhead wraps s, which plays at sample rate sr.
func NewPlayhead(s beep.Streamer, sr beep.SampleRate) *Playhead {
	return &Playhead{s: s, sr: sr}
}

// Stream implements beep.Streamer.
func (p *Playhead) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = p.s.Stream(samples)
	p.pos.Add(int64(n))
	return n, ok
}

// Err implements beep.Streamer.
func (p *Playhead) Err() error {
	return p.s.Err()
}

// Position returns how much audio has been streamed.
func (p *Playhead) Position() time.Duration {
	return p.sr.D(int(p.pos.Load()))
}

// Reset zeroes the sample count. Seek the wrapped streamer separately.
func (p *Playhead) Reset() {
	p.pos.Store(0)
}

// Sync follows a timeline against a playhead.
type Sync struct {
	head   *Playhead
	cursor *tether.Cursor
}

// NewSync returns a Sync positioned at the start of tl.
func NewSync(head *Playhead, tl *tether.Timeline) *Sync {
	return &Sync{head: head, cursor: tether.NewCursor(tl)}
}

// Poll advances to the playhead position. It returns the current cue,
// whether it changed since the last poll, and whether the timeline is over.
func (s *Sync) Poll() (cue tether.Cue, changed, finished bool) {
	t := s.head.Position()
	changed = s.cursor.Advance(t)
	cue, _ = s.cursor.Current()
	return cue, changed, s.cursor.Finished(t)
}

// Restart rewinds both the playhead count and the cursor.
func (s *Sync) Restart() {
	s.head.Reset()
	s.cursor.Reset()
}
