package audio

import (
	"strings"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/phanxgames/tether"
)

const sr = beep.SampleRate(44100)

func drain(s beep.Streamer, n int) {
	buf := make([][2]float64, 512)
	for n > 0 {
		k := min(n, len(buf))
		got, ok := s.Stream(buf[:k])
		n -= got
		if !ok {
			return
		}
	}
}

func TestPlayheadPosition(t *testing.T) {
	p := NewPlayhead(beep.Silence(-1), sr)
	drain(p, sr.N(1500*time.Millisecond))
	if got := p.Position(); got < 1499*time.Millisecond || got > 1501*time.Millisecond {
		t.Errorf("Position = %v, want ~1.5s", got)
	}
	p.Reset()
	if p.Position() != 0 {
		t.Errorf("Position after Reset = %v", p.Position())
	}
	if p.Err() != nil {
		t.Errorf("Err = %v", p.Err())
	}
}

func TestPlayheadStopsWithStream(t *testing.T) {
	p := NewPlayhead(beep.Silence(sr.N(time.Second)), sr)
	drain(p, sr.N(3*time.Second))
	if got := p.Position(); got != sr.D(sr.N(time.Second)) {
		t.Errorf("Position = %v, want 1s", got)
	}
}

func TestSync(t *testing.T) {
	tl, err := tether.DecodeTimeline(strings.NewReader(`[
		{"time": 100, "word": "A", "style": "normal", "font": 0},
		{"time": 300, "word": "B", "style": "glitch", "font": 1}
	]`))
	if err != nil {
		t.Fatal(err)
	}
	head := NewPlayhead(beep.Silence(-1), sr)
	s := NewSync(head, tl)

	if _, changed, _ := s.Poll(); changed {
		t.Error("no cue at t=0")
	}
	drain(head, sr.N(150*time.Millisecond))
	if cue, changed, _ := s.Poll(); !changed || cue.Word != "A" {
		t.Errorf("at 150ms got %q changed=%v", cue.Word, changed)
	}
	drain(head, sr.N(1200*time.Millisecond))
	cue, _, finished := s.Poll()
	if cue.Word != "B" || !finished {
		t.Errorf("at 1.35s got %q finished=%v", cue.Word, finished)
	}

	s.Restart()
	if _, _, finished := s.Poll(); finished {
		t.Error("finished after Restart")
	}
}

func TestVisualizer(t *testing.T) {
	v := NewVisualizer(8, 60)
	v.Cue(tether.Cue{Word: "HEY", Style: tether.CueGlitch})
	peak := 0.0
	for range 30 {
		v.Update()
		peak = max(peak, v.Bars()[0])
	}
	if peak < 0.25 {
		t.Errorf("glitch cue peak = %v, want a spike", peak)
	}
	for range 300 {
		v.Update()
	}
	for i, b := range v.Bars() {
		if b > 0.2 {
			t.Errorf("bar %d = %v after settling, want near the floor", i, b)
		}
	}

	v.Cue(tether.Cue{Word: "CALM", Style: tether.CueNormal})
	for range 10 {
		v.Update()
	}
	if len(v.Bars()) != 8 {
		t.Fatalf("bars = %d", len(v.Bars()))
	}
}
