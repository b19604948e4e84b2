// Lyrics plays a synthesized beat and flashes timed words in the terminal,
// with a spring-smoothed bar visualizer that spikes on glitch cues. Pass
// -timeline to load a JSON timeline of {"time","word","style","font"}
// objects (time in milliseconds).
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/tether"
	"github.com/phanxgames/tether/audio"
)

const (
	sampleRate = beep.SampleRate(44100)
	fps        = 30
	bars       = 24
)

const demoTimeline = `[
	{"time": 300,  "word": "HANG",    "style": "normal", "font": 0},
	{"time": 900,  "word": "ON",      "style": "normal", "font": 1},
	{"time": 1500, "word": "TIGHT",   "style": "bold",   "font": 2},
	{"time": 2100, "word": "DRAG",    "style": "normal", "font": 3},
	{"time": 2700, "word": "AND",     "style": "normal", "font": 0},
	{"time": 3300, "word": "DROP",    "style": "glitch", "font": 1},
	{"time": 4200, "word": "STAND",   "style": "normal", "font": 2},
	{"time": 4800, "word": "BACK",    "style": "normal", "font": 3},
	{"time": 5400, "word": "UP",      "style": "bold",   "font": 0},
	{"time": 6000, "word": "AGAIN",   "style": "glitch", "font": 1}
]`

// beat is a kick-and-bass loop at 100 BPM.
type beat struct {
	pos, period int
}

func (b *beat) Stream(samples [][2]float64) (int, bool) {
	kickLen := sampleRate.N(100 * time.Millisecond)
	for i := range samples {
		p := b.pos % b.period
		t := float64(p) / float64(sampleRate)
		s := 0.12 * math.Sin(2*math.Pi*110*t)
		if p < kickLen {
			env := 1 - float64(p)/float64(kickLen)
			s += 0.4 * env * math.Sin(2*math.Pi*60*(1+2*env)*t)
		}
		samples[i][0], samples[i][1] = s, s
		b.pos++
	}
	return len(samples), true
}

func (b *beat) Err() error { return nil }

func main() {
	path := flag.String("timeline", "", "JSON lyric timeline")
	mute := flag.Bool("mute", false, "run the clock without opening an audio device")
	flag.Parse()

	var tl *tether.Timeline
	var err error
	if *path != "" {
		f, ferr := os.Open(*path)
		if ferr != nil {
			log.Fatal(ferr)
		}
		tl, err = tether.DecodeTimeline(f)
		f.Close()
	} else {
		tl, err = tether.DecodeTimeline(strings.NewReader(demoTimeline))
	}
	if err != nil {
		log.Fatal(err)
	}

	src := &beat{period: sampleRate.N(600 * time.Millisecond)}
	head := audio.NewPlayhead(src, sampleRate)
	follow := audio.NewSync(head, tl)
	vis := audio.NewVisualizer(bars, fps)

	if *mute {
		// Pull samples on our own clock instead of the speaker's.
		go func() {
			buf := make([][2]float64, sampleRate.N(time.Second/fps))
			for range time.Tick(time.Second / fps) {
				head.Stream(buf)
			}
		}()
	} else {
		if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
			log.Fatal(err)
		}
		speaker.Play(head)
	}

	ticker := time.NewTicker(time.Second / fps)
	defer ticker.Stop()
	for range ticker.C {
		cue, changed, finished := follow.Poll()
		if finished {
			fmt.Print("\r\033[K[sync ended]\n")
			return
		}
		if changed {
			vis.Cue(cue)
		}
		vis.Update()
		fmt.Print("\r\033[K", render(vis.Bars()), "  ", styled(cue))
	}
}

var blocks = []rune(" ▁▂▃▄▅▆▇█")

func render(bars []float64) string {
	var b strings.Builder
	for _, v := range bars {
		i := int(math.Round(math.Max(0, math.Min(1, v)) * float64(len(blocks)-1)))
		b.WriteRune(blocks[i])
	}
	return b.String()
}

func styled(c tether.Cue) string {
	switch c.Style {
	case tether.CueGlitch:
		return "\033[31m" + c.Word + "\033[0m"
	case tether.CueBold:
		return "\033[1m" + c.Word + "\033[0m"
	}
	return c.Word
}
