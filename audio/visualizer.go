package audio

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/phanxgames/tether"
)

// Visualizer tuning.
const (
	visFrequency = 7.0
	visDamping   = 0.45
	visDecay     = 0.94 // per-frame target falloff between cues
	visFloor     = 0.05
)

// Visualizer is a row of bars that jump on each lyric cue and settle back
// down, smoothed by a harmonica spring per bar.
type Visualizer struct {
	spring  harmonica.Spring
	pos     []float64
	vel     []float64
	targets []float64
}

// NewVisualizer returns n bars updated fps times per second.
func NewVisualizer(n, fps int) *Visualizer {
	return &Visualizer{
		spring:  harmonica.NewSpring(harmonica.FPS(fps), visFrequency, visDamping),
		pos:     make([]float64, n),
		vel:     make([]float64, n),
		targets: make([]float64, n),
	}
}

// Cue sets new bar targets for c. Glitch cues spike every bar; other cues
// shape the bars from the word and font so each word looks different.
func (v *Visualizer) Cue(c tether.Cue) {
	seed := float64(len(c.Word)*7 + c.Font*3)
	for i := range v.targets {
		switch c.Style {
		case tether.CueGlitch:
			v.targets[i] = 1
		case tether.CueBold:
			v.targets[i] = 0.6 + 0.3*math.Abs(math.Sin(seed+float64(i)))
		default:
			v.targets[i] = 0.2 + 0.5*math.Abs(math.Sin(seed+float64(i)*0.7))
		}
	}
}

// Update advances every bar one frame and lets the targets fall off.
func (v *Visualizer) Update() {
	for i := range v.pos {
		v.pos[i], v.vel[i] = v.spring.Update(v.pos[i], v.vel[i], v.targets[i])
		v.targets[i] = math.Max(visFloor, v.targets[i]*visDecay)
	}
}

// Bars returns the current bar heights, nominally in [0, 1]. Springs may
// overshoot slightly.
func (v *Visualizer) Bars() []float64 {
	return v.pos
}
