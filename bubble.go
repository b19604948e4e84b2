package tether

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// BubbleConfig configures the ragdoll's speech bubble.
type BubbleConfig struct {
	Idle     []string      // lines shown while nobody holds the ragdoll
	Drag     []string      // lines shown while it is being dragged
	Interval time.Duration // time each line stays up
	Fade     time.Duration // fade-in duration after each switch
	Ease     ease.TweenFunc
}

// DefaultBubbleConfig returns the stock message sets.
func DefaultBubbleConfig() BubbleConfig {
	return BubbleConfig{
		Idle: []string{
			"I am the one who draws.",
			"If you think this has a happy ending, you haven't been paying attention.",
			"Say my name… render it.",
			"You're not watching the code… the code is watching you.",
			"I didn't break the system. I became it.",
			"Every frame is earned.",
			"I am not a bug. I am the feature.",
			"The canvas remembers.",
			"Kings fall. I fall harder.",
			"I don't wait for events. I trigger them.",
		},
		Drag: []string{
			"Hey, hands off the merchandise!",
			"Whoa whoa, personal space!",
			"Easy tiger, I'm not a resize handle!",
			"You drag, I dominate.",
			"Careful! I'm fragile… emotionally.",
			"Physics?! Really bro?!",
			"This is technically kidnapping.",
			"I consent to motion, not chaos!",
			"Weeeee… okay that's enough.",
			"Sir, this is a professional canvas.",
			"I was born to run, not to be dragged.",
			"Your mouse has anger issues.",
			"At least buy me dinner first.",
			"This violates at least 3 UI laws.",
			"Dragged but never defeated.",
		},
		Interval: BubbleInterval,
		Fade:     BubbleFade,
		Ease:     ease.Linear,
	}
}

// Bubble is a timed text overlay: it rotates through a message set on a
// fixed interval and fades each new line in with a gween tween. It holds no
// physics state.
type Bubble struct {
	cfg      BubbleConfig
	counter  int
	elapsed  float64
	dragging bool
	alpha    float64
	fade     *gween.Tween
}

// NewBubble creates a bubble that starts fading in its first line.
func NewBubble(cfg BubbleConfig) *Bubble {
	if cfg.Ease == nil {
		cfg.Ease = ease.Linear
	}
	b := &Bubble{cfg: cfg}
	b.restartFade()
	return b
}

// Update advances the fade tween and the rotation timer by dt seconds. A
// switch between the idle and drag sets fades the new line in.
func (b *Bubble) Update(dt float64, dragging bool) {
	if dragging != b.dragging {
		b.dragging = dragging
		b.restartFade()
	}

	if b.fade != nil {
		v, done := b.fade.Update(float32(dt))
		b.alpha = float64(v)
		if done {
			b.fade = nil
		}
	}

	b.elapsed += dt
	if b.cfg.Interval > 0 && b.elapsed > b.cfg.Interval.Seconds() {
		b.elapsed = 0
		b.counter++
		b.restartFade()
	}
}

// Text returns the current line for the active set. The index wraps per
// set, so switching between sets of different length never goes out of
// range.
func (b *Bubble) Text(dragging bool) string {
	set := b.cfg.Idle
	if dragging {
		set = b.cfg.Drag
	}
	if len(set) == 0 {
		return ""
	}
	return set[b.counter%len(set)]
}

// Alpha returns the current opacity in [0, 1].
func (b *Bubble) Alpha() float64 {
	return b.alpha
}

func (b *Bubble) restartFade() {
	b.alpha = 0
	if b.cfg.Fade <= 0 {
		b.alpha = 1
		b.fade = nil
		return
	}
	b.fade = gween.New(0, 1, float32(b.cfg.Fade.Seconds()), b.cfg.Ease)
}
