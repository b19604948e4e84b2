package tether

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Vec2 is a 2D vector used for positions, velocities, and impulses. The
// coordinate system has its origin at the top-left, with Y increasing
// downward, matching canvas space.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// LenSq returns the squared length of v.
func (v Vec2) LenSq() float64 { return v.X*v.X + v.Y*v.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// DistSq returns the squared distance between v and o.
func (v Vec2) DistSq(o Vec2) float64 { return v.Sub(o).LenSq() }

// Lerp moves v toward target by the fraction t.
func (v Vec2) Lerp(target Vec2, t float64) Vec2 {
	return Vec2{v.X + (target.X-v.X)*t, v.Y + (target.Y-v.Y)*t}
}

func (v Vec2) finite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// Rect is an axis-aligned rectangle in canvas space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default stroke color for ragdoll sticks.
var ColorWhite = Color{1, 1, 1, 1}

// ColorRose is the stroke color used while the ragdoll is being dragged.
var ColorRose = Color{R: 0xfb / 255.0, G: 0x71 / 255.0, B: 0x85 / 255.0, A: 1}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" into a Color.
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(s, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("tether: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("tether: invalid hex color %q: %w", s, err)
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// MustHex is like ParseHex but panics on malformed input. Intended for
// package-level color tables.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// EventType identifies a kind of interaction event emitted by a controller.
type EventType uint8

const (
	EventGrab      EventType = iota // a node was picked up by the pointer
	EventRelease                    // the grabbed node was let go
	EventGoalEnter                  // a dragged rope node came within highlight range of the goal
	EventGoalLeave                  // a dragged rope node left highlight range of the goal
	EventDrop                       // a rope node was released inside the goal bounds
	EventPosture                    // the ragdoll switched posture state
)

var eventNames = [...]string{"grab", "release", "goal-enter", "goal-leave", "drop", "posture"}

func (e EventType) String() string {
	if int(e) < len(eventNames) {
		return eventNames[e]
	}
	return "unknown"
}
