// Package termview draws tether frames in a terminal with tcell and feeds
// mouse input back into a scheduler.
package termview

import (
	"math"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/tether"
)

// Glyphs used for each kind of cell.
const (
	glyphBone   = '•'
	glyphRope   = '·'
	glyphHead   = 'O'
	glyphGround = '─'
	glyphGoal   = '#'
)

// Renderer implements tether.Renderer on a tcell.Screen. The canvas is
// stretched to fill the screen.
type Renderer struct {
	screen tcell.Screen
	canvas tether.Vec2

	mu   sync.Mutex
	view tether.Viewport
}

// NewRenderer returns a renderer for a canvas of the given logical size.
func NewRenderer(screen tcell.Screen, canvasW, canvasH float64) *Renderer {
	r := &Renderer{screen: screen, canvas: tether.Vec2{X: canvasW, Y: canvasH}}
	r.Resize()
	return r
}

// Resize recomputes the canvas mapping from the screen size. Call it on
// tcell.EventResize.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.mu.Lock()
	r.view = tether.Viewport{
		CanvasWidth:  r.canvas.X,
		CanvasHeight: r.canvas.Y,
		Display:      tether.Rect{Width: float64(w), Height: float64(h)},
	}
	r.mu.Unlock()
}

// Viewport returns the current canvas-to-cell mapping.
func (r *Renderer) Viewport() tether.Viewport {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.view
}

func (r *Renderer) cell(p tether.Vec2) (int, int) {
	x, y := r.view.CanvasToScreen(p)
	return int(math.Floor(x)), int(math.Floor(y))
}

// Render draws f and shows the screen.
func (r *Renderer) Render(f *tether.Frame) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := r.screen
	s.Clear()
	base := tcell.StyleDefault

	if f.Ground > 0 {
		w, _ := s.Size()
		_, gy := r.cell(tether.Vec2{Y: f.Ground})
		st := base.Foreground(tcell.ColorGray)
		for x := range w {
			s.SetContent(x, gy, glyphGround, nil, st)
		}
	}

	if f.Goal.Active {
		r.drawGoal(f.Goal)
	}

	for _, seg := range f.Segments {
		if !seg.Visible {
			continue
		}
		x0, y0 := r.cell(f.Nodes[seg.A].Pos)
		x1, y1 := r.cell(f.Nodes[seg.B].Pos)
		glyph, st := glyphBone, base.Foreground(color(f.Nodes[seg.A].Color))
		if f.Head < 0 {
			glyph, st = glyphRope, base.Foreground(tcell.ColorGray)
		}
		line(x0, y0, x1, y1, func(x, y int) {
			s.SetContent(x, y, glyph, nil, st)
		})
	}

	if f.Head >= 0 {
		hx, hy := r.cell(f.Nodes[f.Head].Pos)
		s.SetContent(hx, hy, glyphHead, nil, base.Foreground(color(f.Nodes[f.Head].Color)).Bold(true))
	} else {
		for i, n := range f.Nodes {
			x, y := r.cell(n.Pos)
			st := base.Background(color(n.Color)).Foreground(tcell.ColorWhite)
			if i == f.Grabbed {
				st = st.Reverse(true)
			}
			label := n.Label
			if label == "" {
				label = " "
			}
			drawText(s, x-len([]rune(label))/2, y, label, st)
		}
	}

	if f.Bubble.Text != "" && f.Bubble.Alpha >= 0.5 {
		x, y := r.cell(f.Bubble.Anchor)
		drawText(s, x-len([]rune(f.Bubble.Text))/2, y, f.Bubble.Text, base.Italic(true))
	}

	s.Show()
}

func (r *Renderer) drawGoal(g tether.GoalFrame) {
	x0, y0 := r.cell(tether.Vec2{X: g.Bounds.X, Y: g.Bounds.Y})
	x1, y1 := r.cell(tether.Vec2{X: g.Bounds.X + g.Bounds.Width, Y: g.Bounds.Y + g.Bounds.Height})
	st := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	if g.Lit {
		st = st.Foreground(color(g.Highlight))
	}
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y0, glyphGoal, nil, st)
		r.screen.SetContent(x, y1, glyphGoal, nil, st)
	}
	for y := y0; y <= y1; y++ {
		r.screen.SetContent(x0, y, glyphGoal, nil, st)
		r.screen.SetContent(x1, y, glyphGoal, nil, st)
	}
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, st)
		x++
	}
}

// color converts a tether color to a 24-bit tcell color, ignoring alpha.
func color(c tether.Color) tcell.Color {
	ch := func(v float64) int32 {
		return int32(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return tcell.NewRGBColor(ch(c.R), ch(c.G), ch(c.B))
}

// line calls plot for every cell on the segment from (x0, y0) to (x1, y1)
// using Bresenham's algorithm.
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
