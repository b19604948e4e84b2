package ebitenview

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/tether"
)

// Drawing sizes in canvas units.
const (
	strokeWidth  = 3
	headRadius   = 15
	nodeRadius   = 28
	labelSize    = 13
	bubbleSize   = 16
	bubblePad    = 8
	goalStroke   = 2
	highlightMix = 0.35
)

var (
	backgroundColor = color.RGBA{0x0a, 0x0a, 0x0a, 0xff}
	groundColor     = color.RGBA{0x40, 0x40, 0x40, 0xff}
	ropeColor       = color.RGBA{0x9c, 0xa3, 0xaf, 0xff}
	goalColor       = color.RGBA{0xff, 0xff, 0xff, 0x60}
)

// painter draws a tether.Frame with ebiten's vector and text packages.
type painter struct {
	label  *text.GoTextFace
	bubble *text.GoTextFace
}

func newPainter() (*painter, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitenview: failed to parse font: %w", err)
	}
	return &painter{
		label:  &text.GoTextFace{Source: src, Size: labelSize},
		bubble: &text.GoTextFace{Source: src, Size: bubbleSize},
	}, nil
}

// rgba converts a tether color to an 8-bit color.
func rgba(c tether.Color) color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	// color.RGBA is premultiplied.
	return color.RGBA{clamp(c.R * c.A), clamp(c.G * c.A), clamp(c.B * c.A), clamp(c.A)}
}

func (p *painter) draw(screen *ebiten.Image, f *tether.Frame, view tether.Viewport) {
	screen.Fill(backgroundColor)
	s := float32(view.Scale())
	pt := func(v tether.Vec2) (float32, float32) {
		x, y := view.CanvasToScreen(v)
		return float32(x), float32(y)
	}

	if f.Ground > 0 {
		x0, y0 := pt(tether.Vec2{X: 0, Y: f.Ground})
		x1, y1 := pt(tether.Vec2{X: f.Width, Y: f.Ground})
		vector.StrokeLine(screen, x0, y0, x1, y1, s, groundColor, true)
	}

	if f.Goal.Active {
		p.drawGoal(screen, f.Goal, pt, s)
	}

	for _, seg := range f.Segments {
		if !seg.Visible {
			continue
		}
		x0, y0 := pt(f.Nodes[seg.A].Pos)
		x1, y1 := pt(f.Nodes[seg.B].Pos)
		clr := rgba(f.Nodes[seg.A].Color)
		if f.Head < 0 {
			clr = ropeColor
		}
		vector.StrokeLine(screen, x0, y0, x1, y1, strokeWidth*s, clr, true)
	}

	if f.Head >= 0 {
		hx, hy := pt(f.Nodes[f.Head].Pos)
		vector.StrokeCircle(screen, hx, hy, headRadius*s, strokeWidth*s, rgba(f.Nodes[f.Head].Color), true)
	} else {
		p.drawLinks(screen, f, pt, s)
	}

	if f.Bubble.Text != "" && f.Bubble.Alpha > 0 {
		p.drawBubble(screen, f.Bubble, pt, s)
	}
}

func (p *painter) drawGoal(screen *ebiten.Image, g tether.GoalFrame, pt func(tether.Vec2) (float32, float32), s float32) {
	x, y := pt(tether.Vec2{X: g.Bounds.X, Y: g.Bounds.Y})
	w, h := float32(g.Bounds.Width)*s, float32(g.Bounds.Height)*s
	if g.Lit {
		vector.DrawFilledRect(screen, x, y, w, h, rgba(g.Highlight.WithAlpha(highlightMix)), true)
	}
	vector.StrokeRect(screen, x, y, w, h, goalStroke*s, goalColor, true)
}

func (p *painter) drawLinks(screen *ebiten.Image, f *tether.Frame, pt func(tether.Vec2) (float32, float32), s float32) {
	for i, n := range f.Nodes {
		x, y := pt(n.Pos)
		r := nodeRadius * s
		if i == f.Grabbed {
			r *= 1.15
		}
		vector.DrawFilledCircle(screen, x, y, r, rgba(n.Color), true)
		if n.Label == "" {
			continue
		}
		op := &text.DrawOptions{}
		op.GeoM.Scale(float64(s), float64(s))
		op.GeoM.Translate(float64(x), float64(y))
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
		text.Draw(screen, n.Label, p.label, op)
	}
}

func (p *painter) drawBubble(screen *ebiten.Image, b tether.BubbleFrame, pt func(tether.Vec2) (float32, float32), s float32) {
	w, h := text.Measure(b.Text, p.bubble, p.bubble.Size*1.2)
	x, y := pt(b.Anchor)
	bw := float32(w+2*bubblePad) * s
	bh := float32(h+2*bubblePad) * s
	bx, by := x-bw/2, y-bh

	bg := color.RGBA{0xff, 0xff, 0xff, 0xff}
	vector.DrawFilledRect(screen, bx, by, bw, bh, scaleAlpha(bg, b.Alpha), true)

	op := &text.DrawOptions{}
	op.GeoM.Scale(float64(s), float64(s))
	op.GeoM.Translate(float64(bx)+bubblePad*float64(s), float64(by)+bubblePad*float64(s))
	op.ColorScale.Scale(0, 0, 0, 1)
	op.ColorScale.ScaleAlpha(float32(b.Alpha))
	op.LineSpacing = p.bubble.Size * 1.2
	text.Draw(screen, b.Text, p.bubble, op)
}

// scaleAlpha fades a premultiplied color.
func scaleAlpha(c color.RGBA, a float64) color.RGBA {
	f := math.Max(0, math.Min(1, a))
	return color.RGBA{
		uint8(float64(c.R) * f),
		uint8(float64(c.G) * f),
		uint8(float64(c.B) * f),
		uint8(float64(c.A) * f),
	}
}
