package ebitenview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/tether"
)

// overlay is the debug readout in the top-left corner. It redraws its text
// every ~0.5 seconds.
type overlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newOverlay() *overlay {
	// 160x48 fits three lines of debug text.
	return &overlay{img: ebiten.NewImage(160, 48), lastUpdate: 1}
}

func (o *overlay) update(dt float64, f *tether.Frame) {
	o.lastUpdate += dt
	if o.lastUpdate < 0.5 {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, overlayText(ebiten.ActualFPS(), ebiten.ActualTPS(), f))
}

func (o *overlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}

func overlayText(fps, tps float64, f *tether.Frame) string {
	grab := "-"
	if f.Grabbed >= 0 {
		grab = fmt.Sprint(f.Grabbed)
	}
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nframe %d grab %s", fps, tps, f.Seq, grab)
}
