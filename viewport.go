package tether

// Viewport maps between screen coordinates and canvas coordinates. The
// canvas has a fixed logical size and is displayed in Display (logical
// screen pixels); PixelRatio converts device pixels to logical ones.
type Viewport struct {
	CanvasWidth  float64
	CanvasHeight float64
	Display      Rect
	PixelRatio   float64 // device pixels per logical pixel; 0 means 1
}

// FitViewport centres a canvas inside a screen of the given logical size,
// scaled uniformly to fit with letterboxing.
func FitViewport(canvasW, canvasH, screenW, screenH float64) Viewport {
	v := Viewport{CanvasWidth: canvasW, CanvasHeight: canvasH}
	if canvasW <= 0 || canvasH <= 0 {
		return v
	}
	s := min(screenW/canvasW, screenH/canvasH)
	w, h := canvasW*s, canvasH*s
	v.Display = Rect{X: (screenW - w) / 2, Y: (screenH - h) / 2, Width: w, Height: h}
	return v
}

// matrix returns the canvas→device-pixel affine transform.
func (v Viewport) matrix() [6]float64 {
	pr := v.PixelRatio
	if pr == 0 {
		pr = 1
	}
	if v.CanvasWidth == 0 || v.CanvasHeight == 0 {
		return [6]float64{pr, 0, 0, pr, 0, 0}
	}
	sx := v.Display.Width / v.CanvasWidth
	sy := v.Display.Height / v.CanvasHeight
	return [6]float64{pr * sx, 0, 0, pr * sy, pr * v.Display.X, pr * v.Display.Y}
}

// ScreenToCanvas converts a device-pixel screen position into canvas
// coordinates.
func (v Viewport) ScreenToCanvas(sx, sy float64) Vec2 {
	x, y := transformPoint(invertAffine(v.matrix()), sx, sy)
	return Vec2{x, y}
}

// CanvasToScreen converts canvas coordinates into device-pixel screen
// coordinates.
func (v Viewport) CanvasToScreen(p Vec2) (sx, sy float64) {
	return transformPoint(v.matrix(), p.X, p.Y)
}

// Scale returns the horizontal canvas→device scale.
func (v Viewport) Scale() float64 {
	return v.matrix()[0]
}

var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// invertAffine computes the inverse of a 2D affine matrix. A singular
// matrix yields the identity.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
