package tether

// GoalZone is the rope's drop target. A dragged node highlights the zone
// when the pointer is within HighlightRadius of its centre, and a release
// with the node inside Bounds triggers the node's link.
type GoalZone struct {
	Bounds          Rect
	HighlightRadius float64
}

// DefaultGoalZone returns the 192px square drop zone on the left edge,
// vertically centred in a container of the given height.
func DefaultGoalZone(containerHeight float64) GoalZone {
	return GoalZone{
		Bounds: Rect{
			X:      RopeGoalLeft,
			Y:      containerHeight/2 - RopeGoalSize/2,
			Width:  RopeGoalSize,
			Height: RopeGoalSize,
		},
		HighlightRadius: RopeHighlightRadius,
	}
}

// Near reports whether p is within highlight range of the zone centre.
func (g GoalZone) Near(p Vec2) bool {
	return p.DistSq(g.Bounds.Center()) < g.HighlightRadius*g.HighlightRadius
}

// Inside reports whether p lies strictly within the zone bounds.
func (g GoalZone) Inside(p Vec2) bool {
	b := g.Bounds
	return p.X > b.X && p.X < b.X+b.Width && p.Y > b.Y && p.Y < b.Y+b.Height
}
