// Package camera implements the view onto the level: a target point (the
// center of the view) that chases the player and is clamped so the view never
// shows anything outside the level.
package camera

import "chosenoffset.com/tileworld/internal/core/geom"

// DefaultSmoothing is the fraction of the remaining distance covered per frame.
const DefaultSmoothing = 0.1

// Edges records which level edges the view was pushed back from.
type Edges struct {
	Left, Top, Right, Bottom bool
}

// Any reports whether any edge was hit.
func (e Edges) Any() bool {
	return e.Left || e.Top || e.Right || e.Bottom
}

// Camera is a view of ViewW x ViewH pixels centered on Target.
type Camera struct {
	Target geom.Vec2
	ViewW  float64
	ViewH  float64
	// Smoothing in (0, 1]; 1 locks onto the followed point.
	Smoothing float64
	// Velocity is used by Pan.
	Velocity geom.Vec2
}

// New creates a camera whose view starts at the world origin.
func New(viewW, viewH float64) *Camera {
	return &Camera{
		Target:    geom.Vec2{X: viewW / 2, Y: viewH / 2},
		ViewW:     viewW,
		ViewH:     viewH,
		Smoothing: DefaultSmoothing,
	}
}

// Resize changes the view size. The target is left alone; callers clamp
// afterwards if needed.
func (c *Camera) Resize(w, h float64) {
	c.ViewW = w
	c.ViewH = h
}

// Follow eases the target towards p and clamps it to bounds.
func (c *Camera) Follow(p geom.Vec2, bounds geom.Rect) Edges {
	s := c.Smoothing
	if s <= 0 || s > 1 {
		s = 1
	}
	c.Target = c.Target.Add(p.Sub(c.Target).Scale(s))
	return c.Clamp(bounds)
}

// SnapTo moves the target straight to p and clamps it to bounds.
func (c *Camera) SnapTo(p geom.Vec2, bounds geom.Rect) Edges {
	c.Target = p
	return c.Clamp(bounds)
}

// Pan moves the target by Velocity, clamps it, and reverses every velocity
// component whose edge was hit.
func (c *Camera) Pan(bounds geom.Rect) Edges {
	c.Target = c.Target.Add(c.Velocity)
	edges := c.Clamp(bounds)
	if edges.Left || edges.Right {
		c.Velocity.X = -c.Velocity.X
	}
	if edges.Top || edges.Bottom {
		c.Velocity.Y = -c.Velocity.Y
	}
	return edges
}

// Clamp keeps the view inside bounds. On an axis where the level is smaller
// than the view, the level is centered instead.
func (c *Camera) Clamp(bounds geom.Rect) Edges {
	var e Edges
	halfW, halfH := c.ViewW/2, c.ViewH/2

	if bounds.W <= c.ViewW {
		c.Target.X = bounds.X + bounds.W/2
	} else if c.Target.X-halfW < bounds.X {
		c.Target.X = bounds.X + halfW
		e.Left = true
	} else if c.Target.X+halfW > bounds.Right() {
		c.Target.X = bounds.Right() - halfW
		e.Right = true
	}

	if bounds.H <= c.ViewH {
		c.Target.Y = bounds.Y + bounds.H/2
	} else if c.Target.Y-halfH < bounds.Y {
		c.Target.Y = bounds.Y + halfH
		e.Top = true
	} else if c.Target.Y+halfH > bounds.Bottom() {
		c.Target.Y = bounds.Bottom() - halfH
		e.Bottom = true
	}

	return e
}

// Offset returns the world coordinate shown at the top-left of the screen.
func (c *Camera) Offset() geom.Vec2 {
	return geom.Vec2{X: c.Target.X - c.ViewW/2, Y: c.Target.Y - c.ViewH/2}
}

// View returns the visible world rectangle.
func (c *Camera) View() geom.Rect {
	o := c.Offset()
	return geom.NewRect(o.X, o.Y, c.ViewW, c.ViewH)
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(p geom.Vec2) geom.Vec2 {
	return p.Sub(c.Offset())
}

// ScreenToWorld converts screen pixels to a world position.
func (c *Camera) ScreenToWorld(p geom.Vec2) geom.Vec2 {
	return p.Add(c.Offset())
}
