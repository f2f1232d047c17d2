// Package physics resolves movement of a rectangular body against the static
// tile grid.
//
// Movement is applied one axis at a time, vertical first. Resolving each axis
// on its own makes the struck side of a tile unambiguous: after the vertical
// step any remaining overlap can only have come from vertical motion, and the
// same holds for the horizontal step that follows.
package physics

import (
	"chosenoffset.com/tileworld/internal/core/geom"
	"chosenoffset.com/tileworld/internal/world/tile"
)

// Solids finds the solid tiles overlapping a rectangle. *tile.Grid satisfies it.
type Solids interface {
	Overlapping(r geom.Rect) []tile.Tile
}

// Contacts records which sides of the body hit something during a move.
type Contacts struct {
	Top, Bottom, Left, Right bool
}

// Any reports whether any side made contact.
func (c Contacts) Any() bool {
	return c.Top || c.Bottom || c.Left || c.Right
}

// Result is the outcome of a resolved move.
type Result struct {
	Body     geom.Rect
	Contacts Contacts
}

// Moved returns how far the body actually travelled from start.
func (r Result) Moved(start geom.Rect) geom.Vec2 {
	return r.Body.Pos().Sub(start.Pos())
}

// Resolve moves body by delta and pushes it out of any solid tile it runs into.
func Resolve(body geom.Rect, delta geom.Vec2, solids Solids) Result {
	res := Result{Body: body}

	if delta.Y != 0 {
		start := res.Body.Y
		res.Body.Y += delta.Y
		// The nearest tile in the direction of travel decides where the body stops.
		for _, t := range solids.Overlapping(res.Body) {
			if delta.Y > 0 {
				if top := t.Rect.Y - res.Body.H; top >= start && top < res.Body.Y {
					res.Body.Y = top
					res.Contacts.Bottom = true
				}
			} else {
				if bottom := t.Rect.Bottom(); bottom <= start && bottom > res.Body.Y {
					res.Body.Y = bottom
					res.Contacts.Top = true
				}
			}
		}
	}

	if delta.X != 0 {
		start := res.Body.X
		res.Body.X += delta.X
		for _, t := range solids.Overlapping(res.Body) {
			if delta.X > 0 {
				if left := t.Rect.X - res.Body.W; left >= start && left < res.Body.X {
					res.Body.X = left
					res.Contacts.Right = true
				}
			} else {
				if right := t.Rect.Right(); right <= start && right > res.Body.X {
					res.Body.X = right
					res.Contacts.Left = true
				}
			}
		}
	}

	return res
}

// ConfineTo keeps body inside bounds, treating the bounds edges as walls.
// Contacts are reported the same way Resolve reports them.
func ConfineTo(body geom.Rect, bounds geom.Rect) Result {
	res := Result{Body: body}

	if res.Body.X < bounds.X {
		res.Body.X = bounds.X
		res.Contacts.Left = true
	} else if res.Body.Right() > bounds.Right() {
		res.Body.X = bounds.Right() - res.Body.W
		res.Contacts.Right = true
	}

	if res.Body.Y < bounds.Y {
		res.Body.Y = bounds.Y
		res.Contacts.Top = true
	} else if res.Body.Bottom() > bounds.Bottom() {
		res.Body.Y = bounds.Bottom() - res.Body.H
		res.Contacts.Bottom = true
	}

	return res
}
