// Package player implements the controllable entity: its body, per-frame
// speed and the animation state derived from how it moved.
package player

import (
	"chosenoffset.com/tileworld/internal/core/geom"
	"chosenoffset.com/tileworld/internal/sprite"
)

// Defaults used when no configuration overrides them.
const (
	DefaultSize          = 48
	DefaultSpeed         = 4.0
	DefaultTicksPerFrame = 8
)

// Direction is the way the player faces.
type Direction int

const (
	FaceDown Direction = iota
	FaceUp
	FaceLeft
	FaceRight
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case FaceUp:
		return "up"
	case FaceLeft:
		return "left"
	case FaceRight:
		return "right"
	default:
		return "down"
	}
}

// Input is the directional input for one frame.
type Input struct {
	Up, Down, Left, Right bool
}

// Player is the controllable entity.
type Player struct {
	Body  geom.Rect
	Speed float64 // Pixels per frame
	// TicksPerFrame is how many updates each animation frame is shown for.
	TicksPerFrame int

	Velocity geom.Vec2 // Last applied movement
	Facing   Direction

	sheet *sprite.Sheet
	state string
	frame int
	ticks int
}

// New creates a player at pos using the given sheet for frame counts.
func New(pos geom.Vec2, sheet *sprite.Sheet) *Player {
	if sheet == nil {
		sheet = sprite.DefaultPlayerSheet()
	}
	return &Player{
		Body:          geom.NewRect(pos.X, pos.Y, DefaultSize, DefaultSize),
		Speed:         DefaultSpeed,
		TicksPerFrame: DefaultTicksPerFrame,
		Facing:        FaceDown,
		sheet:         sheet,
		state:         sprite.IdleDown,
	}
}

// Center returns the center of the body.
func (p *Player) Center() geom.Vec2 {
	return p.Body.Center()
}

// MoveTo places the top-left corner of the body at pos.
func (p *Player) MoveTo(pos geom.Vec2) {
	p.Body.X = pos.X
	p.Body.Y = pos.Y
}

// Resize changes the body size, keeping its top-left corner.
func (p *Player) Resize(w, h float64) {
	p.Body.W = w
	p.Body.H = h
}

// Steer turns directional input into this frame's intended movement.
// Opposing keys cancel and diagonals are not normalized.
func (p *Player) Steer(in Input) geom.Vec2 {
	var v geom.Vec2
	if in.Right {
		v.X++
	}
	if in.Left {
		v.X--
	}
	if in.Down {
		v.Y++
	}
	if in.Up {
		v.Y--
	}
	return v.Scale(p.Speed)
}

// Animate selects the animation from the movement actually applied this frame
// and advances its frame counter.
func (p *Player) Animate(v geom.Vec2) {
	p.Velocity = v

	switch {
	case v.X > 0:
		p.Facing = FaceRight
	case v.X < 0:
		p.Facing = FaceLeft
	case v.Y > 0:
		p.Facing = FaceDown
	case v.Y < 0:
		p.Facing = FaceUp
	}

	next := stateFor(p.Facing, !v.IsZero())
	if next != p.state {
		p.state = next
		p.frame = 0
		p.ticks = 0
		return
	}

	p.ticks++
	if p.TicksPerFrame > 0 && p.ticks >= p.TicksPerFrame {
		p.ticks = 0
		if n := p.sheet.FrameCount(p.state); n > 0 {
			p.frame = (p.frame + 1) % n
		}
	}
}

// AnimationKey returns the sprite sheet key for the current state.
func (p *Player) AnimationKey() string {
	return p.state
}

// Frame returns the current frame index within the animation.
func (p *Player) Frame() int {
	return p.frame
}

// Sheet returns the sprite sheet the player animates against.
func (p *Player) Sheet() *sprite.Sheet {
	return p.sheet
}

func stateFor(d Direction, moving bool) string {
	if moving {
		switch d {
		case FaceUp:
			return sprite.WalkUp
		case FaceLeft:
			return sprite.WalkLeft
		case FaceRight:
			return sprite.WalkRight
		default:
			return sprite.WalkDown
		}
	}
	switch d {
	case FaceUp:
		return sprite.IdleUp
	case FaceLeft:
		return sprite.IdleLeft
	case FaceRight:
		return sprite.IdleRight
	default:
		return sprite.IdleDown
	}
}
