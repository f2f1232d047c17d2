package game

import (
	"fmt"

	"chosenoffset.com/tileworld/internal/camera"
	"chosenoffset.com/tileworld/internal/config"
	"chosenoffset.com/tileworld/internal/core/geom"
	"chosenoffset.com/tileworld/internal/entity/player"
	"chosenoffset.com/tileworld/internal/physics"
	"chosenoffset.com/tileworld/internal/sprite"
	"chosenoffset.com/tileworld/internal/world/level"
	"chosenoffset.com/tileworld/internal/world/tile"
)

// World owns the tile grid, the player and the camera and advances them one
// frame at a time.
type World struct {
	Level  *level.Level
	Grid   *tile.Grid
	Player *player.Player
	Camera *camera.Camera
	Stage  Stage

	// Contacts from the player's most recent move.
	Contacts physics.Contacts

	panSpeed float64
}

// NewWorld builds a world for lvl using the player and camera settings in cfg.
func NewWorld(lvl *level.Level, cfg *config.Config, sheet *sprite.Sheet) (*World, error) {
	stage, err := ParseStage(cfg.Stage)
	if err != nil {
		return nil, err
	}

	p := player.New(geom.Vec2{}, sheet)
	p.Speed = cfg.Player.Speed
	p.TicksPerFrame = cfg.Player.TicksPerFrame
	p.Resize(float64(cfg.Player.Width), float64(cfg.Player.Height))

	cam := camera.New(float64(cfg.Window.Width), float64(cfg.Window.Height))
	cam.Smoothing = cfg.Camera.Smoothing

	w := &World{
		Player:   p,
		Camera:   cam,
		Stage:    stage,
		panSpeed: cfg.Camera.PanSpeed,
	}
	if err := w.setLevel(lvl); err != nil {
		return nil, err
	}
	if err := w.Respawn(); err != nil {
		return nil, err
	}
	return w, nil
}

// Update advances the world by one frame.
func (w *World) Update(in player.Input) {
	bounds := w.Grid.Bounds()

	switch w.Stage {
	case StageGrid:
		// Nothing moves.
	case StagePan:
		// Left and up are applied last, so they win over right and down.
		var dir geom.Vec2
		if in.Right {
			dir.X = 1
		}
		if in.Left {
			dir.X = -1
		}
		if in.Down {
			dir.Y = 1
		}
		if in.Up {
			dir.Y = -1
		}
		w.Camera.Velocity = dir.Scale(w.panSpeed)
		w.Camera.Pan(bounds)
	case StageMove:
		w.movePlayer(in)
		w.Camera.SnapTo(w.Player.Center(), bounds)
	case StageFollow:
		w.movePlayer(in)
		w.Camera.Follow(w.Player.Center(), bounds)
	}
}

func (w *World) movePlayer(in player.Input) {
	start := w.Player.Body

	res := physics.Resolve(start, w.Player.Steer(in), w.Grid)
	confined := physics.ConfineTo(res.Body, w.Grid.Bounds())

	w.Player.Body = confined.Body
	w.Contacts = physics.Contacts{
		Top:    res.Contacts.Top || confined.Contacts.Top,
		Bottom: res.Contacts.Bottom || confined.Contacts.Bottom,
		Left:   res.Contacts.Left || confined.Contacts.Left,
		Right:  res.Contacts.Right || confined.Contacts.Right,
	}
	w.Player.Animate(confined.Moved(start))
}

// SetStage switches prototypes. The grid stage parks the camera at the origin.
func (w *World) SetStage(s Stage) {
	w.Stage = s
	bounds := w.Grid.Bounds()

	switch s {
	case StageGrid:
		w.Camera.Target = geom.Vec2{X: w.Camera.ViewW / 2, Y: w.Camera.ViewH / 2}
		w.Camera.Clamp(bounds)
	case StagePan:
		w.Camera.Velocity = geom.Vec2{}
	default:
		w.Camera.SnapTo(w.Player.Center(), bounds)
	}
}

// Respawn puts the player on the level's spawn cell, centered in the tile.
func (w *World) Respawn() error {
	pos, ok := w.Level.SpawnPosition()
	if !ok {
		return fmt.Errorf("level %q has no free cell to spawn in", w.Level.Name)
	}

	size := float64(w.Level.TileSize)
	pos.X += (size - w.Player.Body.W) / 2
	pos.Y += (size - w.Player.Body.H) / 2
	w.Player.MoveTo(pos)
	w.Contacts = physics.Contacts{}

	if w.Stage.HasPlayer() {
		w.Camera.SnapTo(w.Player.Center(), w.Grid.Bounds())
	} else {
		w.Camera.Clamp(w.Grid.Bounds())
	}
	return nil
}

// Reload swaps in a new level. The player stays put when its spot is still
// free and inside the level; otherwise it respawns. A level the player can
// neither stay in nor spawn in is rejected and the current level is kept.
func (w *World) Reload(lvl *level.Level) error {
	g, err := lvl.Grid()
	if err != nil {
		return fmt.Errorf("failed to build level %q: %w", lvl.Name, err)
	}

	if g.Bounds().Contains(w.Player.Body) && g.RectFree(w.Player.Body) {
		w.Level, w.Grid = lvl, g
		w.Camera.Clamp(g.Bounds())
		return nil
	}

	if _, ok := lvl.SpawnPosition(); !ok {
		return fmt.Errorf("level %q has no free cell to spawn in", lvl.Name)
	}
	w.Level, w.Grid = lvl, g
	return w.Respawn()
}

func (w *World) setLevel(lvl *level.Level) error {
	g, err := lvl.Grid()
	if err != nil {
		return fmt.Errorf("failed to build level %q: %w", lvl.Name, err)
	}
	w.Level = lvl
	w.Grid = g
	return nil
}
