package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/tileworld/internal/config"
	"chosenoffset.com/tileworld/internal/core/geom"
	"chosenoffset.com/tileworld/internal/entity/player"
	"chosenoffset.com/tileworld/internal/sprite"
	"chosenoffset.com/tileworld/internal/world/level"
)

func newTestWorld(t *testing.T, stage string) *World {
	t.Helper()
	cfg := config.Default()
	cfg.Stage = stage
	w, err := NewWorld(level.Default(), cfg, sprite.DefaultPlayerSheet())
	require.NoError(t, err)
	return w
}

func TestNewWorldSpawnsPlayer(t *testing.T) {
	w := newTestWorld(t, "follow")

	// Spawn cell (2, 1), 48px body centered in the 64px tile.
	assert.Equal(t, geom.NewRect(136, 72, 48, 48), w.Player.Body)
	assert.Equal(t, StageFollow, w.Stage)
	assert.True(t, w.Grid.Bounds().Contains(w.Camera.View()))
}

func TestNewWorldRejectsUnknownStage(t *testing.T) {
	cfg := config.Default()
	cfg.Stage = "nope"
	_, err := NewWorld(level.Default(), cfg, nil)
	assert.Error(t, err)
}

func TestNewWorldWithoutFreeCell(t *testing.T) {
	lvl, err := level.FromMatrix("solid", [][]int{{1, 1}, {1, 1}})
	require.NoError(t, err)
	_, err = NewWorld(lvl, config.Default(), nil)
	assert.Error(t, err)
}

func TestPlayerBlockedByFloor(t *testing.T) {
	w := newTestWorld(t, "move")

	// Walk down: row 3 columns 0-6 are solid under the spawn.
	for i := 0; i < 60; i++ {
		w.Update(player.Input{Down: true})
	}
	assert.Equal(t, 192.0-48, w.Player.Body.Y)
	assert.True(t, w.Contacts.Bottom)
	assert.Equal(t, sprite.IdleDown, w.Player.AnimationKey(), "no displacement means idle")
	assert.Empty(t, w.Grid.Overlapping(w.Player.Body))
}

func TestPlayerConfinedToLevel(t *testing.T) {
	w := newTestWorld(t, "move")

	for i := 0; i < 200; i++ {
		w.Update(player.Input{Left: true, Up: true})
	}
	// Tile (0, 0) is solid, so the player ends beside it against the top edge.
	assert.Equal(t, 64.0, w.Player.Body.X)
	assert.Equal(t, 0.0, w.Player.Body.Y)
	assert.True(t, w.Contacts.Top)
	assert.True(t, w.Contacts.Left)
}

func TestPlayerWalksAndAnimates(t *testing.T) {
	w := newTestWorld(t, "follow")
	start := w.Player.Body.X

	w.Update(player.Input{Right: true})
	assert.Equal(t, start+4, w.Player.Body.X)
	assert.Equal(t, sprite.WalkRight, w.Player.AnimationKey())
}

func TestFollowCameraLags(t *testing.T) {
	w := newTestWorld(t, "follow")

	// Put the player in the middle of the level so the camera is free to move.
	w.Player.MoveTo(geom.Vec2{X: 1400, Y: 650})
	before := w.Camera.Target
	w.Update(player.Input{})
	after := w.Camera.Target

	target := w.Player.Center()
	assert.Greater(t, after.X, before.X)
	assert.Less(t, after.X, target.X, "camera should not reach the player in one frame")
	assert.True(t, w.Grid.Bounds().Contains(w.Camera.View()))
}

func TestMoveStageCameraSnaps(t *testing.T) {
	w := newTestWorld(t, "move")
	w.Player.MoveTo(geom.Vec2{X: 900, Y: 700})
	w.Update(player.Input{})

	// x free, y clamped at the bottom edge (896 - 360).
	assert.Equal(t, 924.0, w.Camera.Target.X)
	assert.Equal(t, 536.0, w.Camera.Target.Y)
}

func TestPanStage(t *testing.T) {
	w := newTestWorld(t, "pan")
	w.SetStage(StagePan)

	for i := 0; i < 10; i++ {
		w.Update(player.Input{Right: true, Down: true})
	}
	assert.Equal(t, geom.Vec2{X: 680, Y: 400}, w.Camera.Target)

	// Player does not move in the pan stage.
	assert.Equal(t, geom.NewRect(136, 72, 48, 48), w.Player.Body)

	for i := 0; i < 1000; i++ {
		w.Update(player.Input{Right: true})
	}
	assert.Equal(t, 1152.0, w.Camera.Target.X)
}

func TestPanStageOpposingKeys(t *testing.T) {
	w := newTestWorld(t, "pan")
	w.Camera.Target = geom.Vec2{X: 900, Y: 448}

	w.Update(player.Input{Up: true, Down: true, Left: true, Right: true})
	assert.Equal(t, geom.Vec2{X: 896, Y: 444}, w.Camera.Target)

	w.Update(player.Input{Left: true, Right: true})
	assert.Equal(t, geom.Vec2{X: 892, Y: 444}, w.Camera.Target)
}

func TestGridStageParksCamera(t *testing.T) {
	w := newTestWorld(t, "follow")
	w.Player.MoveTo(geom.Vec2{X: 1400, Y: 650})
	w.SetStage(StageMove)
	require.NotEqual(t, geom.Vec2{}, w.Camera.Offset())

	w.SetStage(StageGrid)
	assert.Equal(t, geom.Vec2{}, w.Camera.Offset())

	w.Update(player.Input{Right: true})
	assert.Equal(t, geom.Vec2{}, w.Camera.Offset())
}

func TestReloadKeepsPlayerWhenFree(t *testing.T) {
	w := newTestWorld(t, "follow")
	before := w.Player.Body

	lvl := level.Default()
	lvl.Name = "edited"
	require.NoError(t, w.Reload(lvl))
	assert.Equal(t, before, w.Player.Body)
	assert.Equal(t, "edited", w.Level.Name)
}

func TestReloadRespawnsWhenBlocked(t *testing.T) {
	w := newTestWorld(t, "follow")

	// Player stands in cell (2, 1); the new level fills it in and declares a spawn elsewhere.
	lvl, err := level.Parse([]byte(`
rows:
  - "#####"
  - "#####"
  - "...P."
`))
	require.NoError(t, err)
	require.NoError(t, w.Reload(lvl))

	assert.Equal(t, geom.NewRect(200, 136, 48, 48), w.Player.Body)
	assert.Empty(t, w.Grid.Overlapping(w.Player.Body))
}

func TestStageHelpers(t *testing.T) {
	s, err := ParseStage("pan")
	require.NoError(t, err)
	assert.Equal(t, StagePan, s)
	assert.Equal(t, "pan", s.String())
	assert.Equal(t, StageMove, s.Next())
	assert.Equal(t, StageGrid, StageFollow.Next())
	assert.Equal(t, "Use arrows to move camera", StagePan.Hint())
	assert.False(t, StagePan.HasPlayer())
	assert.True(t, StageFollow.HasPlayer())

	_, err = ParseStage("platformer")
	assert.Error(t, err)
}

func TestReloadRejectsLevelWithoutFreeCell(t *testing.T) {
	w := newTestWorld(t, "follow")
	oldLevel, oldGrid, body := w.Level, w.Grid, w.Player.Body

	lvl, err := level.FromMatrix("solid", [][]int{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}})
	require.NoError(t, err)
	require.Error(t, w.Reload(lvl))

	assert.Same(t, oldLevel, w.Level)
	assert.Same(t, oldGrid, w.Grid)
	assert.Equal(t, body, w.Player.Body)
	assert.Empty(t, w.Grid.Overlapping(w.Player.Body))

	// Movement still runs against the old grid.
	w.Update(player.Input{Right: true})
	assert.Equal(t, body.X+4, w.Player.Body.X)
}
