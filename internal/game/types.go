package game

import (
	"fmt"

	"chosenoffset.com/tileworld/internal/config"
)

// Stage selects which prototype the world runs.
type Stage int

const (
	StageGrid   Stage = iota // Static tile grid
	StagePan                 // Arrow keys pan the camera
	StageMove                // Player moves and collides, camera snaps
	StageFollow              // Player animates, camera lags behind
)

// ParseStage converts a stage name into a Stage.
func ParseStage(name string) (Stage, error) {
	i := config.StageIndex(name)
	if i < 0 {
		return StageGrid, fmt.Errorf("unknown stage %q", name)
	}
	return Stage(i), nil
}

// String returns the stage name.
func (s Stage) String() string {
	if s < 0 || int(s) >= len(config.Stages) {
		return fmt.Sprintf("stage(%d)", int(s))
	}
	return config.Stages[s]
}

// Next returns the following stage, wrapping around.
func (s Stage) Next() Stage {
	return Stage((int(s) + 1) % len(config.Stages))
}

// HasPlayer reports whether the player takes part in the stage.
func (s Stage) HasPlayer() bool {
	return s == StageMove || s == StageFollow
}

// Hint is the instruction text shown for the stage.
func (s Stage) Hint() string {
	switch s {
	case StagePan:
		return "Use arrows to move camera"
	case StageMove, StageFollow:
		return "Use arrows to move"
	default:
		return "Tile grid"
	}
}

// Message represents an on-screen message that fades over time.
type Message struct {
	Text     string
	TimeLeft float64 // Seconds remaining
	MaxTime  float64 // Initial duration
}
