// Package sprite describes keyed sprite sheets: each animation key names a row
// of equally sized frames in a single sheet image.
package sprite

import (
	"fmt"
	"image"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Animation keys used for the player.
const (
	IdleDown  = "idle_down"
	IdleUp    = "idle_up"
	IdleLeft  = "idle_left"
	IdleRight = "idle_right"
	WalkDown  = "walk_down"
	WalkUp    = "walk_up"
	WalkLeft  = "walk_left"
	WalkRight = "walk_right"
)

// Anim is one animation strip inside the sheet.
type Anim struct {
	Row    int `yaml:"row"`    // Row of the strip (in frames)
	Frames int `yaml:"frames"` // Number of frames, laid out left to right
}

// Sheet maps animation keys to strips of a sprite sheet image.
type Sheet struct {
	ImagePath   string          `yaml:"image_path"`
	FrameWidth  int             `yaml:"frame_width"`
	FrameHeight int             `yaml:"frame_height"`
	Anims       map[string]Anim `yaml:"anims"`
}

// DefaultPlayerSheet is the layout produced by the placeholder generator:
// one row per key, idle rows with a single frame, walk rows with four.
func DefaultPlayerSheet() *Sheet {
	return &Sheet{
		ImagePath:   "assets/player.png",
		FrameWidth:  48,
		FrameHeight: 48,
		Anims: map[string]Anim{
			IdleDown:  {Row: 0, Frames: 1},
			IdleUp:    {Row: 1, Frames: 1},
			IdleLeft:  {Row: 2, Frames: 1},
			IdleRight: {Row: 3, Frames: 1},
			WalkDown:  {Row: 4, Frames: 4},
			WalkUp:    {Row: 5, Frames: 4},
			WalkLeft:  {Row: 6, Frames: 4},
			WalkRight: {Row: 7, Frames: 4},
		},
	}
}

// LoadSheet loads a sheet definition from a YAML file.
func LoadSheet(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sprite sheet %s: %w", path, err)
	}

	var s Sheet
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse sprite sheet %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sprite sheet %s: %w", path, err)
	}
	return &s, nil
}

// Validate checks frame sizes and animation strips.
func (s *Sheet) Validate() error {
	if s.FrameWidth <= 0 || s.FrameHeight <= 0 {
		return fmt.Errorf("invalid frame dimensions: %dx%d", s.FrameWidth, s.FrameHeight)
	}
	if len(s.Anims) == 0 {
		return fmt.Errorf("sheet defines no animations")
	}
	for key, a := range s.Anims {
		if a.Row < 0 {
			return fmt.Errorf("animation %s: negative row %d", key, a.Row)
		}
		if a.Frames <= 0 {
			return fmt.Errorf("animation %s: frame count must be positive, got %d", key, a.Frames)
		}
	}
	return nil
}

// Keys returns the animation keys in sorted order.
func (s *Sheet) Keys() []string {
	keys := make([]string, 0, len(s.Anims))
	for k := range s.Anims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FrameCount returns the number of frames for key, or 0 if the key is unknown.
func (s *Sheet) FrameCount(key string) int {
	return s.Anims[key].Frames
}

// Frame returns the source rectangle of frame i of the given animation.
// i wraps around the strip length.
func (s *Sheet) Frame(key string, i int) (image.Rectangle, bool) {
	a, ok := s.Anims[key]
	if !ok || a.Frames <= 0 {
		return image.Rectangle{}, false
	}

	i %= a.Frames
	if i < 0 {
		i += a.Frames
	}

	x := i * s.FrameWidth
	y := a.Row * s.FrameHeight
	return image.Rect(x, y, x+s.FrameWidth, y+s.FrameHeight), true
}

// Size returns the pixel size an image must have to hold every strip.
func (s *Sheet) Size() (width, height int) {
	maxFrames, maxRow := 0, -1
	for _, a := range s.Anims {
		maxFrames = max(maxFrames, a.Frames)
		maxRow = max(maxRow, a.Row)
	}
	return maxFrames * s.FrameWidth, (maxRow + 1) * s.FrameHeight
}
