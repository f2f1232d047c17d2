package sprite

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPlayerSheet(t *testing.T) {
	s := DefaultPlayerSheet()
	if err := s.Validate(); err != nil {
		t.Fatalf("Default sheet should be valid: %v", err)
	}

	w, h := s.Size()
	if w != 4*48 || h != 8*48 {
		t.Errorf("Expected sheet size 192x384, got %dx%d", w, h)
	}

	if n := s.FrameCount(WalkLeft); n != 4 {
		t.Errorf("Expected 4 walk frames, got %d", n)
	}
	if n := s.FrameCount("missing"); n != 0 {
		t.Errorf("Expected 0 frames for unknown key, got %d", n)
	}
}

func TestFrame(t *testing.T) {
	s := DefaultPlayerSheet()

	r, ok := s.Frame(WalkRight, 2)
	if !ok {
		t.Fatal("Expected walk_right frame")
	}
	want := image.Rect(96, 336, 144, 384)
	if r != want {
		t.Errorf("Expected %v, got %v", want, r)
	}

	// Indices wrap around the strip.
	r, _ = s.Frame(WalkRight, 6)
	if r != want {
		t.Errorf("Expected wrapped frame %v, got %v", want, r)
	}

	if _, ok := s.Frame("nope", 0); ok {
		t.Error("Expected unknown key to report false")
	}
}

func TestLoadSheet(t *testing.T) {
	doc := `
image_path: hero.png
frame_width: 16
frame_height: 24
anims:
  idle_down: {row: 0, frames: 1}
  walk_down: {row: 1, frames: 6}
`
	path := filepath.Join(t.TempDir(), "hero.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSheet(path)
	if err != nil {
		t.Fatalf("LoadSheet failed: %v", err)
	}
	if s.ImagePath != "hero.png" || s.FrameWidth != 16 || s.FrameHeight != 24 {
		t.Errorf("Unexpected sheet header %+v", s)
	}
	keys := s.Keys()
	if len(keys) != 2 || keys[0] != IdleDown || keys[1] != WalkDown {
		t.Errorf("Unexpected keys %v", keys)
	}
}

func TestValidate(t *testing.T) {
	bad := []*Sheet{
		{FrameWidth: 0, FrameHeight: 8, Anims: map[string]Anim{"a": {Frames: 1}}},
		{FrameWidth: 8, FrameHeight: 8},
		{FrameWidth: 8, FrameHeight: 8, Anims: map[string]Anim{"a": {Frames: 0}}},
		{FrameWidth: 8, FrameHeight: 8, Anims: map[string]Anim{"a": {Row: -1, Frames: 1}}},
	}
	for i, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("case %d: expected validation error", i)
		}
	}
}
