// Package placeholders generates the stand-in graphics the game uses until real
// art exists: solid-colored tile textures and a blocky player sprite sheet.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"chosenoffset.com/tileworld/internal/sprite"
	"chosenoffset.com/tileworld/internal/world/level"
	"chosenoffset.com/tileworld/internal/world/tile"
)

// ColorPalette defines the placeholder colors.
var ColorPalette = struct {
	Tile       color.RGBA
	TileEdge   color.RGBA
	Player     color.RGBA
	PlayerEye  color.RGBA
	PlayerFeet color.RGBA
}{
	Tile:       tile.DefaultColor,
	TileEdge:   color.RGBA{150, 150, 150, 255},
	Player:     color.RGBA{0, 200, 90, 255},  // Bright green
	PlayerEye:  color.RGBA{20, 20, 20, 255},  // Near black
	PlayerFeet: color.RGBA{60, 45, 30, 255},  // Dark leather
}

// SolidTile creates a size x size image filled with col.
func SolidTile(size int, col color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), &image.Uniform{col}, image.Point{}, draw.Src)
	return img
}

// BorderedTile creates a solid tile with a border of the given width.
func BorderedTile(size int, fillColor, borderColor color.RGBA, borderWidth int) *image.RGBA {
	img := SolidTile(size, fillColor)

	for i := 0; i < borderWidth; i++ {
		for x := 0; x < size; x++ {
			img.Set(x, i, borderColor)
			img.Set(x, size-1-i, borderColor)
		}
		for y := 0; y < size; y++ {
			img.Set(i, y, borderColor)
			img.Set(size-1-i, y, borderColor)
		}
	}

	return img
}

// PlayerSheet draws a sprite sheet matching the layout of s. Every frame is a
// rounded block with eyes on the facing side; walking frames alternate the feet.
func PlayerSheet(s *sprite.Sheet) *image.RGBA {
	w, h := s.Size()
	sheet := image.NewRGBA(image.Rect(0, 0, w, h))

	for _, key := range s.Keys() {
		anim := s.Anims[key]
		for i := 0; i < anim.Frames; i++ {
			r, _ := s.Frame(key, i)
			drawPlayerFrame(sheet, r, facingOf(key), i)
		}
	}
	return sheet
}

func drawPlayerFrame(dst *image.RGBA, r image.Rectangle, facing string, frame int) {
	fw, fh := r.Dx(), r.Dy()
	body := image.Rect(r.Min.X+fw/8, r.Min.Y+fh/8, r.Max.X-fw/8, r.Max.Y-fh/4)
	draw.Draw(dst, body, &image.Uniform{ColorPalette.Player}, image.Point{}, draw.Src)

	// Shade the bottom row of the body to give it some depth.
	shade := image.Rect(body.Min.X, body.Max.Y-fh/16-1, body.Max.X, body.Max.Y)
	draw.Draw(dst, shade, &image.Uniform{Darken(ColorPalette.Player, 0.7)}, image.Point{}, draw.Src)

	eye := fw / 8
	eyeY := body.Min.Y + fh/6
	var eyes []image.Point
	switch facing {
	case "left":
		eyes = []image.Point{{body.Min.X + eye, eyeY}}
	case "right":
		eyes = []image.Point{{body.Max.X - 2*eye, eyeY}}
	case "down":
		eyes = []image.Point{{body.Min.X + eye, eyeY}, {body.Max.X - 2*eye, eyeY}}
	}
	for _, p := range eyes {
		draw.Draw(dst, image.Rect(p.X, p.Y, p.X+eye, p.Y+eye), &image.Uniform{ColorPalette.PlayerEye}, image.Point{}, draw.Src)
	}

	// Feet: both down when idle or on even frames, one lifted on odd frames.
	footW, footH := fw/5, fh/8
	left := image.Rect(body.Min.X+fw/16, body.Max.Y, body.Min.X+fw/16+footW, body.Max.Y+footH)
	right := image.Rect(body.Max.X-fw/16-footW, body.Max.Y, body.Max.X-fw/16, body.Max.Y+footH)
	switch frame % 4 {
	case 1:
		left = left.Sub(image.Pt(0, footH/2))
	case 3:
		right = right.Sub(image.Pt(0, footH/2))
	}
	draw.Draw(dst, left, &image.Uniform{ColorPalette.PlayerFeet}, image.Point{}, draw.Src)
	draw.Draw(dst, right, &image.Uniform{ColorPalette.PlayerFeet}, image.Point{}, draw.Src)
}

func facingOf(key string) string {
	switch key {
	case sprite.IdleUp, sprite.WalkUp:
		return "up"
	case sprite.IdleLeft, sprite.WalkLeft:
		return "left"
	case sprite.IdleRight, sprite.WalkRight:
		return "right"
	default:
		return "down"
	}
}

// SavePNG saves an image to a PNG file, creating its directory if needed.
func SavePNG(img image.Image, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

// Darken returns a darker version of a color
func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

// GenerateAndSave writes the placeholder assets into dir: the tile textures,
// the player sheet image and definition, and the default level as YAML.
func GenerateAndSave(dir string) error {
	sheet := sprite.DefaultPlayerSheet()
	sheet.ImagePath = filepath.Join(dir, "player.png")

	images := map[string]image.Image{
		"tile.png":          SolidTile(tile.DefaultSize, ColorPalette.Tile),
		"tile_bordered.png": BorderedTile(tile.DefaultSize, Lighten(ColorPalette.Tile, 0.2), ColorPalette.TileEdge, 2),
		"player.png":        PlayerSheet(sheet),
	}
	for name, img := range images {
		path := filepath.Join(dir, name)
		if err := SavePNG(img, path); err != nil {
			return fmt.Errorf("failed to save %s: %w", path, err)
		}
		fmt.Printf("  wrote %s\n", path)
	}

	sheetData, err := yaml.Marshal(sheet)
	if err != nil {
		return fmt.Errorf("failed to encode sprite sheet: %w", err)
	}
	levelData, err := level.Default().Marshal()
	if err != nil {
		return fmt.Errorf("failed to encode level: %w", err)
	}

	files := map[string][]byte{
		"player.yaml": sheetData,
		"level.yaml":  levelData,
	}
	for name, data := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Printf("  wrote %s\n", path)
	}

	return nil
}
