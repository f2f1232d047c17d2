package placeholders

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chosenoffset.com/tileworld/internal/sprite"
	"chosenoffset.com/tileworld/internal/world/level"
)

func TestSolidTile(t *testing.T) {
	img := SolidTile(64, ColorPalette.Tile)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, ColorPalette.Tile, img.RGBAAt(0, 0))
	assert.Equal(t, ColorPalette.Tile, img.RGBAAt(63, 63))
}

func TestBorderedTile(t *testing.T) {
	fill := color.RGBA{10, 20, 30, 255}
	border := color.RGBA{200, 0, 0, 255}
	img := BorderedTile(16, fill, border, 2)

	assert.Equal(t, border, img.RGBAAt(0, 5))
	assert.Equal(t, border, img.RGBAAt(14, 5))
	assert.Equal(t, fill, img.RGBAAt(8, 8))
}

func TestPlayerSheetMatchesLayout(t *testing.T) {
	s := sprite.DefaultPlayerSheet()
	img := PlayerSheet(s)

	w, h := s.Size()
	assert.Equal(t, w, img.Bounds().Dx())
	assert.Equal(t, h, img.Bounds().Dy())

	// The middle of every frame is body colored.
	for _, key := range s.Keys() {
		r, ok := s.Frame(key, 0)
		require.True(t, ok)
		c := img.RGBAAt(r.Min.X+r.Dx()/2, r.Min.Y+r.Dy()/2)
		assert.Equal(t, ColorPalette.Player, c, key)
	}

	// Unused cells of idle rows stay transparent.
	idle, _ := s.Frame(sprite.IdleDown, 0)
	assert.Equal(t, uint8(0), img.RGBAAt(idle.Max.X+10, idle.Min.Y+10).A)
}

func TestDarkenLighten(t *testing.T) {
	c := color.RGBA{100, 200, 50, 255}
	assert.Equal(t, color.RGBA{50, 100, 25, 255}, Darken(c, 0.5))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, Lighten(c, 1))
}

func TestGenerateAndSave(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, GenerateAndSave(dir))

	for _, name := range []string{"tile.png", "tile_bordered.png", "player.png", "player.yaml", "level.yaml"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}

	sheet, err := sprite.LoadSheet(filepath.Join(dir, "player.yaml"))
	require.NoError(t, err)
	assert.Equal(t, sprite.DefaultPlayerSheet().Anims, sheet.Anims)

	lvl, err := level.Load(filepath.Join(dir, "level.yaml"))
	require.NoError(t, err)
	assert.Equal(t, level.Default().Solid, lvl.Solid)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "tile.png")
	require.NoError(t, SavePNG(SolidTile(8, ColorPalette.Tile), path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 8), img.Bounds())
}

func TestSavePNGUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	assert.Error(t, SavePNG(SolidTile(8, ColorPalette.Tile), filepath.Join(blocker, "tile.png")))
}
