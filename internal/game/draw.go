package game

import (
	"image/color"

	"chosenoffset.com/tileworld/internal/placeholders"
	"chosenoffset.com/tileworld/internal/render"
	"chosenoffset.com/tileworld/internal/world/tile"
)

var (
	backgroundColor = color.Black
	playerFallback  = color.RGBA{255, 255, 100, 255}
)

// Assets caches the textures the world is drawn with.
type Assets struct {
	// PlayerSheet is the sprite sheet image; nil draws the player as a rectangle.
	PlayerSheet render.Image

	tiles map[tileKey]render.Image
}

type tileKey struct {
	size  int
	color color.RGBA
}

// NewAssets creates an empty texture cache.
func NewAssets() *Assets {
	return &Assets{tiles: make(map[tileKey]render.Image)}
}

// TileTexture returns the solid-color texture for t, creating it on first use.
func (a *Assets) TileTexture(r render.Renderer, t tile.Tile) render.Image {
	key := tileKey{size: int(t.Rect.W), color: t.Color}
	if tex, ok := a.tiles[key]; ok {
		return tex
	}
	tex := r.NewImageFromImage(placeholders.SolidTile(key.size, key.color))
	a.tiles[key] = tex
	return tex
}

// Dispose releases every cached texture.
func (a *Assets) Dispose() {
	for k, tex := range a.tiles {
		tex.Dispose()
		delete(a.tiles, k)
	}
	if a.PlayerSheet != nil {
		a.PlayerSheet.Dispose()
		a.PlayerSheet = nil
	}
}

// Draw renders the visible part of the world onto dst.
func (w *World) Draw(dst render.Image, r render.Renderer, assets *Assets) {
	dst.Fill(backgroundColor)

	w.drawTiles(dst, r, assets)
	if w.Stage.HasPlayer() {
		w.drawPlayer(dst, r, assets)
	}
}

func (w *World) drawTiles(dst render.Image, r render.Renderer, assets *Assets) {
	view := w.Camera.View()
	off := w.Camera.Offset()

	for _, t := range w.Grid.Tiles() {
		if !t.Rect.Overlaps(view) {
			continue
		}
		dst.DrawImage(assets.TileTexture(r, t), placeOptions(t.Rect.X-off.X, t.Rect.Y-off.Y, 1, 1))
	}
}

func (w *World) drawPlayer(dst render.Image, r render.Renderer, assets *Assets) {
	body := w.Player.Body
	pos := w.Camera.WorldToScreen(body.Pos())

	if assets.PlayerSheet != nil {
		sheet := w.Player.Sheet()
		if frame, ok := sheet.Frame(w.Player.AnimationKey(), w.Player.Frame()); ok {
			sx := body.W / float64(frame.Dx())
			sy := body.H / float64(frame.Dy())
			dst.DrawImage(assets.PlayerSheet.SubImage(frame), placeOptions(pos.X, pos.Y, sx, sy))
			return
		}
	}

	r.FillRect(dst, float32(pos.X), float32(pos.Y), float32(body.W), float32(body.H), playerFallback)
}

// placeOptions scales an image and then moves it to (x, y).
func placeOptions(x, y, sx, sy float64) *render.DrawImageOptions {
	opts := &render.DrawImageOptions{}
	if render.NewGeoM == nil {
		return opts
	}
	opts.GeoM = render.NewGeoM()
	if sx != 1 || sy != 1 {
		opts.GeoM.Scale(sx, sy)
	}
	opts.GeoM.Translate(x, y)
	return opts
}
