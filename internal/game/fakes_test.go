package game

import (
	"image"
	"image/color"

	"chosenoffset.com/tileworld/internal/render"
)

type fakeGeoM struct {
	tx, ty float64
	sx, sy float64
}

func (g *fakeGeoM) Translate(tx, ty float64) { g.tx += tx; g.ty += ty }
func (g *fakeGeoM) Scale(sx, sy float64)     { g.sx, g.sy = sx, sy }
func (g *fakeGeoM) Reset()                   { *g = fakeGeoM{sx: 1, sy: 1} }

func init() {
	render.NewGeoM = func() render.GeoM { return &fakeGeoM{sx: 1, sy: 1} }
}

type drawCall struct {
	src  *fakeImage
	geoM *fakeGeoM
}

type fakeImage struct {
	bounds   image.Rectangle
	parent   *fakeImage
	filled   color.Color
	draws    []drawCall
	disposed bool
}

func newFakeImage(w, h int) *fakeImage {
	return &fakeImage{bounds: image.Rect(0, 0, w, h)}
}

func (i *fakeImage) Bounds() image.Rectangle { return i.bounds }
func (i *fakeImage) Size() (int, int)        { return i.bounds.Dx(), i.bounds.Dy() }
func (i *fakeImage) SubImage(r image.Rectangle) render.Image {
	return &fakeImage{bounds: r, parent: i}
}
func (i *fakeImage) Fill(clr color.Color) { i.filled = clr }
func (i *fakeImage) Clear()               { i.filled = nil }
func (i *fakeImage) Dispose()             { i.disposed = true }
func (i *fakeImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	call := drawCall{src: src.(*fakeImage)}
	if opts != nil && opts.GeoM != nil {
		call.geoM = opts.GeoM.(*fakeGeoM)
	}
	i.draws = append(i.draws, call)
}

type textCall struct {
	text string
	x, y int
}

type fakeRenderer struct {
	created int
	rects   int
	texts   []textCall
}

func (r *fakeRenderer) NewImage(w, h int) render.Image { r.created++; return newFakeImage(w, h) }
func (r *fakeRenderer) NewImageFromImage(src image.Image) render.Image {
	r.created++
	b := src.Bounds()
	return newFakeImage(b.Dx(), b.Dy())
}
func (r *fakeRenderer) FillRect(dst render.Image, x, y, w, h float32, clr color.Color) { r.rects++ }
func (r *fakeRenderer) StrokeRect(dst render.Image, x, y, w, h, sw float32, clr color.Color) {
}
func (r *fakeRenderer) DrawText(dst render.Image, text string, x, y int, clr color.Color) {
	r.texts = append(r.texts, textCall{text: text, x: x, y: y})
}
func (r *fakeRenderer) MeasureText(text string) (int, int) { return len(text) * 7, 13 }

type fakeInput struct {
	pressed     map[render.Key]bool
	justPressed map[render.Key]bool
}

func newFakeInput() *fakeInput {
	return &fakeInput{pressed: map[render.Key]bool{}, justPressed: map[render.Key]bool{}}
}

func (f *fakeInput) IsKeyPressed(k render.Key) bool     { return f.pressed[k] }
func (f *fakeInput) IsKeyJustPressed(k render.Key) bool { return f.justPressed[k] }

type fakeLoader struct {
	paths []string
}

func (l *fakeLoader) LoadImage(path string) (render.Image, error) {
	l.paths = append(l.paths, path)
	return newFakeImage(192, 384), nil
}

type fakeEngine struct{}

func (fakeEngine) SetWindowSize(int, int)         {}
func (fakeEngine) SetWindowTitle(string)          {}
func (fakeEngine) SetWindowResizable(bool)        {}
func (fakeEngine) SetTPS(int)                     {}
func (fakeEngine) ActualTPS() float64             { return 60 }
func (fakeEngine) RunGame(render.Game) error      { return nil }
