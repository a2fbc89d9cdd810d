// Package rendertest provides an in-memory Backend for tests: every draw
// call is recorded instead of rasterized.
package rendertest

import (
	"image/color"

	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/render"
)

// Texture is a fake texture handle with a fixed size.
type Texture struct {
	Path string
	W, H int
}

func (t *Texture) Size() (int, int) { return t.W, t.H }

// DrawOp records one DrawTexture call.
type DrawOp struct {
	Tex      *Texture
	Src, Dst geom.Rect
}

// FillOp records one FillRect call.
type FillOp struct {
	Dst   geom.Rect
	Color color.RGBA
}

// TextOp records one DrawText call.
type TextOp struct {
	Text string
	Size float64
	Pos  geom.Point
}

// Backend records draw calls for assertions. The zero value is usable.
type Backend struct {
	TextureW, TextureH int // size reported by loaded textures (default 64×64)

	Loaded    []string
	Draws     []DrawOp
	Fills     []FillOp
	Texts     []TextOp
	Clears    int
	Presents  int
	FailLoads bool // make LoadTexture fail, for fatal-path tests
}

var _ render.Backend = (*Backend)(nil)

func (b *Backend) LoadTexture(path string) (render.Texture, error) {
	if b.FailLoads {
		return nil, errLoad{path}
	}
	w, h := b.TextureW, b.TextureH
	if w == 0 {
		w = 64
	}
	if h == 0 {
		h = 64
	}
	b.Loaded = append(b.Loaded, path)
	return &Texture{Path: path, W: w, H: h}, nil
}

func (b *Backend) DrawTexture(t render.Texture, src, dst geom.Rect) {
	b.Draws = append(b.Draws, DrawOp{Tex: t.(*Texture), Src: src, Dst: dst})
}

func (b *Backend) FillRect(dst geom.Rect, c color.RGBA) {
	b.Fills = append(b.Fills, FillOp{Dst: dst, Color: c})
}

func (b *Backend) DrawText(s string, size float64, _ color.RGBA, pos geom.Point) {
	b.Texts = append(b.Texts, TextOp{Text: s, Size: size, Pos: pos})
}

func (b *Backend) MeasureText(s string, size float64) (float64, float64) {
	return float64(len(s)) * size * 0.5, size
}

func (b *Backend) Clear()   { b.Clears++ }
func (b *Backend) Present() { b.Presents++ }

// Reset drops all recorded operations, keeping loaded-texture bookkeeping.
func (b *Backend) Reset() {
	b.Draws = nil
	b.Fills = nil
	b.Texts = nil
	b.Clears = 0
	b.Presents = 0
}

type errLoad struct{ path string }

func (e errLoad) Error() string { return "rendertest: load refused: " + e.path }
