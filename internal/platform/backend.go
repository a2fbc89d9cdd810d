// Package platform binds the game to Ebiten: texture upload and drawing,
// keyboard and mouse sampling, and the fixed-rate run loop. Everything above
// this package talks to interfaces and never imports Ebiten.
package platform

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/render"
)

// texture wraps an uploaded Ebiten image.
type texture struct {
	img *ebiten.Image
}

func (t *texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Backend renders through Ebiten. The destination image is only valid
// inside a Draw callback; the App sets it before each render pass.
type Backend struct {
	screen *ebiten.Image
	font   *text.GoTextFaceSource
}

func NewBackend() (*Backend, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("load embedded font: %w", err)
	}
	return &Backend{font: src}, nil
}

// setScreen points the backend at the frame's destination image.
func (b *Backend) setScreen(screen *ebiten.Image) {
	b.screen = screen
}

func (b *Backend) LoadTexture(path string) (render.Texture, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load texture %s: %w", path, err)
	}
	return &texture{img: img}, nil
}

func (b *Backend) DrawTexture(t render.Texture, src, dst geom.Rect) {
	img := t.(*texture).img
	sub := img.SubImage(image.Rect(int(src.X), int(src.Y), int(src.X+src.W), int(src.Y+src.H))).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	if src.W != dst.W || src.H != dst.H {
		op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	}
	op.GeoM.Translate(dst.X, dst.Y)
	b.screen.DrawImage(sub, op)
}

func (b *Backend) FillRect(dst geom.Rect, c color.RGBA) {
	vector.DrawFilledRect(b.screen, float32(dst.X), float32(dst.Y), float32(dst.W), float32(dst.H), c, false)
}

func (b *Backend) DrawText(s string, size float64, c color.RGBA, pos geom.Point) {
	face := &text.GoTextFace{Source: b.font, Size: size}
	op := &text.DrawOptions{}
	op.GeoM.Translate(pos.X, pos.Y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(b.screen, s, face, op)
}

func (b *Backend) MeasureText(s string, size float64) (float64, float64) {
	face := &text.GoTextFace{Source: b.font, Size: size}
	return text.Measure(s, face, 0)
}

func (b *Backend) Clear() {
	b.screen.Fill(color.RGBA{R: 12, G: 12, B: 18, A: 255})
}

// Present is a no-op: Ebiten presents the frame when the Draw callback
// returns.
func (b *Backend) Present() {}
