// Package render holds the camera-relative rendering pipeline: the world-to-
// screen transform, tile-grid compositing and the backend boundary the core
// draws through. The core never manipulates pixels; everything goes through
// the Backend interface, implemented for production in internal/platform.
package render

import (
	"image/color"

	"github.com/emberfield/game/internal/geom"
)

// Texture is an opaque handle to an uploaded texture.
type Texture interface {
	// Size returns the texture dimensions in pixels.
	Size() (w, h int)
}

// Backend is the low-level drawing surface the core composites into each
// frame. A texture or surface creation failure is fatal; there is no
// fallback rendering path.
type Backend interface {
	LoadTexture(path string) (Texture, error)

	// DrawTexture draws the src sub-rectangle of t into dst screen
	// coordinates.
	DrawTexture(t Texture, src, dst geom.Rect)

	FillRect(dst geom.Rect, c color.RGBA)

	DrawText(s string, size float64, c color.RGBA, pos geom.Point)
	MeasureText(s string, size float64) (w, h float64)

	// Clear erases the frame; called first in every render pass.
	Clear()
	// Present flips the finished frame to the display.
	Present()
}
