package render

import "github.com/emberfield/game/internal/geom"

// Camera maps world coordinates to screen coordinates for a fixed-size
// viewport. The focus is clamped against the world bounds so the visible
// viewport never requests a region outside the world; the clamp is
// deterministic (worlds narrower than the viewport pin to the world origin
// side).
type Camera struct {
	viewW, viewH float64
	bounds       geom.Rect
	focus        geom.Point
}

// NewCamera creates a camera for a viewport of the given pixel size.
func NewCamera(viewW, viewH float64) *Camera {
	return &Camera{viewW: viewW, viewH: viewH}
}

// SetWorldBounds sets the rectangular extent of the playable world. Called
// once after level load.
func (c *Camera) SetWorldBounds(r geom.Rect) {
	c.bounds = r
	c.focus = c.clamp(c.focus)
}

// LookAt focuses the camera on a world point, clamped to the world bounds.
// Called once per frame with the player's position.
func (c *Camera) LookAt(p geom.Point) {
	c.focus = c.clamp(p)
}

// Focus returns the current (clamped) focus point.
func (c *Camera) Focus() geom.Point {
	return c.focus
}

func (c *Camera) clamp(p geom.Point) geom.Point {
	p.X = clampAxis(p.X, c.bounds.X, c.bounds.X+c.bounds.W, c.viewW/2)
	p.Y = clampAxis(p.Y, c.bounds.Y, c.bounds.Y+c.bounds.H, c.viewH/2)
	return p
}

// clampAxis keeps the focus at least half a viewport away from both world
// edges. When the world is smaller than the viewport the two limits cross;
// pinning to the low edge keeps the result deterministic.
func clampAxis(v, lo, hi, half float64) float64 {
	if v > hi-half {
		v = hi - half
	}
	if v < lo+half {
		v = lo + half
	}
	return v
}

// origin is the world coordinate of the viewport's top-left corner.
func (c *Camera) origin() geom.Point {
	return geom.Point{X: c.focus.X - c.viewW/2, Y: c.focus.Y - c.viewH/2}
}

// ToScreen translates a world rect into screen coordinates.
func (c *Camera) ToScreen(r geom.Rect) geom.Rect {
	o := c.origin()
	return r.Translate(-o.X, -o.Y)
}

// ToWorld translates a screen point (e.g. a mouse click) back into world
// coordinates. Inverse of ToScreen.
func (c *Camera) ToWorld(p geom.Point) geom.Point {
	o := c.origin()
	return geom.Point{X: p.X + o.X, Y: p.Y + o.Y}
}
