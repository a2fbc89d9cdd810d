package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emberfield/game/internal/geom"
)

func TestCameraClampsToWorldBounds(t *testing.T) {
	cam := NewCamera(400, 300)
	cam.SetWorldBounds(geom.R(0, 0, 1280, 960))

	t.Run("interior focus unchanged", func(t *testing.T) {
		cam.LookAt(geom.Point{X: 640, Y: 480})
		require.Equal(t, geom.Point{X: 640, Y: 480}, cam.Focus())
	})

	t.Run("clamped at low edge", func(t *testing.T) {
		cam.LookAt(geom.Point{X: 0, Y: 0})
		require.Equal(t, geom.Point{X: 200, Y: 150}, cam.Focus())
	})

	t.Run("clamped at high edge", func(t *testing.T) {
		cam.LookAt(geom.Point{X: 5000, Y: 5000})
		require.Equal(t, geom.Point{X: 1080, Y: 810}, cam.Focus())
	})
}

func TestCameraSmallWorldPinsToOrigin(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.SetWorldBounds(geom.R(0, 0, 320, 240))

	cam.LookAt(geom.Point{X: 160, Y: 120})
	require.Equal(t, geom.Point{X: 400, Y: 300}, cam.Focus(),
		"world narrower than viewport pins deterministically")
}

func TestToScreenToWorldRoundTrip(t *testing.T) {
	cam := NewCamera(400, 300)
	cam.SetWorldBounds(geom.R(0, 0, 1280, 960))
	cam.LookAt(geom.Point{X: 640, Y: 480})

	// Viewport origin is focus − half viewport = (440, 330).
	r := cam.ToScreen(geom.R(500, 400, 32, 32))
	require.Equal(t, geom.R(60, 70, 32, 32), r)

	p := cam.ToWorld(geom.Point{X: 60, Y: 70})
	require.Equal(t, geom.Point{X: 500, Y: 400}, p)
}

func TestViewportNeverLeavesWorld(t *testing.T) {
	cam := NewCamera(400, 300)
	cam.SetWorldBounds(geom.R(0, 0, 1280, 960))

	for _, focus := range []geom.Point{{X: -100, Y: -100}, {X: 0, Y: 960}, {X: 1280, Y: 0}, {X: 9999, Y: 9999}} {
		cam.LookAt(focus)
		topLeft := cam.ToWorld(geom.Point{})
		bottomRight := cam.ToWorld(geom.Point{X: 400, Y: 300})
		require.GreaterOrEqual(t, topLeft.X, 0.0)
		require.GreaterOrEqual(t, topLeft.Y, 0.0)
		require.LessOrEqual(t, bottomRight.X, 1280.0)
		require.LessOrEqual(t, bottomRight.Y, 960.0)
	}
}
