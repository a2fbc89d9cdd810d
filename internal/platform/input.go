package platform

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/input"
)

// bindings maps each logical key to the physical keys that trigger it.
var bindings = map[input.Key][]ebiten.Key{
	input.KeyUp:        {ebiten.KeyW, ebiten.KeyArrowUp},
	input.KeyDown:      {ebiten.KeyS, ebiten.KeyArrowDown},
	input.KeyLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.KeyRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
	input.KeyAttack:    {ebiten.KeyJ},
	input.KeyBomb:      {ebiten.KeyB},
	input.KeyToggle:    {ebiten.KeyW, ebiten.KeyS, ebiten.KeyArrowUp, ebiten.KeyArrowDown, ebiten.KeyTab},
	input.KeySelect:    {ebiten.KeyEnter},
	input.KeySelectAlt: {ebiten.KeySpace},
}

// Input samples the Ebiten keyboard and mouse.
type Input struct{}

func NewInput() *Input {
	return &Input{}
}

func (i *Input) Pressed(k input.Key) bool {
	for _, ek := range bindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func (i *Input) Clicked() (geom.Point, bool) {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return geom.Point{}, false
	}
	x, y := ebiten.CursorPosition()
	return geom.Point{X: float64(x), Y: float64(y)}, true
}
