package game

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/emberfield/game/internal/anim"
	"github.com/emberfield/game/internal/render"
)

// Sprite sheet layout. All sheets use uniform 32×32 frames; rows are clips.
const (
	frameSize = 32

	playerSheet = "player.png"
	emberSheet  = "ember.png"
	bombSheet   = "bomb.png"
)

// assets holds the uploaded sprite textures shared by every session.
type assets struct {
	player render.Texture
	ember  render.Texture
	bomb   render.Texture
}

func loadAssets(b render.Backend, dir string) (*assets, error) {
	a := &assets{}
	for _, s := range []struct {
		name string
		dst  *render.Texture
	}{
		{playerSheet, &a.player},
		{emberSheet, &a.ember},
		{bombSheet, &a.bomb},
	} {
		tex, err := b.LoadTexture(filepath.Join(dir, s.name))
		if err != nil {
			return nil, fmt.Errorf("load sprite sheet %s: %w", s.name, err)
		}
		*s.dst = tex
	}
	return a, nil
}

// Player sheet rows: 0-3 walk down/up/left/right, 4 attack.
func playerAnim() *anim.State {
	return anim.NewState(
		anim.Strip(clipIdle, 0, 1, frameSize, frameSize, 100*time.Millisecond, true),
		anim.Strip(clipWalkDown, 0, 4, frameSize, frameSize, 120*time.Millisecond, true),
		anim.Strip(clipWalkUp, 1, 4, frameSize, frameSize, 120*time.Millisecond, true),
		anim.Strip(clipWalkLeft, 2, 4, frameSize, frameSize, 120*time.Millisecond, true),
		anim.Strip(clipWalkRight, 3, 4, frameSize, frameSize, 120*time.Millisecond, true),
		anim.Strip(clipAttack, 4, 3, frameSize, frameSize, 80*time.Millisecond, false),
	)
}

func emberAnim() *anim.State {
	return anim.NewState(anim.Strip("spin", 0, 6, frameSize, frameSize, 100*time.Millisecond, true))
}

func bombAnim() *anim.State {
	return anim.NewState(anim.Strip("fuse", 0, 4, frameSize, frameSize, 150*time.Millisecond, true))
}

const (
	clipIdle      = "idle"
	clipWalkDown  = "walk_down"
	clipWalkUp    = "walk_up"
	clipWalkLeft  = "walk_left"
	clipWalkRight = "walk_right"
	clipAttack    = "attack"
)
