package render

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/emberfield/game/internal/geom"
	"github.com/emberfield/game/internal/level"
)

// TileRenderer composites a level's tile layers through a camera. Textures
// for every tile definition are uploaded once at construction; a texture
// load failure there is fatal.
type TileRenderer struct {
	lv       *level.Level
	textures map[int]Texture
	log      *zap.Logger
}

// NewTileRenderer uploads all tileset textures and returns a renderer bound
// to the level.
func NewTileRenderer(lv *level.Level, b Backend, log *zap.Logger) (*TileRenderer, error) {
	tr := &TileRenderer{
		lv:       lv,
		textures: make(map[int]Texture, len(lv.Tiles)),
		log:      log,
	}
	for id, def := range lv.Tiles {
		tex, err := b.LoadTexture(lv.ImagePath(def.Image))
		if err != nil {
			return nil, fmt.Errorf("load tile %d texture %s: %w", id, def.Image, err)
		}
		tr.textures[id] = tex
	}
	log.Debug("tileset loaded", zap.Int("tiles", len(tr.textures)))
	return tr, nil
}

// Draw composites every layer in order: each non-empty cell (i, j) is drawn
// at world position (i·tileW, j·tileH) using the tile's own footprint as
// both source and destination size. Tile ids present in layer data but
// absent from the tileset are a tolerated data inconsistency and are
// silently skipped.
func (tr *TileRenderer) Draw(b Backend, cam *Camera) {
	tw := float64(tr.lv.TileWidth)
	th := float64(tr.lv.TileHeight)
	for li := range tr.lv.Layers {
		layer := &tr.lv.Layers[li]
		for j := 0; j < tr.lv.HeightTiles; j++ {
			for i := 0; i < tr.lv.WidthTiles; i++ {
				id := layer.TileAt(i, j)
				if id == 0 {
					continue
				}
				def, ok := tr.lv.Tiles[id]
				if !ok {
					continue
				}
				src := geom.R(0, 0, float64(def.Width), float64(def.Height))
				dst := geom.R(float64(i)*tw, float64(j)*th, float64(def.Width), float64(def.Height))
				b.DrawTexture(tr.textures[id], src, cam.ToScreen(dst))
			}
		}
	}
}
