// Package level loads tile-based level descriptions from YAML. Level data is
// read-only after load; a malformed or missing file is fatal at setup time
// and no partial world is constructed.
package level

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// TileDef resolves one tile id to an image and its pixel footprint.
type TileDef struct {
	ID     int    `yaml:"id"`
	Image  string `yaml:"image"` // path relative to the level file's directory
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// Layer is a flat grid of tile ids, row-major. Id zero means empty and is
// never rendered.
type Layer struct {
	Name string
	grid []int
	cols int
}

// TileAt returns the tile id at column i, row j, or 0 out of bounds.
func (l *Layer) TileAt(i, j int) int {
	if i < 0 || i >= l.cols || j < 0 || j*l.cols+i >= len(l.grid) {
		return 0
	}
	return l.grid[j*l.cols+i]
}

// Level is a loaded level: dimensions, layers and the tile-id lookup.
type Level struct {
	Name        string
	WidthTiles  int
	HeightTiles int
	TileWidth   int
	TileHeight  int
	Layers      []Layer
	Tiles       map[int]TileDef

	// Dir is the directory the level was loaded from; tile image paths
	// resolve against it.
	Dir string
}

// PixelWidth returns the world width in world units.
func (lv *Level) PixelWidth() float64 {
	return float64(lv.WidthTiles * lv.TileWidth)
}

// PixelHeight returns the world height in world units.
func (lv *Level) PixelHeight() float64 {
	return float64(lv.HeightTiles * lv.TileHeight)
}

// ImagePath resolves a tile image path against the level directory.
func (lv *Level) ImagePath(image string) string {
	return filepath.Join(lv.Dir, image)
}

type layerFile struct {
	Name string  `yaml:"name"`
	Rows [][]int `yaml:"rows"`
}

type levelFile struct {
	Name        string      `yaml:"name"`
	WidthTiles  int         `yaml:"width_tiles"`
	HeightTiles int         `yaml:"height_tiles"`
	TileWidth   int         `yaml:"tile_width"`
	TileHeight  int         `yaml:"tile_height"`
	Tileset     []TileDef   `yaml:"tileset"`
	Layers      []layerFile `yaml:"layers"`
}

// Load reads and validates a level file.
func Load(path string) (*Level, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read level %s: %w", path, err)
	}
	var file levelFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse level %s: %w", path, err)
	}

	if file.WidthTiles <= 0 || file.HeightTiles <= 0 {
		return nil, fmt.Errorf("level %s: invalid dimensions %dx%d tiles", path, file.WidthTiles, file.HeightTiles)
	}
	if file.TileWidth <= 0 || file.TileHeight <= 0 {
		return nil, fmt.Errorf("level %s: invalid tile size %dx%d", path, file.TileWidth, file.TileHeight)
	}
	if len(file.Layers) == 0 {
		return nil, fmt.Errorf("level %s: no layers", path)
	}

	lv := &Level{
		Name:        file.Name,
		WidthTiles:  file.WidthTiles,
		HeightTiles: file.HeightTiles,
		TileWidth:   file.TileWidth,
		TileHeight:  file.TileHeight,
		Tiles:       make(map[int]TileDef, len(file.Tileset)),
		Dir:         filepath.Dir(path),
	}

	for _, def := range file.Tileset {
		if def.ID == 0 {
			return nil, fmt.Errorf("level %s: tile id 0 is reserved for empty", path)
		}
		if def.Width <= 0 || def.Height <= 0 {
			return nil, fmt.Errorf("level %s: tile %d has invalid footprint %dx%d", path, def.ID, def.Width, def.Height)
		}
		if _, dup := lv.Tiles[def.ID]; dup {
			return nil, fmt.Errorf("level %s: duplicate tile id %d", path, def.ID)
		}
		lv.Tiles[def.ID] = def
	}

	for _, lf := range file.Layers {
		if len(lf.Rows) != file.HeightTiles {
			return nil, fmt.Errorf("level %s: layer %q has %d rows, want %d", path, lf.Name, len(lf.Rows), file.HeightTiles)
		}
		layer := Layer{
			Name: lf.Name,
			grid: make([]int, 0, file.WidthTiles*file.HeightTiles),
			cols: file.WidthTiles,
		}
		for j, row := range lf.Rows {
			if len(row) != file.WidthTiles {
				return nil, fmt.Errorf("level %s: layer %q row %d has %d columns, want %d", path, lf.Name, j, len(row), file.WidthTiles)
			}
			layer.grid = append(layer.grid, row...)
		}
		lv.Layers = append(lv.Layers, layer)
	}

	return lv, nil
}

// NewLayer builds a layer from a flat row-major grid. Used by tests and
// generated content; Load is the normal path.
func NewLayer(name string, cols int, grid []int) Layer {
	return Layer{Name: name, grid: grid, cols: cols}
}
