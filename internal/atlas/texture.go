package atlas

import (
	"fmt"
	"strings"
)

// TileMap says that the atlas tile at Atlas holds the same pixels as the
// texture tile at Texture. Split copies atlas to texture, merge copies
// texture to atlas.
type TileMap struct {
	Atlas   Coord
	Texture Coord
}

// M is shorthand for a TileMap from atlas (ar,ac) to texture (tr,tc).
func M(ar, ac, tr, tc int) TileMap {
	return TileMap{Atlas: C(ar, ac), Texture: C(tr, tc)}
}

// Texture is a named texture: its own grid size in tiles plus the tile maps
// tying its cells to atlas cells. Textures are immutable once built.
type Texture struct {
	name string
	size Coord
	maps []TileMap
}

// NewTexture validates and builds a texture definition against the atlas
// geometry g.
//
// The definition is rejected with ErrInvalidDefinition when:
//   - the name is empty, is "." or "..", or contains a path separator
//     (names become output file names)
//   - the size is not at least 1x1
//   - there are more tile maps than the texture has cells
//   - a tile map's atlas coordinate lies outside the atlas
//   - a tile map's texture coordinate lies outside the texture
func NewTexture(g Geometry, name string, size Coord, maps []TileMap) (*Texture, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: texture has no name", ErrInvalidDefinition)
	}
	if name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return nil, fmt.Errorf("%w: texture name %q must be a plain file name", ErrInvalidDefinition, name)
	}
	if size.Row < 1 || size.Col < 1 {
		return nil, fmt.Errorf("%w: texture %q has size %dx%d, must be at least 1x1",
			ErrInvalidDefinition, name, size.Row, size.Col)
	}
	if cells := size.Row * size.Col; len(maps) > cells {
		return nil, fmt.Errorf("%w: texture %q has %d tile maps but only %d cells",
			ErrInvalidDefinition, name, len(maps), cells)
	}

	for i, m := range maps {
		if !g.Contains(m.Atlas) {
			return nil, fmt.Errorf("%w: texture %q tile map %d: atlas coordinate %s outside %dx%d atlas",
				ErrInvalidDefinition, name, i, m.Atlas, g.Rows, g.Cols)
		}
		if !m.Texture.Within(size) {
			return nil, fmt.Errorf("%w: texture %q tile map %d: texture coordinate %s outside %dx%d texture",
				ErrInvalidDefinition, name, i, m.Texture, size.Row, size.Col)
		}
	}

	return &Texture{
		name: name,
		size: size,
		maps: append([]TileMap(nil), maps...),
	}, nil
}

// Name returns the texture's registry key.
func (t *Texture) Name() string { return t.name }

// Size returns the texture grid size in tiles.
func (t *Texture) Size() Coord { return t.size }

// TileCount returns the number of tile maps.
func (t *Texture) TileCount() int { return len(t.maps) }

// TileMaps returns the tile maps in declaration order. The slice is a copy.
func (t *Texture) TileMaps() []TileMap {
	return append([]TileMap(nil), t.maps...)
}
