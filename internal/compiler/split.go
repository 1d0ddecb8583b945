package compiler

import (
	"fmt"
	"image"

	"github.com/ironsheep/terrain-compiler/internal/atlas"
	"github.com/ironsheep/terrain-compiler/internal/imaging"
)

// Split cuts atlasImage into one image per registry texture, returned in
// name order.
//
// The atlas must be exactly Geometry.Width x Geometry.Height pixels. Every
// atlas tile may be consumed by at most one tile map across all textures;
// a second use fails with atlas.ErrTileUsedTwice and no output at all is
// returned. Atlas tiles no tile map references are dropped.
func (c *Compiler) Split(atlasImage image.Image) ([]Output, error) {
	tiles, err := c.cutAtlas(atlasImage)
	if err != nil {
		return nil, err
	}

	claims := atlas.NewClaimSet(c.geom)
	outputs := make([]Output, 0, c.registry.Len())

	for _, name := range c.registry.Names() {
		tex, _ := c.registry.Lookup(name)
		w, h := c.geom.PixelSize(tex.Size())
		canvas := imaging.NewCanvas(w, h)

		for _, m := range tex.TileMaps() {
			if owner, ok := claims.Claim(m.Atlas, name); !ok {
				return nil, fmt.Errorf("%w: atlas tile %s used by texture %q was already used by texture %q",
					atlas.ErrTileUsedTwice, m.Atlas, name, owner)
			}
			imaging.Place(canvas, tiles[m.Atlas.Row][m.Atlas.Col], c.tileOrigin(m.Texture))
		}

		c.debugf("split: texture %q %dx%d tiles, %d tile maps", name, tex.Size().Row, tex.Size().Col, tex.TileCount())
		outputs = append(outputs, Output{Name: name, Image: canvas})
	}

	if c.debug {
		for _, coord := range claims.Unclaimed() {
			if !imaging.IsTransparent(tiles[coord.Row][coord.Col]) {
				c.debugf("split: atlas tile %s (%s) has pixels but no texture uses it",
					coord, atlas.TileName(c.geom, coord))
			}
		}
	}
	c.debugf("split: %d of %d atlas tiles used", claims.Count(), c.geom.Cells())

	return outputs, nil
}

// Tiles cuts atlasImage into one image per atlas cell, named with
// atlas.TileName, row by row.
func (c *Compiler) Tiles(atlasImage image.Image) ([]Output, error) {
	tiles, err := c.cutAtlas(atlasImage)
	if err != nil {
		return nil, err
	}

	outputs := make([]Output, 0, c.geom.Cells())
	for r := range tiles {
		for col, tile := range tiles[r] {
			outputs = append(outputs, Output{Name: atlas.TileName(c.geom, atlas.C(r, col)), Image: tile})
		}
	}
	return outputs, nil
}
