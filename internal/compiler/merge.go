package compiler

import (
	"fmt"
	"image"

	"github.com/ironsheep/terrain-compiler/internal/atlas"
	"github.com/ironsheep/terrain-compiler/internal/config"
	"github.com/ironsheep/terrain-compiler/internal/imaging"
)

// mergeBuffer is the atlas-shaped tile buffer merge fills, plus who filled
// each cell.
type mergeBuffer struct {
	tiles  imaging.TileGrid
	claims *atlas.ClaimSet
}

// Merge builds an atlas from the textures named in layers.
//
// For each texture the layer files are painted bottom to top onto a canvas
// of the texture's size, the canvas is cut into tiles, and every tile map
// copies one texture tile into its atlas cell. Two tile maps writing the
// same atlas cell fail with atlas.ErrTileWrittenTwice. Atlas cells nobody
// writes stay transparent.
func (c *Compiler) Merge(layers *atlas.Layers) (*image.NRGBA, error) {
	buf, err := c.mergeTiles(layers)
	if err != nil {
		return nil, err
	}
	c.debugf("merge: %d of %d atlas tiles written", buf.claims.Count(), c.geom.Cells())
	return imaging.Stitch(buf.tiles, c.geom.TileSize, c.geom.TileSize), nil
}

func (c *Compiler) mergeTiles(layers *atlas.Layers) (*mergeBuffer, error) {
	buf := &mergeBuffer{
		tiles:  imaging.NewTileGrid(c.geom.Rows, c.geom.Cols),
		claims: atlas.NewClaimSet(c.geom),
	}

	for _, name := range layers.Names() {
		tex, ok := c.registry.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", atlas.ErrUnknownTexture, name, layers.Source(name))
		}

		canvas, err := c.paintTexture(tex, layers.Paths(name))
		if err != nil {
			return nil, err
		}
		local := imaging.Cut(canvas, c.geom.TileSize, c.geom.TileSize)

		for _, m := range tex.TileMaps() {
			if owner, ok := buf.claims.Claim(m.Atlas, name); !ok {
				return nil, fmt.Errorf("%w: atlas tile %s written by texture %q was already written by texture %q",
					atlas.ErrTileWrittenTwice, m.Atlas, name, owner)
			}
			buf.tiles[m.Atlas.Row][m.Atlas.Col] = local[m.Texture.Row][m.Texture.Col]
		}

		c.debugf("merge: texture %q from %d layer(s), %d tile maps", name, len(layers.Paths(name)), tex.TileCount())
	}

	return buf, nil
}

// paintTexture composes the layer files of tex onto one canvas.
func (c *Compiler) paintTexture(tex *atlas.Texture, paths []config.Path) (*image.NRGBA, error) {
	ts := c.geom.TileSize
	layers := make([]image.Image, 0, len(paths))

	for _, p := range paths {
		img, err := c.cache.Load(p.String())
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", tex.Name(), err)
		}
		b := img.Bounds()
		if b.Dx()%ts != 0 || b.Dy()%ts != 0 {
			return nil, fmt.Errorf("%w: texture %q layer %s is %dx%d, not a multiple of the %dpx tile size",
				atlas.ErrDimensionMismatch, tex.Name(), p, b.Dx(), b.Dy(), ts)
		}
		layers = append(layers, img)
	}

	w, h := c.geom.PixelSize(tex.Size())
	return imaging.Compose(w, h, layers...), nil
}
