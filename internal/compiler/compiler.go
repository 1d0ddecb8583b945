// Package compiler implements the split and merge engines.
//
// Split cuts one atlas image into a texture image per registry entry.
// Merge paints every configured texture from its layer files, cuts it into
// tiles and places those tiles into a new atlas. Both directions enforce
// that an atlas cell is touched by at most one tile map; any violation
// aborts the whole operation before anything is written.
package compiler

import (
	"image"
	"log"

	"github.com/ironsheep/terrain-compiler/internal/atlas"
	"github.com/ironsheep/terrain-compiler/internal/imaging"
)

// Compiler runs split and merge operations against one texture registry.
// A Compiler is meant for one invocation and is not safe for concurrent use.
type Compiler struct {
	registry *atlas.Registry
	geom     atlas.Geometry
	cache    *imaging.ImageCache
	debug    bool
}

// Option configures a Compiler.
type Option func(*Compiler)

// WithDebug enables diagnostic logging.
func WithDebug(debug bool) Option {
	return func(c *Compiler) { c.debug = debug }
}

// WithCache shares an image cache for layer files.
func WithCache(cache *imaging.ImageCache) Option {
	return func(c *Compiler) { c.cache = cache }
}

// New creates a compiler for registry.
func New(registry *atlas.Registry, opts ...Option) *Compiler {
	c := &Compiler{
		registry: registry,
		geom:     registry.Geometry(),
		cache:    imaging.NewImageCache(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Registry returns the texture registry the compiler works against.
func (c *Compiler) Registry() *atlas.Registry { return c.registry }

// Output is one named image produced by split or tiles.
type Output struct {
	Name  string
	Image *image.NRGBA
}

func (c *Compiler) debugf(format string, args ...interface{}) {
	if c.debug {
		log.Printf(format, args...)
	}
}

// tileOrigin is the pixel offset of grid cell coord.
func (c *Compiler) tileOrigin(coord atlas.Coord) image.Point {
	return image.Pt(coord.Col*c.geom.TileSize, coord.Row*c.geom.TileSize)
}

// cutAtlas checks the atlas size and cuts it into atlas-shaped tiles.
func (c *Compiler) cutAtlas(img image.Image) (imaging.TileGrid, error) {
	b := img.Bounds()
	if err := c.geom.CheckAtlasSize(b.Dx(), b.Dy()); err != nil {
		return nil, err
	}
	return imaging.Cut(img, c.geom.TileSize, c.geom.TileSize), nil
}
