package atlas

import "fmt"

// Coord is a (row, column) grid position. It is used for both atlas and
// texture-local positions; which space it belongs to is decided by where it
// is stored.
type Coord struct {
	Row int
	Col int
}

// C is shorthand for Coord{Row: row, Col: col}.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String formats the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Within reports whether c lies inside a grid of size.Row rows and
// size.Col columns.
func (c Coord) Within(size Coord) bool {
	return c.Row >= 0 && c.Row < size.Row && c.Col >= 0 && c.Col < size.Col
}

// Geometry is the fixed layout of an atlas: a Rows x Cols grid of square
// tiles, each TileSize pixels wide and high.
type Geometry struct {
	Rows     int
	Cols     int
	TileSize int
}

// DefaultGeometry is the classic terrain.png layout: 16x16 tiles of 64px.
var DefaultGeometry = Geometry{Rows: 16, Cols: 16, TileSize: 64}

// Validate checks that every dimension is positive.
func (g Geometry) Validate() error {
	if g.Rows <= 0 || g.Cols <= 0 || g.TileSize <= 0 {
		return fmt.Errorf("%w: atlas geometry %dx%d tiles of %dpx", ErrInvalidDefinition, g.Rows, g.Cols, g.TileSize)
	}
	return nil
}

// Size returns the grid size as a Coord.
func (g Geometry) Size() Coord {
	return Coord{Row: g.Rows, Col: g.Cols}
}

// Cells returns the number of tiles in the atlas.
func (g Geometry) Cells() int {
	return g.Rows * g.Cols
}

// Contains reports whether c is a valid atlas coordinate.
func (g Geometry) Contains(c Coord) bool {
	return c.Within(g.Size())
}

// Width is the atlas width in pixels.
func (g Geometry) Width() int {
	return g.Cols * g.TileSize
}

// Height is the atlas height in pixels.
func (g Geometry) Height() int {
	return g.Rows * g.TileSize
}

// PixelSize converts a grid size in tiles to width and height in pixels.
func (g Geometry) PixelSize(size Coord) (width, height int) {
	return size.Col * g.TileSize, size.Row * g.TileSize
}

// CheckAtlasSize verifies that an image of width x height pixels is exactly
// the size of the atlas.
func (g Geometry) CheckAtlasSize(width, height int) error {
	if width != g.Width() || height != g.Height() {
		return fmt.Errorf("%w: atlas image is %dx%d, should be %dx%d",
			ErrDimensionMismatch, width, height, g.Width(), g.Height())
	}
	return nil
}
