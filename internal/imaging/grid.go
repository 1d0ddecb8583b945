package imaging

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// TileGrid is a 2-D array of tiles indexed [row][col]. A nil cell is empty.
type TileGrid [][]*image.NRGBA

// NewTileGrid returns an empty grid of rows x cols cells.
func NewTileGrid(rows, cols int) TileGrid {
	g := make(TileGrid, rows)
	for r := range g {
		g[r] = make([]*image.NRGBA, cols)
	}
	return g
}

// Rows returns the number of rows.
func (g TileGrid) Rows() int { return len(g) }

// Cols returns the number of columns of the widest row.
func (g TileGrid) Cols() int {
	cols := 0
	for _, row := range g {
		if len(row) > cols {
			cols = len(row)
		}
	}
	return cols
}

// NewCanvas returns a fully transparent image of the given size.
func NewCanvas(width, height int) *image.NRGBA {
	return imaging.New(width, height, color.Transparent)
}

// Cut splits img into a grid of tileWidth x tileHeight tiles.
//
// The grid has img.Height/tileHeight rows and img.Width/tileWidth columns
// (integer division); leftover pixels at the right or bottom edge are
// ignored. Each tile is an independent copy whose bounds start at (0,0).
func Cut(img image.Image, tileWidth, tileHeight int) TileGrid {
	b := img.Bounds()
	rows := b.Dy() / tileHeight
	cols := b.Dx() / tileWidth

	grid := NewTileGrid(rows, cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			rect := image.Rect(c*tileWidth, r*tileHeight, (c+1)*tileWidth, (r+1)*tileHeight).Add(b.Min)
			grid[r][c] = imaging.Crop(img, rect)
		}
	}
	return grid
}

// Stitch copies every non-empty cell of tiles to its grid offset on a new
// canvas of Cols()*tileWidth x Rows()*tileHeight pixels. Empty cells stay
// transparent. Tile pixels are copied unchanged.
func Stitch(tiles TileGrid, tileWidth, tileHeight int) *image.NRGBA {
	canvas := NewCanvas(tiles.Cols()*tileWidth, tiles.Rows()*tileHeight)
	for r, row := range tiles {
		for c, tile := range row {
			if tile == nil {
				continue
			}
			Place(canvas, tile, image.Pt(c*tileWidth, r*tileHeight))
		}
	}
	return canvas
}

// Compose stacks layers bottom to top on a transparent width x height
// canvas, each anchored at the canvas origin. The bottom layer is copied
// as is; later layers are alpha-blended over it with imaging.Overlay, so a
// fully transparent overlay pixel leaves the pixel below untouched. Parts
// of a layer beyond the canvas are clipped.
func Compose(width, height int, layers ...image.Image) *image.NRGBA {
	canvas := NewCanvas(width, height)
	for i, layer := range layers {
		if i == 0 {
			Place(canvas, layer, image.Point{})
			continue
		}
		canvas = imaging.Overlay(canvas, layer, image.Point{}, 1.0)
	}
	return canvas
}

// Place copies src onto dst with its top-left corner at at, replacing the
// covered pixels. Non-premultiplied values are copied byte for byte.
func Place(dst *image.NRGBA, src image.Image, at image.Point) {
	n := asNRGBA(src)
	b := n.Bounds()
	draw.Draw(dst, b.Sub(b.Min).Add(at), n, b.Min, draw.Src)
}

// asNRGBA returns img itself when it already is an *image.NRGBA, otherwise
// an NRGBA copy. draw only copies raw bytes between two NRGBA images.
func asNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}

// IsTransparent reports whether every pixel of img has zero alpha.
func IsTransparent(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0 {
				return false
			}
		}
	}
	return true
}
