package compiler

import (
	"fmt"
	"image"

	"github.com/ironsheep/terrain-compiler/internal/atlas"
	"github.com/ironsheep/terrain-compiler/internal/imaging"
)

// TileMismatch is one atlas cell whose merged pixels differ from the
// reference atlas.
type TileMismatch struct {
	Atlas   atlas.Coord
	Texture string
	Result  *imaging.CompareResult
}

// VerifyReport summarises a Verify run.
type VerifyReport struct {
	// Checked is the number of atlas cells some tile map produced.
	Checked int

	// Mismatches lists differing cells in row-major order.
	Mismatches []TileMismatch
}

// OK reports whether every checked cell matched.
func (r *VerifyReport) OK() bool {
	return len(r.Mismatches) == 0
}

// Verify merges layers in memory and compares each produced atlas cell with
// the same cell of atlasImage. Cells no tile map produces are not checked.
// A clean report means merging layers reproduces atlasImage on every
// covered cell.
func (c *Compiler) Verify(atlasImage image.Image, layers *atlas.Layers) (*VerifyReport, error) {
	reference, err := c.cutAtlas(atlasImage)
	if err != nil {
		return nil, err
	}

	buf, err := c.mergeTiles(layers)
	if err != nil {
		return nil, err
	}

	report := &VerifyReport{}
	for r := 0; r < c.geom.Rows; r++ {
		for col := 0; col < c.geom.Cols; col++ {
			coord := atlas.C(r, col)
			owner, ok := buf.claims.Owner(coord)
			if !ok {
				continue
			}
			report.Checked++

			result, err := imaging.CompareTiles(reference[r][col], buf.tiles[r][col])
			if err != nil {
				return nil, fmt.Errorf("failed to compare atlas tile %s: %w", coord, err)
			}
			if !result.Identical {
				report.Mismatches = append(report.Mismatches, TileMismatch{Atlas: coord, Texture: owner, Result: result})
			}
		}
	}

	c.debugf("verify: %d tiles checked, %d differ", report.Checked, len(report.Mismatches))
	return report, nil
}
