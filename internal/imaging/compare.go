package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Size is a width and height in pixels.
type Size struct {
	Width  int
	Height int
}

// CompareResult describes how two tiles differ.
type CompareResult struct {
	// Identical is true when both tiles have the same size and every pixel
	// has the same non-premultiplied RGBA value. Fully transparent pixels
	// always match.
	Identical bool

	SameSize bool
	Size1    Size
	Size2    Size

	// PixelsDifferent counts differing pixels in the overlapping area.
	PixelsDifferent int
	TotalPixels     int

	// SimilarityScore is the fraction of equal pixels, 0.0 to 1.0.
	SimilarityScore float64

	// AverageColorDiff is the mean CIE L*a*b* distance over the differing
	// pixels. A pixel that is transparent in only one tile counts as 1.0.
	AverageColorDiff float64
}

// CompareTiles compares two images pixel by pixel, aligned at their
// top-left corners. When sizes differ only the overlapping area is
// compared and the result is never Identical.
func CompareTiles(a, b image.Image) (*CompareResult, error) {
	if a == nil || b == nil {
		return nil, fmt.Errorf("cannot compare nil image")
	}

	ab, bb := a.Bounds(), b.Bounds()
	w := min(ab.Dx(), bb.Dx())
	h := min(ab.Dy(), bb.Dy())

	sameSize := ab.Dx() == bb.Dx() && ab.Dy() == bb.Dy()
	totalPixels := w * h
	pixelsDifferent := 0
	var totalColorDiff float64

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ca := a.At(ab.Min.X+x, ab.Min.Y+y)
			cb := b.At(bb.Min.X+x, bb.Min.Y+y)
			if samePixel(ca, cb) {
				continue
			}
			pixelsDifferent++
			totalColorDiff += colorDistance(ca, cb)
		}
	}

	result := &CompareResult{
		Identical:       sameSize && pixelsDifferent == 0,
		SameSize:        sameSize,
		Size1:           Size{Width: ab.Dx(), Height: ab.Dy()},
		Size2:           Size{Width: bb.Dx(), Height: bb.Dy()},
		PixelsDifferent: pixelsDifferent,
		TotalPixels:     totalPixels,
		SimilarityScore: 1.0,
	}
	if totalPixels > 0 {
		result.SimilarityScore = math.Round((1.0-float64(pixelsDifferent)/float64(totalPixels))*1000) / 1000
	}
	if pixelsDifferent > 0 {
		result.AverageColorDiff = math.Round(totalColorDiff/float64(pixelsDifferent)*1000) / 1000
	}

	return result, nil
}

// samePixel compares non-premultiplied values. Fully transparent pixels are
// equal whatever their colour channels hold.
func samePixel(a, b color.Color) bool {
	na := color.NRGBAModel.Convert(a).(color.NRGBA)
	nb := color.NRGBAModel.Convert(b).(color.NRGBA)
	if na.A == 0 && nb.A == 0 {
		return true
	}
	return na == nb
}

// colorDistance returns the CIE76 distance of two colours in L*a*b* space.
// Fully transparent pixels carry no colour, so a transparent/opaque pair is
// treated as maximally different.
func colorDistance(a, b color.Color) float64 {
	ca, okA := colorful.MakeColor(a)
	cb, okB := colorful.MakeColor(b)
	switch {
	case !okA && !okB:
		return 0
	case okA != okB:
		return 1
	}
	return ca.DistanceLab(cb)
}
