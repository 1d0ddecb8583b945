package atlas

import "errors"

// Error kinds. Every error returned by this package and by the split/merge
// engines wraps exactly one of these.
var (
	// ErrMalformedConfig covers missing keys, wrong value types and
	// unresolvable inherit targets.
	ErrMalformedConfig = errors.New("malformed configuration")

	// ErrInvalidDefinition is returned when a texture definition breaks one
	// of its invariants (size, tile-map count, coordinate bounds).
	ErrInvalidDefinition = errors.New("invalid texture definition")

	// ErrUnknownTexture is returned when a layer configuration names a
	// texture the registry does not define.
	ErrUnknownTexture = errors.New("unknown texture")

	// ErrDimensionMismatch is returned when an image does not have the
	// pixel size its role requires.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrTileUsedTwice is returned by split when an atlas tile is claimed by
	// more than one tile map.
	ErrTileUsedTwice = errors.New("tile used twice")

	// ErrTileWrittenTwice is returned by merge when two tile maps write the
	// same atlas cell.
	ErrTileWrittenTwice = errors.New("tile written twice")

	// ErrInheritanceCycle is returned when a layer configuration inherits,
	// directly or indirectly, from itself.
	ErrInheritanceCycle = errors.New("inheritance cycle")
)
