// Package atlas describes how a terrain atlas maps onto named textures.
//
// An atlas is one image divided into a fixed grid of square tiles
// (Geometry). Every texture has its own smaller grid, and a list of
// TileMaps saying which atlas cell holds the pixels of which texture cell.
// The same mapping drives both directions of the tool: splitting an atlas
// into textures and merging textures back into an atlas.
//
// # Coordinate Spaces
//
// Two coordinate spaces exist and are never mixed:
//   - atlas space: [0, Geometry.Rows) x [0, Geometry.Cols)
//   - texture space: [0, Texture.Size().Row) x [0, Texture.Size().Col)
//
// Coordinates are (row, column), both 0-based, with (0,0) at the top-left
// tile.
//
// # Configuration
//
// The texture registry and the merge layer configuration are both read from
// YAML. The registry is built once and is read-only afterwards. Layer
// configurations may inherit from a parent file; entries in the child
// replace same-named entries from the parent.
//
// # Error Handling
//
// All failures are reported through the sentinel errors in errors.go,
// wrapped with the texture, file or coordinate involved. Use errors.Is to
// classify them.
package atlas
