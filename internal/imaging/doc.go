// Package imaging provides the pixel-level operations behind split and merge.
//
// It cuts images into grids of equal-size tiles, stitches tile grids back
// into one image, paints layers on top of each other and compares tiles.
// It also loads and saves image files. The package knows nothing about
// textures or atlases; callers pass tile sizes and offsets explicitly.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner. Tile
// grids are indexed [row][col]: row r, column c covers the pixels
// (c*tileWidth, r*tileHeight) to ((c+1)*tileWidth, (r+1)*tileHeight),
// exclusive at the bottom-right.
//
// # Compositing
//
// Tiles are moved with a straight copy of their non-premultiplied bytes, so
// cutting and stitching never alter a pixel, translucent ones included.
// Only layer stacking blends: later layers are composited over earlier
// ones using the source alpha. Pixels nothing was drawn on stay fully
// transparent. Canvases and tiles are *image.NRGBA.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The remaining functions
// are stateless; canvases they return are owned by the caller.
package imaging
