package renderer

import (
	"image"
	"image/color"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
)

// TileSize is the edge length of a dispatch tile. The dispatch contract is
// fixed 8x8 pixel tiles covering the full output image.
const TileSize = 8

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer traces the pixels of individual tiles. It is stateless apart
// from the shared read-only marcher and camera, so one instance serves all
// workers.
type TileRenderer struct {
	marcher *Marcher
	camera  *Camera
}

// NewTileRenderer creates a tile renderer for the given marcher and camera
func NewTileRenderer(marcher *Marcher, camera *Camera) *TileRenderer {
	return &TileRenderer{marcher: marcher, camera: camera}
}

// RenderBounds traces every pixel within bounds and writes hits into img.
// Missed pixels are left untouched, so whatever the image was pre-filled with
// (the background copy) shows through. Tiles have disjoint bounds, so
// concurrent calls on the same image are safe.
func (tr *TileRenderer) RenderBounds(bounds image.Rectangle, img *image.RGBA) RenderStats {
	stats := RenderStats{TotalPixels: bounds.Dx() * bounds.Dy()}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			ray := tr.camera.GetRay(i, j)
			shaded, hit, steps := tr.marcher.March(ray)

			stats.TotalSteps += steps
			stats.MaxSteps = max(stats.MaxSteps, steps)

			if hit {
				stats.HitPixels++
				img.SetRGBA(i, j, vec3ToColor(shaded))
			} else {
				stats.MissedPixels++
			}
		}
	}

	return stats
}

// vec3ToColor converts a linear color vector to RGBA with clamping, alpha
// fixed at 1 for hits
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	colorVec = colorVec.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}
