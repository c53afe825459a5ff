package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Scene interface to avoid circular imports
type Scene interface {
	Shapes() sdf.Scene
	CameraConfig() CameraConfig
	Light() core.Vec3
	Background() image.Image // nil renders over black
}

// RenderConfig contains rendering configuration
type RenderConfig struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{NumWorkers: 0}
}

// Renderer drives a full-frame sphere-traced render: it pre-fills the output
// with the background, partitions the image into 8x8 tiles, and dispatches
// them to a worker pool.
type Renderer struct {
	scene         Scene
	width, height int
	config        RenderConfig
	logger        core.Logger
}

// NewRenderer creates a renderer for one scene at the given output size
func NewRenderer(scene Scene, width, height int, config RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Renderer{
		scene:  scene,
		width:  width,
		height: height,
		config: config,
		logger: logger,
	}
}

// Render traces the full frame and returns the output image with statistics.
// It blocks until every tile completes or ctx is cancelled.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	img, stats, err := r.renderFrame(ctx, nil)
	if err != nil {
		return nil, RenderStats{}, err
	}
	return img, stats, nil
}

// TileUpdate describes one completed tile for streaming consumers
type TileUpdate struct {
	Bounds     image.Rectangle
	Image      *image.RGBA // Pixels for just this tile
	TileNumber int         // Current tile number (1-based)
	TotalTiles int         // Total number of tiles in the frame
}

// FrameResult contains the completed frame
type FrameResult struct {
	Image *image.RGBA
	Stats RenderStats
}

// RenderTiles renders with channel-based communication: tile updates stream
// as tiles finish, then a single FrameResult is delivered. The caller should
// read from these channels in separate goroutines.
func (r *Renderer) RenderTiles(ctx context.Context) (<-chan TileUpdate, <-chan FrameResult, <-chan error) {
	tileChan := make(chan TileUpdate, 100)
	frameChan := make(chan FrameResult, 1)
	errChan := make(chan error, 1)

	go func() {
		defer close(tileChan)
		defer close(frameChan)
		defer close(errChan)

		onTile := func(update TileUpdate) {
			select {
			case tileChan <- update:
			case <-ctx.Done():
			}
		}

		img, stats, err := r.renderFrame(ctx, onTile)
		if err != nil {
			errChan <- err
			return
		}

		select {
		case frameChan <- FrameResult{Image: img, Stats: stats}:
		case <-ctx.Done():
		}
	}()

	return tileChan, frameChan, errChan
}

// renderFrame runs the tile dispatch loop shared by Render and RenderTiles
func (r *Renderer) renderFrame(ctx context.Context, onTile func(TileUpdate)) (*image.RGBA, RenderStats, error) {
	img := r.newBackgroundImage()

	camera := NewCamera(r.scene.CameraConfig(), r.width, r.height)
	marcher := NewMarcher(r.scene.Shapes(), r.scene.Light())
	tiles := NewTileGrid(r.width, r.height, TileSize)
	pool := NewWorkerPool(NewTileRenderer(marcher, camera), r.width, r.height, r.config.NumWorkers)

	r.logger.Printf("Rendering %dx%d: %d tiles on %d workers...\n",
		r.width, r.height, len(tiles), pool.GetNumWorkers())
	startTime := time.Now()

	pool.Start()
	defer pool.Stop()

	for taskID, tile := range tiles {
		pool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Image: img})
	}

	var stats RenderStats
	for i := 0; i < len(tiles); i++ {
		select {
		case <-ctx.Done():
			return nil, RenderStats{}, ctx.Err()
		case result, ok := <-pool.resultQueue:
			if !ok {
				return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
			}
			stats.merge(result.Stats)

			if onTile != nil {
				onTile(TileUpdate{
					Bounds:     result.Bounds,
					Image:      extractTile(img, result.Bounds),
					TileNumber: i + 1,
					TotalTiles: len(tiles),
				})
			}
		}
	}

	stats.finalize()
	r.logger.Printf("Render completed in %v (%d hits, %d misses, %.1f avg steps)\n",
		time.Since(startTime), stats.HitPixels, stats.MissedPixels, stats.AverageSteps)

	return img, stats, nil
}

// newBackgroundImage allocates the output image pre-filled with the scene
// background, so pixels whose rays miss keep background content. A background
// of a different size is rescaled to the output dimensions.
func (r *Renderer) newBackgroundImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))

	bg := r.scene.Background()
	if bg == nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
		return img
	}

	if bg.Bounds().Dx() == r.width && bg.Bounds().Dy() == r.height {
		draw.Draw(img, img.Bounds(), bg, bg.Bounds().Min, draw.Src)
		return img
	}

	xdraw.ApproxBiLinear.Scale(img, img.Bounds(), bg, bg.Bounds(), xdraw.Src, nil)
	return img
}

// extractTile copies one tile's pixels into a standalone image
func extractTile(img *image.RGBA, bounds image.Rectangle) *image.RGBA {
	tile := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(tile, tile.Bounds(), img, bounds.Min, draw.Src)
	return tile
}
