// Interactive viewer: renders the built-in scenes progressively and shows
// tiles on screen as they complete. Left/right arrows cycle scenes, Escape
// quits.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/draw"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/rk31/go-sdf-raymarcher/pkg/renderer"
	"github.com/rk31/go-sdf-raymarcher/pkg/scene"
)

func main() {
	width := flag.Int("width", 640, "Viewport width in pixels")
	height := flag.Int("height", 360, "Viewport height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	flag.Parse()

	g := &viewerGame{
		width:   *width,
		height:  *height,
		workers: *workers,
		names:   scene.Names(),
		frame:   image.NewRGBA(image.Rect(0, 0, *width, *height)),
	}
	g.startRender()

	ebiten.SetWindowTitle("SDF Raymarcher")
	ebiten.SetWindowSize(*width, *height)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatalf("Viewer exited: %v", err)
	}
}

// viewerGame implements ebiten.Game. A background goroutine consumes tile
// updates from the renderer and composites them into frame; Draw snapshots
// frame under the mutex each tick.
type viewerGame struct {
	width, height int
	workers       int

	names   []string
	current int

	mu    sync.Mutex
	frame *image.RGBA

	cancel context.CancelFunc
	screen *ebiten.Image
}

// startRender cancels any in-flight render and kicks off the current scene
func (g *viewerGame) startRender() {
	if g.cancel != nil {
		g.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	g.cancel = cancel

	name := g.names[g.current]
	sc := scene.ByName(name)
	config := renderer.RenderConfig{NumWorkers: g.workers}
	rend := renderer.NewRenderer(sc, g.width, g.height, config, renderer.NewDefaultLogger())

	g.mu.Lock()
	g.frame = image.NewRGBA(image.Rect(0, 0, g.width, g.height))
	g.mu.Unlock()

	tileChan, frameChan, errChan := rend.RenderTiles(ctx)

	go func() {
		for update := range tileChan {
			g.mu.Lock()
			draw.Draw(g.frame, update.Bounds, update.Image, image.Point{}, draw.Src)
			g.mu.Unlock()
		}
		select {
		case result, ok := <-frameChan:
			if ok {
				g.mu.Lock()
				g.frame = result.Image
				g.mu.Unlock()
				log.Printf("Scene %q done: %d hits, %.1f avg steps",
					name, result.Stats.HitPixels, result.Stats.AverageSteps)
			}
		case err, ok := <-errChan:
			if ok && err != nil && ctx.Err() == nil {
				log.Printf("Render of %q failed: %v", name, err)
			}
		}
	}()
}

func (g *viewerGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return fmt.Errorf("quit")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.current = (g.current + 1) % len(g.names)
		g.startRender()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		g.current = (g.current + len(g.names) - 1) % len(g.names)
		g.startRender()
	}
	return nil
}

func (g *viewerGame) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(g.width, g.height)
	}

	g.mu.Lock()
	g.screen.WritePixels(g.frame.Pix)
	g.mu.Unlock()

	screen.DrawImage(g.screen, nil)
	ebiten.SetWindowTitle("SDF Raymarcher - " + g.names[g.current])
}

func (g *viewerGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
