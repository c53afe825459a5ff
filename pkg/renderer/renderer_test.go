package renderer

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/rk31/go-sdf-raymarcher/pkg/core"
	"github.com/rk31/go-sdf-raymarcher/pkg/sdf"
)

// testScene implements the Scene interface for renderer tests
type testScene struct {
	shapes sdf.Scene
	camera CameraConfig
	light  core.Vec3
	bg     image.Image
}

func (s *testScene) Shapes() sdf.Scene          { return s.shapes }
func (s *testScene) CameraConfig() CameraConfig { return s.camera }
func (s *testScene) Light() core.Vec3           { return s.light }
func (s *testScene) Background() image.Image    { return s.bg }

// silentLogger discards renderer output during tests
type silentLogger struct{}

func (silentLogger) Printf(format string, args ...interface{}) {}

func sphereTestScene(light core.Vec3) *testScene {
	return &testScene{
		shapes: unitSphereScene(core.NewVec3(1, 1, 1)),
		camera: CameraConfig{
			Center: core.NewVec3(0, 0, -5),
			LookAt: core.NewVec3(0, 0, 0),
			Up:     core.NewVec3(0, 1, 0),
			VFov:   45,
		},
		light: light,
	}
}

func TestNewTileGrid_CoversImage(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
	}{
		{"Exact multiple", 64, 32},
		{"Ragged edges", 70, 37},
		{"Smaller than one tile", 5, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := NewTileGrid(tt.width, tt.height, TileSize)

			area := 0
			full := image.Rect(0, 0, tt.width, tt.height)
			for _, tile := range tiles {
				if !tile.Bounds.In(full) {
					t.Errorf("Tile %v extends outside the image", tile.Bounds)
				}
				area += tile.Bounds.Dx() * tile.Bounds.Dy()
			}
			if area != tt.width*tt.height {
				t.Errorf("Tiles cover %d pixels, image has %d", area, tt.width*tt.height)
			}
		})
	}
}

func TestRender_SphereSilhouette(t *testing.T) {
	// Single unit sphere at the origin, camera at (0,0,-5) looking at +Z,
	// light travels straight down, black background
	scn := sphereTestScene(core.NewVec3(0, -1, 0))
	r := NewRenderer(scn, 80, 80, DefaultRenderConfig(), silentLogger{})

	img, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if stats.HitPixels == 0 {
		t.Fatal("Sphere silhouette should produce hit pixels")
	}
	if stats.MissedPixels == 0 {
		t.Fatal("Rays outside the silhouette should miss")
	}
	if stats.TotalPixels != 80*80 {
		t.Errorf("Expected %d pixels traced, got %d", 80*80, stats.TotalPixels)
	}

	// The corner ray never intersects the sphere and keeps the black background
	if got := img.RGBAAt(0, 0); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("Corner pixel should keep the black background, got %v", got)
	}

	// With the light straight down, the camera-facing surface is at grazing
	// angle: the center pixel is shaded strictly darker than the unlit color
	center := img.RGBAAt(40, 40)
	if center.R >= 255 {
		t.Errorf("Center pixel should be darker than the unlit surface color, got %v", center)
	}
}

func TestRender_FrontLitSphereCenter(t *testing.T) {
	// Light travels toward +Z, straight at the camera-facing surface:
	// the silhouette center renders at nearly full surface color
	scn := sphereTestScene(core.NewVec3(0, 0, 1))
	r := NewRenderer(scn, 80, 80, DefaultRenderConfig(), silentLogger{})

	img, _, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	center := img.RGBAAt(40, 40)
	if center.R < 250 || center.G < 250 || center.B < 250 {
		t.Errorf("Front-lit center pixel should be near white, got %v", center)
	}
	if center.A != 255 {
		t.Errorf("Hit pixels have alpha 255, got %d", center.A)
	}
}

func TestRender_MissKeepsBackgroundImage(t *testing.T) {
	// Empty scene over a solid blue background: every pixel keeps the
	// pre-filled background copy
	bg := image.NewRGBA(image.Rect(0, 0, 32, 32))
	blue := color.RGBA{0, 0, 200, 255}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			bg.SetRGBA(x, y, blue)
		}
	}

	scn := sphereTestScene(core.NewVec3(0, -1, 0))
	scn.shapes = sdf.Scene{}
	scn.bg = bg

	r := NewRenderer(scn, 32, 32, DefaultRenderConfig(), silentLogger{})
	img, stats, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if stats.HitPixels != 0 {
		t.Errorf("Empty scene should hit nothing, got %d hits", stats.HitPixels)
	}
	for _, p := range [][2]int{{0, 0}, {16, 16}, {31, 31}} {
		if got := img.RGBAAt(p[0], p[1]); got != blue {
			t.Errorf("Pixel %v should keep the background, got %v", p, got)
		}
	}
}

func TestRender_BackgroundRescaled(t *testing.T) {
	// A background of a different size is scaled to the output dimensions
	bg := image.NewRGBA(image.Rect(0, 0, 8, 8))
	green := color.RGBA{0, 180, 0, 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			bg.SetRGBA(x, y, green)
		}
	}

	scn := sphereTestScene(core.NewVec3(0, -1, 0))
	scn.shapes = sdf.Scene{}
	scn.bg = bg

	r := NewRenderer(scn, 24, 24, DefaultRenderConfig(), silentLogger{})
	img, _, err := r.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := img.RGBAAt(12, 12); got != green {
		t.Errorf("Scaled uniform background should stay uniform, got %v", got)
	}
}

func TestRender_Deterministic(t *testing.T) {
	scn := sphereTestScene(core.NewVec3(0.3, -1, 0.2).Normalize())

	r1 := NewRenderer(scn, 40, 40, DefaultRenderConfig(), silentLogger{})
	img1, _, err := r1.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	r2 := NewRenderer(scn, 40, 40, RenderConfig{NumWorkers: 3}, silentLogger{})
	img2, _, err := r2.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	// Worker count must not change the output: pixels are independent
	for i := range img1.Pix {
		if img1.Pix[i] != img2.Pix[i] {
			t.Fatalf("Images differ at byte %d: %d vs %d", i, img1.Pix[i], img2.Pix[i])
		}
	}
}

func TestRenderTiles_StreamsEveryTile(t *testing.T) {
	scn := sphereTestScene(core.NewVec3(0, -1, 0))
	r := NewRenderer(scn, 40, 24, DefaultRenderConfig(), silentLogger{})

	tileChan, frameChan, errChan := r.RenderTiles(context.Background())

	tileCount := 0
	for update := range tileChan {
		tileCount++
		if update.Image.Bounds().Dx() != update.Bounds.Dx() ||
			update.Image.Bounds().Dy() != update.Bounds.Dy() {
			t.Errorf("Tile image size %v does not match bounds %v", update.Image.Bounds(), update.Bounds)
		}
	}

	expectedTiles := len(NewTileGrid(40, 24, TileSize))
	if tileCount != expectedTiles {
		t.Errorf("Expected %d tile updates, got %d", expectedTiles, tileCount)
	}

	frame, ok := <-frameChan
	if !ok {
		t.Fatal("Expected a frame result")
	}
	if frame.Image.Bounds().Dx() != 40 || frame.Image.Bounds().Dy() != 24 {
		t.Errorf("Unexpected frame size %v", frame.Image.Bounds())
	}
	if err := <-errChan; err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRenderTiles_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel before rendering starts

	scn := sphereTestScene(core.NewVec3(0, -1, 0))
	r := NewRenderer(scn, 160, 160, DefaultRenderConfig(), silentLogger{})

	tileChan, frameChan, errChan := r.RenderTiles(ctx)

	for range tileChan {
	}
	if _, ok := <-frameChan; ok {
		t.Error("Cancelled render should not deliver a frame")
	}
	if err := <-errChan; err == nil {
		t.Error("Cancelled render should report an error")
	}
}
