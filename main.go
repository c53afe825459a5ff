package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rk31/go-sdf-raymarcher/pkg/loaders"
	"github.com/rk31/go-sdf-raymarcher/pkg/mesh"
	"github.com/rk31/go-sdf-raymarcher/pkg/renderer"
	"github.com/rk31/go-sdf-raymarcher/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Built-in scene name or path to a .json scene file")
	width := flag.Int("width", 640, "Output width in pixels")
	height := flag.Int("height", 360, "Output height in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	background := flag.String("bg", "", "Background image file shown where rays miss")
	stlPath := flag.String("stl", "", "Also export the scene surface as an STL mesh to this path")
	stlCells := flag.Int("stl-cells", 0, "Marching cubes resolution for -stl (0 = default)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("SDF Raymarcher")
		fmt.Println("Usage: raymarcher [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  " + strings.Join(scene.Names(), ", "))
		fmt.Println("  or any .json scene file path")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png")
		return
	}

	fmt.Println("Starting SDF Raymarcher...")

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		fmt.Printf("Error loading scene: %v\n", err)
		os.Exit(1)
	}

	if *background != "" {
		bg, err := loaders.LoadImage(*background)
		if err != nil {
			fmt.Printf("Error loading background: %v\n", err)
			os.Exit(1)
		}
		selectedScene.BackgroundImg = bg
	}

	// Create output directory for this scene
	outputDir := createOutputDir(*sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	config := renderer.RenderConfig{NumWorkers: *workers}
	rend := renderer.NewRenderer(selectedScene, *width, *height, config, renderer.NewDefaultLogger())

	startTime := time.Now()
	img, stats, err := rend.Render(context.Background())
	if err != nil {
		fmt.Printf("Error rendering: %v\n", err)
		os.Exit(1)
	}
	renderTime := time.Since(startTime)

	fmt.Printf("Render completed in %v\n", renderTime)
	fmt.Printf("Hits: %d, misses: %d, steps per pixel: %.1f (max %d)\n",
		stats.HitPixels, stats.MissedPixels, stats.AverageSteps, stats.MaxSteps)

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)

	if *stlPath != "" {
		if err := mesh.ExportSTL(selectedScene.Shapes(), *stlPath, *stlCells); err != nil {
			fmt.Printf("Error exporting STL: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Mesh saved as %s\n", *stlPath)
	}
}

// createScene resolves a built-in scene name or a .json scene file path
func createScene(sceneType string) (*scene.Scene, error) {
	if strings.HasSuffix(sceneType, ".json") {
		return loaders.LoadScene(sceneType)
	}
	if s := scene.ByName(sceneType); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("unknown scene %q (available: %s)", sceneType, strings.Join(scene.Names(), ", "))
}

// createOutputDir derives the per-scene output directory from the scene name
// or file path
func createOutputDir(sceneType string) string {
	name := sceneType
	if strings.HasSuffix(name, ".json") {
		name = strings.TrimSuffix(filepath.Base(name), ".json")
	}
	if name == "" {
		name = "scene"
	}
	return filepath.Join("output", name)
}
