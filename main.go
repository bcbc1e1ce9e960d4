package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/sco1/ray-tracer-challenge/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default', 'glass', 'csg', 'hexagon' or 'mesh'")
	objPath := flag.String("obj", "", "Path to a Wavefront OBJ file (required for the 'mesh' scene)")
	width := flag.Int("width", 400, "Output image width in pixels")
	height := flag.Int("height", 300, "Output image height in pixels")
	ppm := flag.Bool("ppm", false, "Write a plain-text PPM alongside the PNG")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Whitted Ray Tracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three shaded spheres over a matte floor")
		fmt.Println("  glass   - Hollow glass sphere and mirror over a checkered floor")
		fmt.Println("  csg     - Rounded die built from boolean shape operations")
		fmt.Println("  hexagon - Hexagonal ring built from nested shape groups")
		fmt.Println("  mesh    - Wavefront OBJ mesh (pass -obj <path>)")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	// Build the selected scene
	var (
		selected *scene.Scene
		err      error
	)
	switch *sceneType {
	case "default":
		selected = scene.NewDefaultScene(*width, *height)
	case "glass":
		selected = scene.NewGlassScene(*width, *height)
	case "csg":
		selected = scene.NewCSGScene(*width, *height)
	case "hexagon":
		selected = scene.NewHexagonScene(*width, *height)
	case "mesh":
		if *objPath == "" {
			fmt.Println("The mesh scene requires -obj <path>")
			os.Exit(1)
		}
		selected, err = scene.NewMeshScene(*width, *height, *objPath)
		if err != nil {
			fmt.Printf("Error building mesh scene: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Printf("Unknown scene type: %s. Using default scene.\n", *sceneType)
		selected = scene.NewDefaultScene(*width, *height)
		*sceneType = "default" // Normalize the scene type for directory creation
	}

	// Create output directory for this scene type
	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Rendering %s scene at %dx%d...\n", *sceneType, *width, *height)
	startTime := time.Now()
	canvas := selected.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	// Create timestamped filename
	timestamp := time.Now().Format("20060102_150405")
	pngPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	f, err := os.Create(pngPath)
	if err != nil {
		fmt.Printf("Error creating output file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := png.Encode(f, canvas.ToImage()); err != nil {
		fmt.Printf("Error encoding PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Image saved to %s\n", pngPath)

	if *ppm {
		ppmPath := filepath.Join(outputDir, fmt.Sprintf("render_%s.ppm", timestamp))
		if err := os.WriteFile(ppmPath, []byte(canvas.ToPPM()), 0644); err != nil {
			fmt.Printf("Error writing PPM: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Image saved to %s\n", ppmPath)
	}
}
