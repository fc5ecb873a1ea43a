package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/mdelano/go-scene-picker/pkg/core"
	"github.com/mdelano/go-scene-picker/pkg/picker"
	"github.com/mdelano/go-scene-picker/pkg/renderer"
	"github.com/mdelano/go-scene-picker/pkg/scene"
)

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'grid'")
	width := flag.Int("width", 800, "Viewport width in pixels")
	height := flag.Int("height", 450, "Viewport height in pixels")
	steps := flag.Int("steps", 24, "Number of simulated pointer positions")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		fmt.Println("Scene Picker")
		fmt.Println("Usage: scene-picker [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default - Three boxes over a ground slab")
		fmt.Println("  grid    - 4x4 grid of boxes")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/preview_<timestamp>.png")
		return
	}

	selectedScene, err := createScene(*sceneType)
	if err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}

	preview := renderer.NewPreviewRenderer(selectedScene, *width, *height)
	session := picker.NewSession(selectedScene.Objects, core.NewColor(1, 0.85, 0.2), log.Default())

	// Sweep a simulated pointer across the middle of the viewport,
	// logging hover transitions as the session state changes
	log.Printf("Sweeping pointer across %dx%d viewport in %d steps", *width, *height, *steps)
	previousHover := -1
	input := picker.InputState{}
	for i := 0; i < *steps; i++ {
		px := (float64(i) + 0.5) / float64(*steps) * float64(*width)
		py := 0.55 * float64(*height)
		input = picker.InputState{NDC: picker.NDCFromPixel(px, py, *width, *height)}

		result, err := session.Update(preview.Camera(), input)
		if err != nil {
			log.Printf("Picking failed: %v", err)
			os.Exit(1)
		}

		if result.Hovered != previousHover {
			if result.Hovered >= 0 {
				log.Printf("hover: %q (distance %.3f)",
					selectedScene.Objects[result.Hovered].Name, result.Hits[0].Distance)
			} else {
				log.Printf("hover: none")
			}
			previousHover = result.Hovered
		}
	}

	// Click at the final pointer position
	input.Click = true
	if _, err := session.Update(preview.Camera(), input); err != nil {
		log.Printf("Picking failed: %v", err)
		os.Exit(1)
	}

	// Save a preview with the final hover highlight applied
	outputDir := filepath.Join("output", selectedScene.Name)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		log.Printf("Error creating output directory: %v", err)
		os.Exit(1)
	}

	startTime := time.Now()
	img, err := preview.Render()
	if err != nil {
		log.Printf("Render error: %v", err)
		os.Exit(1)
	}
	log.Printf("Preview rendered in %v", time.Since(startTime))

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("preview_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		log.Printf("Error creating file: %v", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		log.Printf("Error saving PNG: %v", err)
		os.Exit(1)
	}

	log.Printf("Preview saved as %s", filename)
}

// createScene creates a scene based on the scene name
func createScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "grid":
		return scene.NewGridScene(4), nil
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}
