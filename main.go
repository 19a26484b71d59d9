package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/raylab/go-phong-raytracer/pkg/canvas"
	"github.com/raylab/go-phong-raytracer/pkg/renderer"
	"github.com/raylab/go-phong-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "spheres", "Scene: 'spheres', 'sphere' or 'clock'")
	width := flag.Int("width", 500, "Image width in pixels")
	height := flag.Int("height", 250, "Image height in pixels")
	format := flag.String("format", "ppm", "Output format: 'ppm' or 'png'")
	workers := flag.Int("workers", 0, "Render workers (0 = all CPUs)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Phong Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  spheres - Three spheres in a room of flattened spheres")
		fmt.Println("  sphere  - A single lit sphere")
		fmt.Println("  clock   - Clock face transform demo (ignores -height)")
		fmt.Println()
		fmt.Println("Output is saved to output/<scene>/render_<timestamp>.<format>")
		return
	}

	img, err := renderScene(*sceneName, *width, *height, *workers)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	filename, err := saveImage(img, *sceneName, *format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", filename)
}

// renderScene builds the named scene and renders it to a canvas.
func renderScene(name string, width, height, workers int) (*canvas.Canvas, error) {
	if name == "clock" {
		return scene.ClockFace(width), nil
	}

	s, err := scene.NewScene(name, width, height)
	if err != nil {
		return nil, err
	}

	img, stats, err := s.Camera.RenderWithOptions(s.World, renderer.RenderOptions{
		Workers: workers,
		Logger:  log.New(os.Stdout, "", log.LstdFlags),
	})
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", name, err)
	}
	fmt.Printf("Rendered %d pixels in %v (%d workers)\n", stats.Pixels, stats.Duration, stats.Workers)
	return img, nil
}

// saveImage writes the canvas into output/<scene>/ with a timestamped
// name in the requested format.
func saveImage(img *canvas.Canvas, sceneName, format string) (string, error) {
	outputDir := filepath.Join("output", sceneName)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format))

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	switch format {
	case "ppm":
		err = img.WritePPM(file)
	case "png":
		err = png.Encode(file, img.ToImage())
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return "", fmt.Errorf("saving %s: %w", format, err)
	}
	return filename, nil
}
