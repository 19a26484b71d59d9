// Command preview renders a scene into a desktop window, showing rows
// as they complete.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/raylab/go-phong-raytracer/pkg/canvas"
	"github.com/raylab/go-phong-raytracer/pkg/core"
	"github.com/raylab/go-phong-raytracer/pkg/renderer"
	"github.com/raylab/go-phong-raytracer/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "spheres", "Scene: 'spheres' or 'sphere'")
	width := flag.Int("width", 500, "Image width in pixels")
	height := flag.Int("height", 250, "Image height in pixels")
	workers := flag.Int("workers", 0, "Render workers (0 = all CPUs)")
	flag.Parse()

	s, err := scene.NewScene(*sceneName, *width, *height)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g := newGame(*width, *height)

	go func() {
		_, stats, err := s.Camera.RenderWithOptions(s.World, renderer.RenderOptions{
			Workers: *workers,
			OnRow:   g.setRow,
		})
		if err != nil {
			log.Printf("render failed: %v", err)
			return
		}
		log.Printf("rendered %d pixels in %v (%d workers)", stats.Pixels, stats.Duration, stats.Workers)
	}()

	ebiten.SetWindowTitle("Phong Raytracer: " + *sceneName)
	ebiten.SetWindowSize((*width)*2, (*height)*2)
	if err := ebiten.RunGame(g); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// game displays the render buffer, uploading it to the GPU only when
// a row has changed since the last frame.
type game struct {
	width, height int

	mu    sync.Mutex
	img   *image.RGBA
	dirty bool

	tex *ebiten.Image
}

func newGame(width, height int) *game {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0xff
	}
	return &game{
		width:  width,
		height: height,
		img:    img,
		tex:    ebiten.NewImage(width, height),
	}
}

// setRow copies a completed render row into the display buffer. Called
// from render workers' collector goroutine.
func (g *game) setRow(y int, row []core.Color) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for x, c := range row {
		i := g.img.PixOffset(x, y)
		g.img.Pix[i+0] = canvas.ChannelByte(c.R)
		g.img.Pix[i+1] = canvas.ChannelByte(c.G)
		g.img.Pix[i+2] = canvas.ChannelByte(c.B)
		g.img.Pix[i+3] = 0xff
	}
	g.dirty = true
}

func (g *game) Update() error {
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	if g.dirty {
		g.tex.WritePixels(g.img.Pix)
		g.dirty = false
	}
	g.mu.Unlock()
	screen.DrawImage(g.tex, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
