package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/raylab/go-phong-raytracer/pkg/canvas"
	"github.com/raylab/go-phong-raytracer/pkg/core"
	"github.com/raylab/go-phong-raytracer/pkg/world"
)

// Logger receives render progress messages.
type Logger interface {
	Printf(format string, args ...interface{})
}

// RenderOptions tunes a render pass.
type RenderOptions struct {
	// Workers is the number of parallel row workers. Zero or negative
	// means runtime.NumCPU().
	Workers int
	// Logger, when set, receives start/finish progress messages.
	Logger Logger
	// OnRow, when set, is called once per completed row with the row
	// index and its pixels. Rows arrive in completion order, not
	// top-down. The slice is owned by the caller after the call.
	OnRow func(y int, row []core.Color)
}

// RenderStats summarizes a completed render pass.
type RenderStats struct {
	Width    int
	Height   int
	Pixels   int
	Workers  int
	Duration time.Duration
}

// rowResult carries one finished row from a worker to the collector.
type rowResult struct {
	y      int
	pixels []core.Color
}

// Render computes the full image with default options.
func (c *Camera) Render(w *world.World) (*canvas.Canvas, error) {
	img, _, err := c.RenderWithOptions(w, RenderOptions{})
	return img, err
}

// RenderWithOptions computes every pixel of the image. Each pixel is a
// pure function of the world and its ray, so rows are distributed over
// a worker pool; the output is identical to the serial loop. It fails
// only when the camera transform is singular.
func (c *Camera) RenderWithOptions(w *world.World, opts RenderOptions) (*canvas.Canvas, RenderStats, error) {
	inverse, err := c.Transform.Inverse()
	if err != nil {
		return nil, RenderStats{}, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > c.VSize {
		workers = c.VSize
	}

	if opts.Logger != nil {
		opts.Logger.Printf("rendering %dx%d with %d workers", c.HSize, c.VSize, workers)
	}
	start := time.Now()

	rows := make(chan int, c.VSize)
	results := make(chan rowResult, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				pixels := make([]core.Color, c.HSize)
				for x := 0; x < c.HSize; x++ {
					ray := c.rayForPixel(inverse, x, y)
					pixels[x] = w.ColorAt(ray)
				}
				results <- rowResult{y: y, pixels: pixels}
			}
		}()
	}

	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)

	go func() {
		wg.Wait()
		close(results)
	}()

	img := canvas.NewCanvas(c.HSize, c.VSize)
	for result := range results {
		img.WriteRow(result.y, result.pixels)
		if opts.OnRow != nil {
			opts.OnRow(result.y, result.pixels)
		}
	}

	stats := RenderStats{
		Width:    c.HSize,
		Height:   c.VSize,
		Pixels:   c.HSize * c.VSize,
		Workers:  workers,
		Duration: time.Since(start),
	}
	if opts.Logger != nil {
		opts.Logger.Printf("rendered %d pixels in %v", stats.Pixels, stats.Duration)
	}
	return img, stats, nil
}
