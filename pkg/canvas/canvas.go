// Package canvas provides the color raster the renderer writes into
// and its encoders.
package canvas

import (
	"image"
	"image/color"
	"math"

	"github.com/raylab/go-phong-raytracer/pkg/core"
)

// Canvas is a dense row-major grid of colors, created black.
type Canvas struct {
	width  int
	height int
	pixels []core.Color
}

// NewCanvas creates a black canvas of the given dimensions.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// WritePixel sets the color at (x, y). Coordinates must be in bounds.
func (c *Canvas) WritePixel(x, y int, col core.Color) {
	c.pixels[y*c.width+x] = col
}

// PixelAt returns the color at (x, y). Coordinates must be in bounds.
func (c *Canvas) PixelAt(x, y int) core.Color {
	return c.pixels[y*c.width+x]
}

// WriteRow copies a full row of pixels into the canvas. The row length
// must equal the canvas width.
func (c *Canvas) WriteRow(y int, row []core.Color) {
	copy(c.pixels[y*c.width:(y+1)*c.width], row)
}

// ToImage converts the canvas to an RGBA image, scaling each channel
// by 255, rounding and clamping.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			p := c.PixelAt(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: ChannelByte(p.R),
				G: ChannelByte(p.G),
				B: ChannelByte(p.B),
				A: 0xff,
			})
		}
	}
	return img
}

// ChannelByte converts a color channel to an 8-bit value, scaling by
// 255, rounding and clamping to [0, 255].
func ChannelByte(v float64) uint8 {
	return uint8(clampInt(int(math.Round(v*255)), 0, 255))
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
