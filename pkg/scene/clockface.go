package scene

import (
	"math"

	"github.com/raylab/go-phong-raytracer/pkg/canvas"
	"github.com/raylab/go-phong-raytracer/pkg/core"
)

// ClockFace plots the twelve hour marks of a clock onto a square
// canvas by composing rotation, scaling and translation transforms.
// It exercises the transform pipeline without the ray tracer.
func ClockFace(size int) *canvas.Canvas {
	img := canvas.NewCanvas(size, size)
	white := core.White()

	// Start at 12 o'clock and rotate 1/12 of a circle per hour.
	hourPoint := core.NewPoint(0, 1, 0)
	hourRotation := core.RotationZ(-math.Pi / 6)

	radius := 3.0 * float64(size) / 8.0
	// The canvas y-axis points down, so flip the face before scaling
	// it up and moving it to the center.
	transform := core.Translation(float64(size)/2, float64(size)/2, 0).
		Multiply(core.Scaling(radius, radius, 0)).
		Multiply(core.RotationX(math.Pi))

	for hour := 0; hour < 12; hour++ {
		plotted := transform.MultiplyTuple(hourPoint)
		x := int(math.Round(plotted.X))
		y := int(math.Round(plotted.Y))
		if x >= 0 && x < size && y >= 0 && y < size {
			img.WritePixel(x, y, white)
		}
		hourPoint = hourRotation.MultiplyTuple(hourPoint)
	}
	return img
}
