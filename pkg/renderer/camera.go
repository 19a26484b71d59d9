// Package renderer maps pixels to rays and drives the render loop.
package renderer

import (
	"math"

	"github.com/raylab/go-phong-raytracer/pkg/core"
)

// Camera maps pixel coordinates onto rays through a canvas one unit in
// front of the eye. Transform is the world-to-camera view transform;
// the derived half extents and pixel size are fixed at construction.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	Transform   core.Matrix4

	halfWidth  float64
	halfHeight float64
	pixelSize  float64
}

// NewCamera creates a camera with the identity transform. The field of
// view spans the larger image dimension.
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := math.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	var halfWidth, halfHeight float64
	if aspect >= 1 {
		halfWidth = halfView
		halfHeight = halfView / aspect
	} else {
		halfWidth = halfView * aspect
		halfHeight = halfView
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		Transform:   core.Identity(),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelSize:   (halfWidth * 2) / float64(hsize),
	}
}

// PixelSize returns the world-space size of one pixel on the canvas.
func (c *Camera) PixelSize() float64 {
	return c.pixelSize
}

// RayForPixel returns the ray through the center of pixel (px, py).
// It fails when the camera transform is singular.
func (c *Camera) RayForPixel(px, py int) (core.Ray, error) {
	inverse, err := c.Transform.Inverse()
	if err != nil {
		return core.Ray{}, err
	}
	return c.rayForPixel(inverse, px, py), nil
}

// rayForPixel builds the pixel ray from an already-inverted camera
// transform. The untransformed canvas sits at z=-1 with the camera
// looking down -z, so pixel offsets are subtracted from the half
// extents.
func (c *Camera) rayForPixel(inverse core.Matrix4, px, py int) core.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	pixel := inverse.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := inverse.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}
