// Package geometry holds the ray-intersectable primitives and the
// intersection records the shading pipeline consumes.
package geometry

import (
	"github.com/raylab/go-phong-raytracer/pkg/core"
	"github.com/raylab/go-phong-raytracer/pkg/material"
)

// Shape is a primitive that rays can intersect. Implementations carry
// an object-to-world transform and a material; intersection math runs
// in object space.
type Shape interface {
	// Intersect returns the intersections of the world-space ray with
	// the shape, ordered ascending by t. A shape with a singular
	// transform intersects nothing.
	Intersect(ray core.Ray) []Intersection

	// NormalAt returns the normalized world-space surface normal at a
	// world-space point on the shape.
	NormalAt(worldPoint core.Tuple) core.Tuple

	// GetMaterial returns the shape's material.
	GetMaterial() material.Material
}
