// Package lights holds the point light source and the Phong lighting
// model evaluated against it.
package lights

import "github.com/raylab/go-phong-raytracer/pkg/core"

// PointLight is a dimensionless light source. Position must be a point
// (w=1); that is a caller contract, not a checked invariant.
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light at the given position.
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	return PointLight{Position: position, Intensity: intensity}
}

// Equals reports whether two lights match within Epsilon.
func (l PointLight) Equals(other PointLight) bool {
	return l.Position.Equals(other.Position) && l.Intensity.Equals(other.Intensity)
}
