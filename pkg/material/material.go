// Package material provides the Phong reflection material.
package material

import (
	"github.com/raylab/go-phong-raytracer/pkg/core"
)

// Material holds the Phong reflection coefficients of a surface.
type Material struct {
	Color     core.Color
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
}

// NewDefaultMaterial creates a white material with the standard Phong coefficients.
func NewDefaultMaterial() Material {
	return Material{
		Color:     core.NewColor(1, 1, 1),
		Ambient:   0.1,
		Diffuse:   0.9,
		Specular:  0.9,
		Shininess: 200.0,
	}
}

// Equals checks material equality within the default tolerance.
func (m Material) Equals(other Material) bool {
	return m.Color.Equals(other.Color) &&
		core.EqualFloat(m.Ambient, other.Ambient) &&
		core.EqualFloat(m.Diffuse, other.Diffuse) &&
		core.EqualFloat(m.Specular, other.Specular) &&
		core.EqualFloat(m.Shininess, other.Shininess)
}
