package lights

import (
	"math"

	"github.com/raylab/go-phong-raytracer/pkg/core"
	"github.com/raylab/go-phong-raytracer/pkg/material"
)

// Lighting evaluates the Phong reflection model at a surface point.
// A shadowed point receives the ambient term only; the result may
// exceed 1.0 per channel and is clamped at output encoding.
func Lighting(m material.Material, light PointLight, point, eyeVector, normalVector core.Tuple, inShadow bool) core.Color {
	effectiveColor := m.Color.MultiplyColor(light.Intensity)
	lightVector := light.Position.Subtract(point).Normalize()

	ambient := effectiveColor.Multiply(m.Ambient)
	if inShadow {
		return ambient
	}

	// Cosine of the angle between the light vector and the normal.
	// Negative means the light is on the other side of the surface.
	lightDotNormal := lightVector.Dot(normalVector)

	diffuse := core.Black()
	specular := core.Black()
	if lightDotNormal >= 0 {
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)

		// Cosine of the angle between the reflection vector and the
		// eye. Non-positive means the reflection points away from the
		// eye.
		reflectionVector := lightVector.Negate().Reflect(normalVector)
		reflectionDotEye := reflectionVector.Dot(eyeVector)
		if reflectionDotEye > 0 {
			factor := math.Pow(reflectionDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
