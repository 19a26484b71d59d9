package lights

import (
	"math"
	"testing"

	"github.com/raylab/go-phong-raytracer/pkg/core"
	"github.com/raylab/go-phong-raytracer/pkg/material"
)

func TestPointLight_PositionAndIntensity(t *testing.T) {
	position := core.NewPoint(0, 0, 0)
	intensity := core.White()
	light := NewPointLight(position, intensity)

	if !light.Position.Equals(position) {
		t.Errorf("Expected position %v, got %v", position, light.Position)
	}
	if !light.Intensity.Equals(intensity) {
		t.Errorf("Expected intensity %v, got %v", intensity, light.Intensity)
	}
}

func TestLighting(t *testing.T) {
	sqrt2Over2 := math.Sqrt2 / 2
	m := material.NewDefaultMaterial()
	position := core.NewPoint(0, 0, 0)

	tests := []struct {
		name     string
		eye      core.Tuple
		normal   core.Tuple
		light    PointLight
		inShadow bool
		expected core.Color
	}{
		{
			// ambient + diffuse + specular: 0.1 + 0.9 + 0.9
			name:     "eye between light and surface",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White()),
			expected: core.NewColor(1.9, 1.9, 1.9),
		},
		{
			// specular drops out: 0.1 + 0.9 + 0
			name:     "eye offset 45 degrees",
			eye:      core.NewVector(0, sqrt2Over2, -sqrt2Over2),
			normal:   core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White()),
			expected: core.White(),
		},
		{
			// diffuse attenuated by cos(45°): 0.1 + 0.9*√2/2 + 0
			name:     "light offset 45 degrees",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 10, -10), core.White()),
			expected: core.NewColor(0.7364, 0.7364, 0.7364),
		},
		{
			// full specular returns: 0.1 + 0.9*√2/2 + 0.9
			name:     "eye in the path of the reflection",
			eye:      core.NewVector(0, -sqrt2Over2, -sqrt2Over2),
			normal:   core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 10, -10), core.White()),
			expected: core.NewColor(1.63639, 1.63639, 1.63639),
		},
		{
			// ambient only
			name:     "light behind the surface",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, 10), core.White()),
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
		{
			// shadow occludes diffuse and specular entirely
			name:     "surface in shadow",
			eye:      core.NewVector(0, 0, -1),
			normal:   core.NewVector(0, 0, -1),
			light:    NewPointLight(core.NewPoint(0, 0, -10), core.White()),
			inShadow: true,
			expected: core.NewColor(0.1, 0.1, 0.1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lighting(m, tt.light, position, tt.eye, tt.normal, tt.inShadow)
			if !got.Equals(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}
