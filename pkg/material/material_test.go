package material

import (
	"testing"

	"github.com/raylab/go-phong-raytracer/pkg/core"
)

func TestNewDefaultMaterial(t *testing.T) {
	m := NewDefaultMaterial()

	if !m.Color.Equals(core.NewColor(1, 1, 1)) {
		t.Errorf("Expected white default color, got %v", m.Color)
	}
	if !core.EqualFloat(m.Ambient, 0.1) {
		t.Errorf("Expected ambient 0.1, got %v", m.Ambient)
	}
	if !core.EqualFloat(m.Diffuse, 0.9) {
		t.Errorf("Expected diffuse 0.9, got %v", m.Diffuse)
	}
	if !core.EqualFloat(m.Specular, 0.9) {
		t.Errorf("Expected specular 0.9, got %v", m.Specular)
	}
	if !core.EqualFloat(m.Shininess, 200.0) {
		t.Errorf("Expected shininess 200, got %v", m.Shininess)
	}
}

func TestMaterial_Equals(t *testing.T) {
	tests := []struct {
		name     string
		modify   func(*Material)
		expected bool
	}{
		{"identical materials", func(m *Material) {}, true},
		{"different color", func(m *Material) { m.Color = core.NewColor(1, 0, 0) }, false},
		{"different ambient", func(m *Material) { m.Ambient = 0.5 }, false},
		{"different diffuse", func(m *Material) { m.Diffuse = 0.5 }, false},
		{"different specular", func(m *Material) { m.Specular = 0.5 }, false},
		{"different shininess", func(m *Material) { m.Shininess = 100 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewDefaultMaterial()
			b := NewDefaultMaterial()
			tt.modify(&b)

			if got := a.Equals(b); got != tt.expected {
				t.Errorf("Expected Equals %v, got %v", tt.expected, got)
			}
		})
	}
}
