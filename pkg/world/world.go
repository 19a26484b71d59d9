// Package world composes primitives and a light into a scene that
// rays can be cast against.
package world

import (
	"github.com/raylab/go-phong-raytracer/pkg/core"
	"github.com/raylab/go-phong-raytracer/pkg/geometry"
	"github.com/raylab/go-phong-raytracer/pkg/lights"
)

// World is an ordered collection of shapes plus zero or one light. It
// holds the shapes for their whole render lifetime; rays and cameras
// are passed through, never owned.
type World struct {
	Light   *lights.PointLight
	Objects []geometry.Shape
}

// NewWorld creates an empty world with no light.
func NewWorld() *World {
	return &World{}
}

// DefaultWorld returns the canonical two-sphere world: a white light
// at (-10,10,-10), an outer green-tinted sphere and an inner sphere
// scaled to half size.
func DefaultWorld() *World {
	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White())

	s1 := geometry.NewSphere()
	s1.Material.Color = core.NewColor(0.8, 1.0, 0.6)
	s1.Material.Diffuse = 0.7
	s1.Material.Specular = 0.2

	s2 := geometry.NewSphere()
	s2.Transform = core.Scaling(0.5, 0.5, 0.5)

	return &World{
		Light:   &light,
		Objects: []geometry.Shape{s1, s2},
	}
}

// Intersect accumulates every object's intersections with the ray and
// returns them globally sorted ascending by t, so hit selection always
// sees the world-wide nearest candidate first.
func (w *World) Intersect(ray core.Ray) []geometry.Intersection {
	var xs []geometry.Intersection
	for _, object := range w.Objects {
		xs = append(xs, object.Intersect(ray)...)
	}
	geometry.SortIntersections(xs)
	return xs
}

// ShadeHit computes the color at a prepared hit, including the shadow
// test against the world. A world without a light shades to black.
func (w *World) ShadeHit(hit geometry.PreparedHit) core.Color {
	if w.Light == nil {
		return core.Black()
	}
	return lights.Lighting(
		hit.Object.GetMaterial(),
		*w.Light,
		hit.Point,
		hit.EyeVector,
		hit.NormalVector,
		w.IsShadowed(hit.OverPoint),
	)
}

// ColorAt casts a ray into the world and returns the shaded color of
// the nearest hit, or black when the ray misses everything.
func (w *World) ColorAt(ray core.Ray) core.Color {
	hit, found := geometry.FindHit(w.Intersect(ray))
	if !found {
		return core.Black()
	}
	return w.ShadeHit(geometry.Prepare(hit, ray))
}

// IsShadowed reports whether something blocks the segment between the
// point and the light. Only occluders strictly closer than the light
// cast a shadow.
func (w *World) IsShadowed(point core.Tuple) bool {
	if w.Light == nil {
		return false
	}
	shadowVector := w.Light.Position.Subtract(point)
	distance := shadowVector.Magnitude()
	direction := shadowVector.Normalize()

	shadowRay := core.NewRay(point, direction)
	hit, found := geometry.FindHit(w.Intersect(shadowRay))
	return found && hit.T < distance
}
