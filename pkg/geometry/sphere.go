package geometry

import (
	"math"

	"github.com/raylab/go-phong-raytracer/pkg/core"
	"github.com/raylab/go-phong-raytracer/pkg/material"
)

// Sphere is a unit sphere at the origin. Position, size and shape come
// from its object-to-world transform.
type Sphere struct {
	Transform core.Matrix4
	Material  material.Material
}

// NewSphere creates a unit sphere with the identity transform and the
// default material.
func NewSphere() *Sphere {
	return &Sphere{
		Transform: core.Identity(),
		Material:  material.NewDefaultMaterial(),
	}
}

// Intersect returns the intersections of the ray with the sphere,
// ordered ascending by t. Both records are returned even when they are
// behind the ray origin; hit selection filters later. A sphere whose
// transform is singular cannot be rendered and intersects nothing.
func (s *Sphere) Intersect(ray core.Ray) []Intersection {
	inverse, err := s.Transform.Inverse()
	if err != nil {
		return nil
	}
	r := ray.Transform(inverse)

	sphereToRay := r.Origin.Subtract(core.NewPoint(0, 0, 0))
	a := r.Direction.Dot(r.Direction)
	b := 2 * r.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtD := math.Sqrt(discriminant)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	if t1 > t2 {
		t1, t2 = t2, t1
	}
	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

// NormalAt returns the normalized world-space normal at a world-space
// point on the sphere. The object-space normal is carried back to
// world space by the transpose of the inverse transform, which keeps
// normals perpendicular under non-uniform scaling; w is zeroed because
// the transpose can smear translation into it.
func (s *Sphere) NormalAt(worldPoint core.Tuple) core.Tuple {
	inverse, err := s.Transform.Inverse()
	if err != nil {
		return core.NewVector(0, 0, 0)
	}
	objectPoint := inverse.MultiplyTuple(worldPoint)
	objectNormal := objectPoint.Subtract(core.NewPoint(0, 0, 0))
	worldNormal := inverse.Transpose().MultiplyTuple(objectNormal)
	worldNormal.W = 0
	return worldNormal.Normalize()
}

// GetMaterial returns the sphere's material.
func (s *Sphere) GetMaterial() material.Material {
	return s.Material
}
