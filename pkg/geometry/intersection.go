package geometry

import (
	"sort"

	"github.com/raylab/go-phong-raytracer/pkg/core"
)

// Intersection records a ray crossing a shape at parameter t. It is
// the unprepared form; Prepare derives the shading inputs.
type Intersection struct {
	T      float64
	Object Shape
}

// SortIntersections orders intersections ascending by t, negative
// values included.
func SortIntersections(xs []Intersection) {
	sort.Slice(xs, func(i, j int) bool {
		return xs[i].T < xs[j].T
	})
}

// FindHit returns the intersection with the smallest non-negative t.
// Intersections behind the ray origin never count as hits. The second
// return is false when nothing qualifies.
func FindHit(xs []Intersection) (Intersection, bool) {
	var hit Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < hit.T {
			hit = x
			found = true
		}
	}
	return hit, found
}

// PreparedHit is an intersection resolved against a specific ray, with
// everything shading needs precomputed.
type PreparedHit struct {
	T            float64
	Object       Shape
	Point        core.Tuple
	EyeVector    core.Tuple
	NormalVector core.Tuple
	// Inside is true when the ray originated inside the shape; the
	// normal is flipped to face the eye in that case.
	Inside bool
	// OverPoint sits a hair above the surface along the normal. Shadow
	// rays start here so float round-off cannot re-intersect the
	// surface itself (acne).
	OverPoint core.Tuple
}

// Prepare resolves an intersection against the ray that produced it.
func Prepare(i Intersection, ray core.Ray) PreparedHit {
	point := ray.Position(i.T)
	eyeVector := ray.Direction.Negate()
	normalVector := i.Object.NormalAt(point)

	inside := false
	if normalVector.Dot(eyeVector) < 0 {
		inside = true
		normalVector = normalVector.Negate()
	}

	return PreparedHit{
		T:            i.T,
		Object:       i.Object,
		Point:        point,
		EyeVector:    eyeVector,
		NormalVector: normalVector,
		Inside:       inside,
		OverPoint:    point.Add(normalVector.Multiply(core.Epsilon)),
	}
}
