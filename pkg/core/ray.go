package core

// Ray is a parametric line with an origin point and direction vector.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns the ray with origin and direction multiplied by
// the matrix. Multiplying by a primitive's inverse transform moves a
// world-space ray into object space.
func (r Ray) Transform(m Matrix4) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
