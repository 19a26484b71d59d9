package core

import "math"

// Tuple is a 4-component homogeneous coordinate. W=1 marks a point,
// W=0 a vector. Arithmetic preserves that meaning by construction
// (point - point = vector, point + vector = point); nothing enforces
// it at runtime.
type Tuple struct {
	X, Y, Z, W float64
}

// NewTuple creates a tuple with explicit components.
func NewTuple(x, y, z, w float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: w}
}

// NewPoint creates a point (w=1).
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector (w=0).
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Equals reports whether all four components match within Epsilon.
func (t Tuple) Equals(other Tuple) bool {
	return t.EqualsApprox(other, Epsilon)
}

// EqualsApprox reports whether all four components match within eps.
func (t Tuple) EqualsApprox(other Tuple, eps float64) bool {
	return EqualApprox(t.X, other.X, eps) &&
		EqualApprox(t.Y, other.Y, eps) &&
		EqualApprox(t.Z, other.Z, eps) &&
		EqualApprox(t.W, other.W, eps)
}

// Add returns the component-wise sum of two tuples.
func (t Tuple) Add(other Tuple) Tuple {
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the component-wise difference of two tuples.
func (t Tuple) Subtract(other Tuple) Tuple {
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with every component negated.
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar.
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple divided by a scalar.
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the Euclidean norm over all four components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit tuple in the same direction. The zero
// tuple normalizes to itself.
func (t Tuple) Normalize() Tuple {
	magnitude := t.Magnitude()
	if magnitude == 0 {
		return Tuple{}
	}
	return t.Divide(magnitude)
}

// Dot returns the dot product of two tuples.
func (t Tuple) Dot(other Tuple) float64 {
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z + t.W*other.W
}

// Cross returns the 3-component cross product. W is ignored and the
// result is always a vector.
func (t Tuple) Cross(other Tuple) Tuple {
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected around the given normal.
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}
