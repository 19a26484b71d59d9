package core

// Color is an RGB triple. Channels are nominally in [0,1] but may
// exceed 1 during shading; clamping happens at output encoding.
type Color struct {
	R, G, B float64
}

// NewColor creates a color from red, green and blue channels.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the zero color.
func Black() Color {
	return Color{}
}

// White returns the color with all channels at 1.
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Equals reports whether all three channels match within Epsilon.
func (c Color) Equals(other Color) bool {
	return c.EqualsApprox(other, Epsilon)
}

// EqualsApprox reports whether all three channels match within eps.
func (c Color) EqualsApprox(other Color, eps float64) bool {
	return EqualApprox(c.R, other.R, eps) &&
		EqualApprox(c.G, other.G, eps) &&
		EqualApprox(c.B, other.B, eps)
}

// Add returns the channel-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the channel-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor returns the channel-wise (Hadamard) product, used to
// combine a surface color with a light's intensity.
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}
