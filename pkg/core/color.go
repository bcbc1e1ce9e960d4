package core

import "math"

// Color represents an RGB color with float components.
// Components are unbounded during shading; clamping to a displayable range
// happens only when a canvas is serialized.
type Color struct {
	R, G, B float64
}

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Subtract returns the difference of two colors
func (c Color) Subtract(other Color) Color {
	return Color{c.R - other.R, c.G - other.G, c.B - other.B}
}

// Multiply returns the color scaled by a scalar
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Hadamard returns the component-wise product of two colors,
// used to blend a surface color with a light's intensity
func (c Color) Hadamard(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Equals reports component-wise approximate equality
func (c Color) Equals(other Color) bool {
	return math.Abs(c.R-other.R) < Epsilon &&
		math.Abs(c.G-other.G) < Epsilon &&
		math.Abs(c.B-other.B) < Epsilon
}
