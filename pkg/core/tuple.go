package core

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used for floating point comparisons throughout
// the tracer. All geometry is floating point, so equality is approximate.
const Epsilon = 1e-5

// Tuple represents a point or vector in 3D space.
// W distinguishes the two kinds: 1 for points, 0 for vectors. Keeping W as a
// matrix-friendly fourth component means translation matrices move points but
// leave vectors alone.
type Tuple struct {
	X, Y, Z, W float64
}

// NewPoint creates a point tuple (W = 1)
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector tuple (W = 0)
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point
func (t Tuple) IsPoint() bool {
	return t.W == 1
}

// IsVector reports whether the tuple is a vector
func (t Tuple) IsVector() bool {
	return t.W == 0
}

// Add returns the sum of two tuples.
// Adding two points is undefined and panics: it indicates a defect in
// scene-construction code, not a recoverable runtime condition.
func (t Tuple) Add(other Tuple) Tuple {
	if t.IsPoint() && other.IsPoint() {
		panic("core: cannot add two points")
	}
	return Tuple{t.X + other.X, t.Y + other.Y, t.Z + other.Z, t.W + other.W}
}

// Subtract returns the difference of two tuples.
// Subtracting a point from a vector is undefined and panics.
func (t Tuple) Subtract(other Tuple) Tuple {
	if t.IsVector() && other.IsPoint() {
		panic("core: cannot subtract a point from a vector")
	}
	return Tuple{t.X - other.X, t.Y - other.Y, t.Z - other.Z, t.W - other.W}
}

// Negate returns the tuple with all components negated
func (t Tuple) Negate() Tuple {
	return Tuple{-t.X, -t.Y, -t.Z, -t.W}
}

// Multiply returns the tuple scaled by a scalar
func (t Tuple) Multiply(scalar float64) Tuple {
	return Tuple{t.X * scalar, t.Y * scalar, t.Z * scalar, t.W * scalar}
}

// Divide returns the tuple scaled by the reciprocal of a scalar
func (t Tuple) Divide(scalar float64) Tuple {
	return Tuple{t.X / scalar, t.Y / scalar, t.Z / scalar, t.W / scalar}
}

// Magnitude returns the length of a vector.
// Panics if called on a point.
func (t Tuple) Magnitude() float64 {
	if !t.IsVector() {
		panic("core: cannot take the magnitude of a non-vector")
	}
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z)
}

// Normalize returns a unit vector in the same direction.
// Panics if called on a point or on the zero vector.
func (t Tuple) Normalize() Tuple {
	mag := t.Magnitude()
	if mag == 0 {
		panic("core: cannot normalize the zero vector")
	}
	return Tuple{t.X / mag, t.Y / mag, t.Z / mag, t.W / mag}
}

// Dot returns the dot product of two vectors.
// Panics unless both operands are vectors.
func (t Tuple) Dot(other Tuple) float64 {
	if !t.IsVector() || !other.IsVector() {
		panic(fmt.Sprintf("core: dot product requires two vectors, got w=%v and w=%v", t.W, other.W))
	}
	return t.X*other.X + t.Y*other.Y + t.Z*other.Z
}

// Cross returns the cross product of two vectors.
// Panics unless both operands are vectors.
func (t Tuple) Cross(other Tuple) Tuple {
	if !t.IsVector() || !other.IsVector() {
		panic(fmt.Sprintf("core: cross product requires two vectors, got w=%v and w=%v", t.W, other.W))
	}
	return NewVector(
		t.Y*other.Z-t.Z*other.Y,
		t.Z*other.X-t.X*other.Z,
		t.X*other.Y-t.Y*other.X,
	)
}

// Reflect returns the tuple reflected about the given normal vector
func (t Tuple) Reflect(normal Tuple) Tuple {
	return t.Subtract(normal.Multiply(2 * t.Dot(normal)))
}

// Equals reports component-wise approximate equality.
// Kinds must match exactly; components are compared within Epsilon.
func (t Tuple) Equals(other Tuple) bool {
	return t.W == other.W &&
		math.Abs(t.X-other.X) < Epsilon &&
		math.Abs(t.Y-other.Y) < Epsilon &&
		math.Abs(t.Z-other.Z) < Epsilon
}
