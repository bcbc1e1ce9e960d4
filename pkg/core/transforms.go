package core

import "math"

// Translation returns a transform that shifts points by (x, y, z).
// Vectors are unaffected by translation.
func Translation(x, y, z float64) Matrix {
	m := IdentityMatrix()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

// Scaling returns a transform that scales tuples by (x, y, z)
func Scaling(x, y, z float64) Matrix {
	m := IdentityMatrix()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotationX returns a transform that rotates tuples around the x-axis
// by the given angle in radians
func RotationX(radians float64) Matrix {
	m := IdentityMatrix()
	cos, sin := math.Cos(radians), math.Sin(radians)
	m[1][1] = cos
	m[1][2] = -sin
	m[2][1] = sin
	m[2][2] = cos
	return m
}

// RotationY returns a transform that rotates tuples around the y-axis
// by the given angle in radians
func RotationY(radians float64) Matrix {
	m := IdentityMatrix()
	cos, sin := math.Cos(radians), math.Sin(radians)
	m[0][0] = cos
	m[0][2] = sin
	m[2][0] = -sin
	m[2][2] = cos
	return m
}

// RotationZ returns a transform that rotates tuples around the z-axis
// by the given angle in radians
func RotationZ(radians float64) Matrix {
	m := IdentityMatrix()
	cos, sin := math.Cos(radians), math.Sin(radians)
	m[0][0] = cos
	m[0][1] = -sin
	m[1][0] = sin
	m[1][1] = cos
	return m
}

// Shearing returns a transform that slants each coordinate in proportion
// to the other two; xy is the amount x changes per unit of y, and so on
func Shearing(xy, xz, yx, yz, zx, zy float64) Matrix {
	m := IdentityMatrix()
	m[0][1] = xy
	m[0][2] = xz
	m[1][0] = yx
	m[1][2] = yz
	m[2][0] = zx
	m[2][1] = zy
	return m
}

// ViewTransform returns the transform that orients the world relative to a
// camera positioned at from, looking at to, with the given up vector
func ViewTransform(from, to, up Tuple) Matrix {
	forward := to.Subtract(from).Normalize()
	left := forward.Cross(up.Normalize())
	trueUp := left.Cross(forward)

	orientation := Matrix{
		{left.X, left.Y, left.Z, 0},
		{trueUp.X, trueUp.Y, trueUp.Z, 0},
		{-forward.X, -forward.Y, -forward.Z, 0},
		{0, 0, 0, 1},
	}

	// Move the scene into place before orienting it
	return orientation.Multiply(Translation(-from.X, -from.Y, -from.Z))
}
