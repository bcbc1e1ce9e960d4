package core

// Ray represents a ray with an origin point and a direction vector
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay creates a new ray.
// Panics unless origin is a point and direction is a vector; a malformed ray
// is a defect in the caller, not a runtime condition.
func NewRay(origin, direction Tuple) Ray {
	if !origin.IsPoint() {
		panic("core: ray origin must be a point")
	}
	if !direction.IsVector() {
		panic("core: ray direction must be a vector")
	}
	return Ray{Origin: origin, Direction: direction}
}

// Position returns the point at parameter t along the ray
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Multiply(t))
}

// Transform returns a copy of the ray with the transform applied to both
// origin and direction. The direction is deliberately not renormalized so
// intersection t values stay in world units.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
