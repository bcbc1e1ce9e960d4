package geometry

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Cylinder represents a radius-1 cylinder along the y-axis, by default
// extending to infinity in both directions. Minimum and Maximum truncate it
// (exclusive bounds), and Closed adds end caps at the truncation planes.
//
// Tangent rays yield two identical intersections, matching the other
// quadric shapes.
type Cylinder struct {
	object
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCylinder creates an infinite open cylinder with an identity transform
// and the default material
func NewCylinder() *Cylinder {
	return &Cylinder{
		object:  newObject(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

func (c *Cylinder) localIntersect(localRay core.Ray) Intersections {
	var inters Intersections

	// Quadratic in x and z only; the cylinder is unbounded in y
	a := localRay.Direction.X*localRay.Direction.X + localRay.Direction.Z*localRay.Direction.Z
	if math.Abs(a) < core.Epsilon {
		// Ray is parallel to the y-axis, so the side contributes nothing,
		// but the caps may still be hit
		return c.intersectCaps(localRay, inters)
	}

	b := 2*localRay.Origin.X*localRay.Direction.X + 2*localRay.Origin.Z*localRay.Direction.Z
	cc := localRay.Origin.X*localRay.Origin.X + localRay.Origin.Z*localRay.Origin.Z - 1

	disc := b*b - 4*a*cc
	if disc < 0 {
		return nil
	}

	sqrtD := math.Sqrt(disc)
	t0 := (-b - sqrtD) / (2 * a)
	t1 := (-b + sqrtD) / (2 * a)
	if t0 > t1 {
		t0, t1 = t1, t0
	}

	// Side hits only count when they fall strictly between the bounds
	y0 := localRay.Origin.Y + t0*localRay.Direction.Y
	if c.Minimum < y0 && y0 < c.Maximum {
		inters = append(inters, NewIntersection(t0, c))
	}

	y1 := localRay.Origin.Y + t1*localRay.Direction.Y
	if c.Minimum < y1 && y1 < c.Maximum {
		inters = append(inters, NewIntersection(t1, c))
	}

	inters = c.intersectCaps(localRay, inters)
	inters.Sort()
	return inters
}

// checkCap reports whether the ray at t lies within radius 1 of the y-axis
func checkCap(localRay core.Ray, t float64) bool {
	x := localRay.Origin.X + t*localRay.Direction.X
	z := localRay.Origin.Z + t*localRay.Direction.Z
	return x*x+z*z <= 1
}

// intersectCaps appends any end-cap intersections to the collection
func (c *Cylinder) intersectCaps(localRay core.Ray, inters Intersections) Intersections {
	if !c.Closed {
		return inters
	}

	// Each cap is the plane y = bound, restricted to the cap radius
	t := (c.Minimum - localRay.Origin.Y) / localRay.Direction.Y
	if checkCap(localRay, t) {
		inters = append(inters, NewIntersection(t, c))
	}

	t = (c.Maximum - localRay.Origin.Y) / localRay.Direction.Y
	if checkCap(localRay, t) {
		inters = append(inters, NewIntersection(t, c))
	}

	return inters
}

func (c *Cylinder) localNormalAt(localPoint core.Tuple, _ Intersection) core.Tuple {
	// A point within one unit of the y-axis and within Epsilon of a cap
	// plane is on that cap
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z
	switch {
	case dist < 1 && localPoint.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < 1 && localPoint.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		return core.NewVector(localPoint.X, 0, localPoint.Z)
	}
}
