package geometry

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Cone represents a double-napped cone: two cones tip to tip at the origin,
// extending to infinity in both directions along the y-axis. Minimum and
// Maximum truncate it (exclusive bounds), and Closed adds end caps whose
// radius grows with |y|.
type Cone struct {
	object
	Minimum float64
	Maximum float64
	Closed  bool
}

// NewCone creates an infinite open double-napped cone with an identity
// transform and the default material
func NewCone() *Cone {
	return &Cone{
		object:  newObject(),
		Minimum: math.Inf(-1),
		Maximum: math.Inf(1),
	}
}

func (c *Cone) localIntersect(localRay core.Ray) Intersections {
	var inters Intersections

	// Quadratic for x² - y² + z² = 0
	a := localRay.Direction.X*localRay.Direction.X -
		localRay.Direction.Y*localRay.Direction.Y +
		localRay.Direction.Z*localRay.Direction.Z
	b := 2*localRay.Origin.X*localRay.Direction.X -
		2*localRay.Origin.Y*localRay.Direction.Y +
		2*localRay.Origin.Z*localRay.Direction.Z
	cc := localRay.Origin.X*localRay.Origin.X -
		localRay.Origin.Y*localRay.Origin.Y +
		localRay.Origin.Z*localRay.Origin.Z

	if math.Abs(a) < core.Epsilon {
		// Ray is parallel to one nappe; if b is also zero it misses
		// entirely, otherwise the linear equation gives a single hit on
		// the other nappe
		if math.Abs(b) < core.Epsilon {
			return c.intersectCaps(localRay, inters)
		}
		t := -cc / (2 * b)
		if y := localRay.Origin.Y + t*localRay.Direction.Y; c.Minimum < y && y < c.Maximum {
			inters = append(inters, NewIntersection(t, c))
		}
		inters = c.intersectCaps(localRay, inters)
		inters.Sort()
		return inters
	}

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

// checkConeCap reports whether the ray at t lies within the cap radius,
// which for a cone equals |capY|
func checkConeCap(localRay core.Ray, t, capY float64) bool {
	x := localRay.Origin.X + t*localRay.Direction.X
	z := localRay.Origin.Z + t*localRay.Direction.Z
	return x*x+z*z <= capY*capY
}

// intersectCaps appends any end-cap intersections to the collection
func (c *Cone) intersectCaps(localRay core.Ray, inters Intersections) Intersections {
	if !c.Closed {
		return inters
	}

	t := (c.Minimum - localRay.Origin.Y) / localRay.Direction.Y
	if checkConeCap(localRay, t, c.Minimum) {
		inters = append(inters, NewIntersection(t, c))
	}

	t = (c.Maximum - localRay.Origin.Y) / localRay.Direction.Y
	if checkConeCap(localRay, t, c.Maximum) {
		inters = append(inters, NewIntersection(t, c))
	}

	return inters
}

func (c *Cone) localNormalAt(localPoint core.Tuple, _ Intersection) core.Tuple {
	// The cap radius matches |y|, so a point closer to the axis than that
	// and within Epsilon of a cap plane is on the cap
	dist := localPoint.X*localPoint.X + localPoint.Z*localPoint.Z
	capRadius2 := localPoint.Y * localPoint.Y
	switch {
	case dist < capRadius2 && localPoint.Y >= c.Maximum-core.Epsilon:
		return core.NewVector(0, 1, 0)
	case dist < capRadius2 && localPoint.Y <= c.Minimum+core.Epsilon:
		return core.NewVector(0, -1, 0)
	default:
		// The y component slopes away from the nappe the point is on
		normY := math.Sqrt(dist)
		if localPoint.Y > 0 {
			normY = -normY
		}
		return core.NewVector(localPoint.X, normY, localPoint.Z)
	}
}
