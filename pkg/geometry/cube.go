package geometry

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Cube represents an axis-aligned cube spanning -1 to +1 on every axis,
// centered at the origin. Position, size and rotation are adjusted with a
// transform matrix.
type Cube struct {
	object
}

// NewCube creates a unit cube with an identity transform and the default
// material
func NewCube() *Cube {
	return &Cube{newObject()}
}

func (c *Cube) localIntersect(localRay core.Ray) Intersections {
	// Treat the cube as three pairs of parallel planes: the cube's entry
	// time is the largest per-axis minimum and its exit time the smallest
	// per-axis maximum
	xtMin, xtMax := checkAxis(localRay.Origin.X, localRay.Direction.X)
	ytMin, ytMax := checkAxis(localRay.Origin.Y, localRay.Direction.Y)
	ztMin, ztMax := checkAxis(localRay.Origin.Z, localRay.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}
	return NewIntersections(NewIntersection(tMin, c), NewIntersection(tMax, c))
}

// checkAxis finds where the ray crosses the two planes bounding one axis
func checkAxis(origin, direction float64) (tMin, tMax float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	if math.Abs(direction) >= core.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		// Multiply by infinity instead of dividing by zero so the sign of
		// the numerator is preserved
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}

	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

func (c *Cube) localNormalAt(localPoint core.Tuple, _ Intersection) core.Tuple {
	// The face hit is the one whose component has the largest absolute
	// value; ties on corners resolve to the x face
	maxC := math.Max(math.Abs(localPoint.X), math.Max(math.Abs(localPoint.Y), math.Abs(localPoint.Z)))

	switch maxC {
	case math.Abs(localPoint.X):
		return core.NewVector(localPoint.X, 0, 0)
	case math.Abs(localPoint.Y):
		return core.NewVector(0, localPoint.Y, 0)
	default:
		return core.NewVector(0, 0, localPoint.Z)
	}
}
