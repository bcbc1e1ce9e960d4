package geometry

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Plane represents the infinite plane spanning x and z through the origin.
// Position and orientation are adjusted with a transform matrix.
//
// Rays coplanar with the plane are treated as missing it rather than
// producing an infinite number of intersections.
type Plane struct {
	object
}

// NewPlane creates an xz-plane with an identity transform and the default
// material
func NewPlane() *Plane {
	return &Plane{newObject()}
}

func (p *Plane) localIntersect(localRay core.Ray) Intersections {
	// A near-zero y slope means the ray is parallel or coplanar
	if math.Abs(localRay.Direction.Y) < core.Epsilon {
		return nil
	}

	t := -localRay.Origin.Y / localRay.Direction.Y
	return NewIntersections(NewIntersection(t, p))
}

func (p *Plane) localNormalAt(_ core.Tuple, _ Intersection) core.Tuple {
	// The normal is constant everywhere on the plane
	return core.NewVector(0, 1, 0)
}
