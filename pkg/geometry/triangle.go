package geometry

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Triangle represents a flat triangle defined by three vertices. The edge
// vectors and face normal are precomputed at construction since they never
// change.
type Triangle struct {
	object
	P1, P2, P3 core.Tuple
	E1, E2     core.Tuple // edge vectors P2-P1 and P3-P1
	Normal     core.Tuple
}

// NewTriangle creates a triangle from three vertex points
func NewTriangle(p1, p2, p3 core.Tuple) *Triangle {
	e1 := p2.Subtract(p1)
	e2 := p3.Subtract(p1)
	return &Triangle{
		object: newObject(),
		P1:     p1, P2: p2, P3: p3,
		E1: e1, E2: e2,
		Normal: e2.Cross(e1).Normalize(),
	}
}

func (tr *Triangle) localIntersect(localRay core.Ray) Intersections {
	t, u, v, ok := mollerTrumbore(localRay, tr.P1, tr.E1, tr.E2)
	if !ok {
		return nil
	}
	return NewIntersections(NewIntersectionUV(t, tr, u, v))
}

func (tr *Triangle) localNormalAt(_ core.Tuple, _ Intersection) core.Tuple {
	// A flat triangle's normal is the same everywhere on its face
	return tr.Normal
}

// mollerTrumbore runs the Möller–Trumbore ray/triangle intersection
// algorithm against a triangle described by one vertex and its two edge
// vectors, returning the hit distance and barycentric coordinates
func mollerTrumbore(ray core.Ray, p1, e1, e2 core.Tuple) (t, u, v float64, ok bool) {
	dirCrossE2 := ray.Direction.Cross(e2)
	det := e1.Dot(dirCrossE2)

	// A near-zero determinant means the ray is parallel to the triangle's
	// plane and misses
	if math.Abs(det) < core.Epsilon {
		return 0, 0, 0, false
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Subtract(p1)
	u = f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	originCrossE1 := p1ToOrigin.Cross(e1)
	v = f * ray.Direction.Dot(originCrossE1)
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = f * e2.Dot(originCrossE1)
	return t, u, v, true
}
