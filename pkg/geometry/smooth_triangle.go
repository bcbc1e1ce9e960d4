package geometry

import "github.com/sco1/ray-tracer-challenge/pkg/core"

// SmoothTriangle is a triangle with a normal at each vertex. Its surface
// normal at a hit is the barycentric blend of the three vertex normals,
// which hides the facets of triangulated meshes.
type SmoothTriangle struct {
	object
	P1, P2, P3 core.Tuple
	N1, N2, N3 core.Tuple
	E1, E2     core.Tuple
}

// NewSmoothTriangle creates a triangle from three vertex points and their
// per-vertex normals
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 core.Tuple) *SmoothTriangle {
	return &SmoothTriangle{
		object: newObject(),
		P1:     p1, P2: p2, P3: p3,
		N1: n1, N2: n2, N3: n3,
		E1: p2.Subtract(p1), E2: p3.Subtract(p1),
	}
}

func (tr *SmoothTriangle) localIntersect(localRay core.Ray) Intersections {
	t, u, v, ok := mollerTrumbore(localRay, tr.P1, tr.E1, tr.E2)
	if !ok {
		return nil
	}
	// The (u, v) pair is recorded on the intersection so localNormalAt can
	// interpolate with it later
	return NewIntersections(NewIntersectionUV(t, tr, u, v))
}

func (tr *SmoothTriangle) localNormalAt(_ core.Tuple, hit Intersection) core.Tuple {
	return tr.N2.Multiply(hit.U).
		Add(tr.N3.Multiply(hit.V)).
		Add(tr.N1.Multiply(1 - hit.U - hit.V))
}
