package geometry

import "sort"

// Intersection records where a ray meets a shape: the parametric distance t
// along the ray and the shape that was hit. U and V are barycentric
// coordinates, populated only by the triangle family, and are carried here
// generically so smooth triangles can interpolate their normals from the hit.
type Intersection struct {
	T      float64
	Object Shape
	U, V   float64
}

// NewIntersection creates an intersection at distance t on a shape
func NewIntersection(t float64, obj Shape) Intersection {
	return Intersection{T: t, Object: obj}
}

// NewIntersectionUV creates an intersection carrying barycentric coordinates
func NewIntersectionUV(t float64, obj Shape, u, v float64) Intersection {
	return Intersection{T: t, Object: obj, U: u, V: v}
}

// Intersections is an ordered sequence of intersections, kept sorted
// ascending by t
type Intersections []Intersection

// NewIntersections collects intersections into a sorted sequence
func NewIntersections(inters ...Intersection) Intersections {
	xs := Intersections(inters)
	xs.Sort()
	return xs
}

// Sort orders the sequence ascending by t. The sort is stable so
// intersections at exactly the same t, such as coincident faces of two
// shapes, keep their relative order.
func (xs Intersections) Sort() {
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
}

// Merge combines two sorted sequences into a single sorted sequence
func (xs Intersections) Merge(other Intersections) Intersections {
	merged := make(Intersections, 0, len(xs)+len(other))
	merged = append(merged, xs...)
	merged = append(merged, other...)
	merged.Sort()
	return merged
}

// Hit returns the visible intersection: the first entry with strictly
// positive t. The second return is false when every t is non-positive, i.e.
// all geometry lies behind the ray. Duplicate t values from tangent rays need
// no special handling since the first of the pair wins.
func (xs Intersections) Hit() (Intersection, bool) {
	for _, inter := range xs {
		if inter.T > 0 {
			return inter, true
		}
	}
	return Intersection{}, false
}
