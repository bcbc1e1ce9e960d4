package geometry

import (
	"testing"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

func TestIntersections_Hit(t *testing.T) {
	s := NewSphere()

	tests := []struct {
		name      string
		ts        []float64
		expectedT float64
		found     bool
	}{
		{name: "all positive", ts: []float64{1, 2}, expectedT: 1, found: true},
		{name: "some negative", ts: []float64{-1, 1}, expectedT: 1, found: true},
		{name: "all negative", ts: []float64{-2, -1}, found: false},
		{name: "unsorted input", ts: []float64{5, 7, -3, 2}, expectedT: 2, found: true},
		{name: "tangent duplicates", ts: []float64{5, 5}, expectedT: 5, found: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inters := make([]Intersection, len(tt.ts))
			for i, tv := range tt.ts {
				inters[i] = NewIntersection(tv, s)
			}
			xs := NewIntersections(inters...)

			hit, ok := xs.Hit()
			if ok != tt.found {
				t.Fatalf("Expected hit found %v, got %v", tt.found, ok)
			}
			if ok && hit.T != tt.expectedT {
				t.Errorf("Expected hit at t %f, got %f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestIntersections_Merge(t *testing.T) {
	s := NewSphere()
	a := NewIntersections(NewIntersection(1, s), NewIntersection(4, s))
	b := NewIntersections(NewIntersection(2, s), NewIntersection(3, s))

	merged := a.Merge(b)
	assertIntersectionTs(t, merged, []float64{1, 2, 3, 4})
}

func TestIntersections_Sort_StableAtEqualT(t *testing.T) {
	s1 := NewSphere()
	s2 := NewSphere()
	s3 := NewSphere()

	// Coincident boundaries share a t value; sorting must keep their
	// insertion order so containment sweeps see the shapes in a fixed order
	xs := Intersections{
		NewIntersection(2, s1),
		NewIntersection(1, s2),
		NewIntersection(1, s3),
		NewIntersection(1, s1),
	}
	xs.Sort()

	expected := []Shape{s2, s3, s1, s1}
	for i, want := range expected {
		if xs[i].Object != want {
			t.Errorf("Intersection %d: expected the order of insertion preserved", i)
		}
	}
}

func TestIntersection_CarriesUV(t *testing.T) {
	tri := NewTriangle(core.NewPoint(0, 1, 0), core.NewPoint(-1, 0, 0), core.NewPoint(1, 0, 0))
	inter := NewIntersectionUV(3.5, tri, 0.2, 0.4)

	if inter.U != 0.2 || inter.V != 0.4 {
		t.Errorf("Expected u 0.2 and v 0.4, got %f and %f", inter.U, inter.V)
	}
}
