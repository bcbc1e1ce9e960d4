package geometry

import (
	"testing"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

func TestTriangle_New(t *testing.T) {
	p1 := core.NewPoint(0, 1, 0)
	p2 := core.NewPoint(-1, 0, 0)
	p3 := core.NewPoint(1, 0, 0)
	tri := NewTriangle(p1, p2, p3)

	if !tri.E1.Equals(core.NewVector(-1, -1, 0)) {
		t.Errorf("Expected edge 1 (-1, -1, 0), got %v", tri.E1)
	}
	if !tri.E2.Equals(core.NewVector(1, -1, 0)) {
		t.Errorf("Expected edge 2 (1, -1, 0), got %v", tri.E2)
	}
	if !tri.Normal.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normal (0, 0, -1), got %v", tri.Normal)
	}
}

func TestTriangle_NormalAt(t *testing.T) {
	tri := NewTriangle(core.NewPoint(0, 1, 0), core.NewPoint(-1, 0, 0), core.NewPoint(1, 0, 0))

	// The precomputed normal is constant over the whole face
	points := []core.Tuple{
		core.NewPoint(0, 0.5, 0),
		core.NewPoint(-0.5, 0.75, 0),
		core.NewPoint(0.5, 0.25, 0),
	}
	for _, p := range points {
		if got := NormalAt(tri, p, Intersection{}); !got.Equals(tri.Normal) {
			t.Errorf("Expected %v, got %v", tri.Normal, got)
		}
	}
}

func TestTriangle_Intersect(t *testing.T) {
	tri := NewTriangle(core.NewPoint(0, 1, 0), core.NewPoint(-1, 0, 0), core.NewPoint(1, 0, 0))

	tests := []struct {
		name      string
		origin    core.Tuple
		direction core.Tuple
		expectedT []float64
	}{
		{
			name:   "parallel ray misses",
			origin: core.NewPoint(0, -1, -2), direction: core.NewVector(0, 1, 0),
			expectedT: []float64{},
		},
		{
			name:   "ray misses the p1-p3 edge",
			origin: core.NewPoint(1, 1, -2), direction: core.NewVector(0, 0, 1),
			expectedT: []float64{},
		},
		{
			name:   "ray misses the p1-p2 edge",
			origin: core.NewPoint(-1, 1, -2), direction: core.NewVector(0, 0, 1),
			expectedT: []float64{},
		},
		{
			name:   "ray misses the p2-p3 edge",
			origin: core.NewPoint(0, -1, -2), direction: core.NewVector(0, 0, 1),
			expectedT: []float64{},
		},
		{
			name:   "ray strikes the face",
			origin: core.NewPoint(0, 0.5, -2), direction: core.NewVector(0, 0, 1),
			expectedT: []float64{2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.origin, tt.direction)
			assertIntersectionTs(t, Intersect(tri, ray), tt.expectedT)
		})
	}
}
