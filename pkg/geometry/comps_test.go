package geometry

import (
	"math"
	"testing"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

func TestPrepareComputations_Outside(t *testing.T) {
	s := NewSphere()
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))
	hit := NewIntersection(4, s)

	comps := PrepareComputations(hit, ray, nil)

	if comps.T != hit.T || comps.Object != Shape(s) {
		t.Errorf("Expected t and object carried over from the intersection")
	}
	if !comps.Point.Equals(core.NewPoint(0, 0, -1)) {
		t.Errorf("Expected point (0, 0, -1), got %v", comps.Point)
	}
	if !comps.EyeV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected eye vector (0, 0, -1), got %v", comps.EyeV)
	}
	if !comps.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normal (0, 0, -1), got %v", comps.NormalV)
	}
	if comps.Inside {
		t.Errorf("Expected the hit to be outside the shape")
	}
}

func TestPrepareComputations_Inside(t *testing.T) {
	s := NewSphere()
	ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 0, 1))
	hit := NewIntersection(1, s)

	comps := PrepareComputations(hit, ray, nil)

	if !comps.Point.Equals(core.NewPoint(0, 0, 1)) {
		t.Errorf("Expected point (0, 0, 1), got %v", comps.Point)
	}
	if !comps.Inside {
		t.Errorf("Expected the hit to be inside the shape")
	}
	// The normal is inverted so the interior surface faces the eye
	if !comps.NormalV.Equals(core.NewVector(0, 0, -1)) {
		t.Errorf("Expected normal (0, 0, -1), got %v", comps.NormalV)
	}
}

func TestPrepareComputations_OverPoint(t *testing.T) {
	s := NewSphere()
	s.SetTransform(core.Translation(0, 0, 1))
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	comps := PrepareComputations(NewIntersection(5, s), ray, nil)

	if comps.OverPoint.Z >= -core.Epsilon/2 {
		t.Errorf("Expected the over point to sit in front of the surface, got z %g", comps.OverPoint.Z)
	}
	if comps.Point.Z <= comps.OverPoint.Z {
		t.Errorf("Expected the hit point behind the over point")
	}
}

func TestPrepareComputations_UnderPoint(t *testing.T) {
	s := NewGlassSphere()
	s.SetTransform(core.Translation(0, 0, 1))
	ray := core.NewRay(core.NewPoint(0, 0, -5), core.NewVector(0, 0, 1))

	comps := PrepareComputations(NewIntersection(5, s), ray, nil)

	if comps.UnderPoint.Z <= core.Epsilon/2 {
		t.Errorf("Expected the under point to sit beneath the surface, got z %g", comps.UnderPoint.Z)
	}
	if comps.Point.Z >= comps.UnderPoint.Z {
		t.Errorf("Expected the hit point above the under point")
	}
}

func TestPrepareComputations_ReflectV(t *testing.T) {
	p := NewPlane()
	sqrt2over2 := math.Sqrt(2) / 2
	ray := core.NewRay(core.NewPoint(0, 1, -1), core.NewVector(0, -sqrt2over2, sqrt2over2))

	comps := PrepareComputations(NewIntersection(math.Sqrt(2), p), ray, nil)

	if !comps.ReflectV.Equals(core.NewVector(0, sqrt2over2, sqrt2over2)) {
		t.Errorf("Expected reflection vector (0, %f, %f), got %v", sqrt2over2, sqrt2over2, comps.ReflectV)
	}
}

func TestPrepareComputations_RefractiveIndices(t *testing.T) {
	// A contains B and C, which overlap each other near the origin
	glassWithIndex := func(s Shape, index float64) {
		m := s.Material()
		m.RefractiveIndex = index
		s.SetMaterial(m)
	}

	a := NewGlassSphere()
	a.SetTransform(core.Scaling(2, 2, 2))
	glassWithIndex(a, 1.5)
	b := NewGlassSphere()
	b.SetTransform(core.Translation(0, 0, -0.25))
	glassWithIndex(b, 2.0)
	c := NewGlassSphere()
	c.SetTransform(core.Translation(0, 0, 0.25))
	glassWithIndex(c, 2.5)

	ray := core.NewRay(core.NewPoint(0, 0, -4), core.NewVector(0, 0, 1))
	xs := NewIntersections(
		NewIntersection(2, a),
		NewIntersection(2.75, b),
		NewIntersection(3.25, c),
		NewIntersection(4.75, b),
		NewIntersection(5.25, c),
		NewIntersection(6, a),
	)

	expected := []struct{ n1, n2 float64 }{
		{1.0, 1.5},
		{1.5, 2.0},
		{2.0, 2.5},
		{2.5, 2.5},
		{2.5, 1.5},
		{1.5, 1.0},
	}

	for i, want := range expected {
		comps := PrepareComputations(xs[i], ray, xs)
		if comps.N1 != want.n1 || comps.N2 != want.n2 {
			t.Errorf("Intersection %d: expected n1 %f and n2 %f, got %f and %f",
				i, want.n1, want.n2, comps.N1, comps.N2)
		}
	}
}

func TestSchlick(t *testing.T) {
	sqrt2over2 := math.Sqrt(2) / 2

	t.Run("total internal reflection", func(t *testing.T) {
		s := NewGlassSphere()
		ray := core.NewRay(core.NewPoint(0, 0, sqrt2over2), core.NewVector(0, 1, 0))
		xs := NewIntersections(NewIntersection(-sqrt2over2, s), NewIntersection(sqrt2over2, s))

		comps := PrepareComputations(xs[1], ray, xs)
		if got := Schlick(comps); got != 1.0 {
			t.Errorf("Expected reflectance 1, got %f", got)
		}
	})

	t.Run("perpendicular viewing angle", func(t *testing.T) {
		s := NewGlassSphere()
		ray := core.NewRay(core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0))
		xs := NewIntersections(NewIntersection(-1, s), NewIntersection(1, s))

		comps := PrepareComputations(xs[1], ray, xs)
		if got := Schlick(comps); math.Abs(got-0.04) > core.Epsilon {
			t.Errorf("Expected reflectance 0.04, got %f", got)
		}
	})

	t.Run("small angle with n2 greater than n1", func(t *testing.T) {
		s := NewGlassSphere()
		ray := core.NewRay(core.NewPoint(0, 0.99, -2), core.NewVector(0, 0, 1))
		xs := NewIntersections(NewIntersection(1.8589, s))

		comps := PrepareComputations(xs[0], ray, xs)
		if got := Schlick(comps); math.Abs(got-0.48873) > core.Epsilon {
			t.Errorf("Expected reflectance 0.48873, got %f", got)
		}
	})
}
