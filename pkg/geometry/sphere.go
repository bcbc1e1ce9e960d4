package geometry

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Sphere represents the unit sphere: centered at the origin with radius 1.
// Position, size and rotation are adjusted with a transform matrix.
type Sphere struct {
	object
}

// NewSphere creates a unit sphere with an identity transform and the
// default material
func NewSphere() *Sphere {
	return &Sphere{newObject()}
}

// NewGlassSphere creates a unit sphere with a fully transparent glass
// material, a common fixture for refraction scenes
func NewGlassSphere() *Sphere {
	s := NewSphere()
	m := s.Material()
	m.Transparency = 1.0
	m.RefractiveIndex = 1.5
	s.SetMaterial(m)
	return s
}

func (s *Sphere) localIntersect(localRay core.Ray) Intersections {
	// Solve |O + tD|² = 1 as a quadratic in t
	sphereToRay := localRay.Origin.Subtract(core.NewPoint(0, 0, 0))
	a := localRay.Direction.Dot(localRay.Direction)
	b := 2 * localRay.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	// A tangent ray produces two identical roots; both are kept
	sqrtD := math.Sqrt(discriminant)
	return NewIntersections(
		NewIntersection((-b-sqrtD)/(2*a), s),
		NewIntersection((-b+sqrtD)/(2*a), s),
	)
}

func (s *Sphere) localNormalAt(localPoint core.Tuple, _ Intersection) core.Tuple {
	return localPoint.Subtract(core.NewPoint(0, 0, 0))
}
