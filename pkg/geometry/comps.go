package geometry

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Comps is a read-only snapshot of everything the shading pipeline needs
// about one ray-shape intersection, precomputed once so the lighting,
// reflection and refraction steps don't repeat the work.
//
// OverPoint and UnderPoint are the hit point nudged slightly along and
// against the normal. Shadow and reflection rays launch from OverPoint and
// refraction rays from UnderPoint so floating point error can't land a
// secondary ray back on the surface it started from.
type Comps struct {
	T          float64
	Object     Shape
	Point      core.Tuple
	EyeV       core.Tuple
	NormalV    core.Tuple
	Inside     bool
	ReflectV   core.Tuple
	N1         float64 // refractive index of the material being exited
	N2         float64 // refractive index of the material being entered
	OverPoint  core.Tuple
	UnderPoint core.Tuple
}

// PrepareComputations builds the shading context for a hit.
//
// allInters is the full sorted intersection sequence the hit came from and
// is required for correct refractive indices when shapes overlap; pass nil
// to treat the hit as the sole entry in its own sequence.
func PrepareComputations(hit Intersection, ray core.Ray, allInters Intersections) Comps {
	if allInters == nil {
		allInters = Intersections{hit}
	}

	point := ray.Position(hit.T)
	eyeV := ray.Direction.Negate()
	normalV := NormalAt(hit.Object, point, hit)

	// A normal pointing away from the eye means the hit is on the inside of
	// the surface; flip it so the surface is lit properly
	inside := false
	if normalV.Dot(eyeV) < 0 {
		inside = true
		normalV = normalV.Negate()
	}

	n1, n2 := refractiveIndices(hit, allInters)

	offset := normalV.Multiply(core.Epsilon)
	return Comps{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		EyeV:       eyeV,
		NormalV:    normalV,
		Inside:     inside,
		ReflectV:   ray.Direction.Reflect(normalV),
		N1:         n1,
		N2:         n2,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Subtract(offset),
	}
}

// refractiveIndices finds the refractive indices of the materials on either
// side of the target intersection by walking the full sequence in order and
// maintaining a stack of the shapes the ray is currently inside. Crossing a
// shape already on the stack is an exit; crossing a new shape is an entry.
func refractiveIndices(hit Intersection, allInters Intersections) (n1, n2 float64) {
	var containers []Shape

	for _, inter := range allInters {
		if inter == hit {
			if len(containers) == 0 {
				n1 = 1.0
			} else {
				n1 = containers[len(containers)-1].Material().RefractiveIndex
			}
		}

		if idx := indexOfShape(containers, inter.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, inter.Object)
		}

		if inter == hit {
			if len(containers) == 0 {
				n2 = 1.0
			} else {
				n2 = containers[len(containers)-1].Material().RefractiveIndex
			}
			break
		}
	}

	return n1, n2
}

func indexOfShape(shapes []Shape, target Shape) int {
	for i, s := range shapes {
		if s == target {
			return i
		}
	}
	return -1
}

// Schlick approximates the Fresnel reflectance at the intersection: the
// fraction of light that reflects rather than refracts. Grazing angles
// reflect almost everything, head-on rays almost nothing, and total internal
// reflection returns 1.
func Schlick(comps Comps) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	// Total internal reflection can only occur when moving into a less
	// dense medium
	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1 {
			return 1.0
		}

		// Use cos(theta_t) in place of cos(theta_i) when n1 > n2
		cos = math.Sqrt(1.0 - sin2T)
	}

	r0 := (comps.N1 - comps.N2) / (comps.N1 + comps.N2)
	r0 *= r0
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
