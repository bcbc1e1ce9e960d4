package world

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
	"github.com/sco1/ray-tracer-challenge/pkg/geometry"
	"github.com/sco1/ray-tracer-challenge/pkg/lights"
	"github.com/sco1/ray-tracer-challenge/pkg/material"
)

// MaxBounces is the default reflection/refraction recursion budget. Every
// recursive call decrements it, and reaching zero forces black, which is the
// only thing bounding an otherwise-infinite mirror-between-mirrors
// computation.
const MaxBounces = 5

// World owns the scene for one render: a single point light and a flat list
// of top-level shapes. Groups and CSG nodes appear once in the list and are
// intersected by descending through their own children. The world is
// assembled up front and read-only while rendering.
type World struct {
	Light   lights.PointLight
	Objects []geometry.Shape
}

// New creates a world from a light and a set of top-level objects
func New(light lights.PointLight, objects ...geometry.Shape) *World {
	return &World{Light: light, Objects: objects}
}

// NewDefaultWorld creates the standard two-concentric-spheres test world:
// an outer green-ish sphere, an inner half-size sphere, and a white light
// up and to the left of the eye
func NewDefaultWorld() *World {
	s1 := geometry.NewSphere()
	m := s1.Material()
	m.Color = core.NewColor(0.8, 1.0, 0.6)
	m.Diffuse = 0.7
	m.Specular = 0.2
	s1.SetMaterial(m)

	s2 := geometry.NewSphere()
	s2.SetTransform(core.Scaling(0.5, 0.5, 0.5))

	light := lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White)
	return New(light, s1, s2)
}

// Intersect calculates the ray's intersections with every object in the
// world, aggregated and sorted by t
func (w *World) Intersect(ray core.Ray) geometry.Intersections {
	var inters geometry.Intersections
	for _, obj := range w.Objects {
		inters = append(inters, geometry.Intersect(obj, ray)...)
	}
	inters.Sort()
	return inters
}

// ColorAt calculates the color seen along the ray, black when the ray hits
// nothing. remaining is the bounce budget threaded through the recursive
// reflection and refraction calls.
func (w *World) ColorAt(ray core.Ray, remaining int) core.Color {
	inters := w.Intersect(ray)
	hit, ok := inters.Hit()
	if !ok {
		return core.Black
	}

	// The full intersection sequence rides along so the refractive-index
	// stack sees every boundary the ray crosses
	comps := geometry.PrepareComputations(hit, ray, inters)
	return w.ShadeHit(comps, remaining)
}

// ShadeHit calculates the color at a precomputed intersection: the Phong
// surface color plus the reflected and refracted contributions
func (w *World) ShadeHit(comps geometry.Comps, remaining int) core.Color {
	shadowed := w.IsShadowed(comps.OverPoint)
	surface := lights.Lighting(
		comps.Object.Material(),
		comps.Object,
		w.Light,
		comps.Point,
		comps.EyeV,
		comps.NormalV,
		shadowed,
	)

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor calculates the contribution of the reflection bounce: the
// color seen along the reflection ray scaled by the material's reflectivity.
// A non-reflective surface or an exhausted bounce budget contributes black.
func (w *World) ReflectedColor(comps geometry.Comps, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	reflective := comps.Object.Material().Reflective
	if reflective == 0 {
		return core.Black
	}

	// Launch from the over point so the reflection can't re-hit the surface
	// it just left
	reflectRay := core.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColorAt(reflectRay, remaining-1).Multiply(reflective)
}

// RefractedColor calculates the contribution of light passing through a
// transparent surface, bending per Snell's law. An opaque surface, an
// exhausted bounce budget, or total internal reflection contributes black.
func (w *World) RefractedColor(comps geometry.Comps, remaining int) core.Color {
	if remaining <= 0 {
		return core.Black
	}

	transparency := comps.Object.Material().Transparency
	if transparency == 0 {
		return core.Black
	}

	// Snell's law: sin(theta_t) / sin(theta_i) = n1 / n2
	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		// Total internal reflection
		return core.Black
	}

	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Multiply(nRatio*cosI - cosT).
		Subtract(comps.EyeV.Multiply(nRatio))

	// Launch from the under point, just past the surface being entered
	refractRay := core.NewRay(comps.UnderPoint, direction)
	return w.ColorAt(refractRay, remaining-1).Multiply(transparency)
}

// IsShadowed reports whether a world object blocks the line from the query
// point to the light
func (w *World) IsShadowed(point core.Tuple) bool {
	toLight := w.Light.Position.Subtract(point)
	distance := toLight.Magnitude()

	shadowRay := core.NewRay(point, toLight.Normalize())
	hit, ok := w.Intersect(shadowRay).Hit()

	// Hits beyond the light don't cast a shadow on the point
	return ok && hit.T < distance
}

// Interface check: shapes must be usable as pattern-space objects
var _ material.Object = geometry.Shape(nil)
