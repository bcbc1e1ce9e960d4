package geometry

import (
	"github.com/sco1/ray-tracer-challenge/pkg/core"
	"github.com/sco1/ray-tracer-challenge/pkg/material"
)

// Shape is the closed set of scene objects the tracer knows how to render:
// Sphere, Plane, Cube, Cylinder, Cone, Triangle, SmoothTriangle, Group and
// CSG. All variants share transform, material and parent state through an
// embedded object struct, and all world-space behavior goes through the
// package-level Intersect and NormalAt functions so the local routines only
// ever see local space.
//
// Shapes are always handled as pointers: two shapes with identical fields are
// still distinct objects, and equality is pointer identity.
type Shape interface {
	// Transform returns the shape's own transform, not the accumulated
	// ancestor chain
	Transform() core.Matrix
	// SetTransform replaces the shape's transform
	SetTransform(m core.Matrix)
	// Material returns the shape's material
	Material() material.Material
	// SetMaterial replaces the shape's material, panicking if any
	// reflection attribute is negative
	SetMaterial(m material.Material)
	// Parent returns the enclosing Group or CSG, or nil at the root
	Parent() Shape
	setParent(p Shape)

	// localIntersect intersects a ray already expressed in the shape's
	// local space
	localIntersect(localRay core.Ray) Intersections
	// localNormalAt computes the normal at a local-space point; hit carries
	// the barycentric (u, v) needed by the triangle family
	localNormalAt(localPoint core.Tuple, hit Intersection) core.Tuple
}

// object carries the state common to every shape variant
type object struct {
	transform core.Matrix
	material  material.Material
	parent    Shape
}

func newObject() object {
	return object{
		transform: core.IdentityMatrix(),
		material:  material.DefaultMaterial(),
	}
}

// Transform returns the shape's own transform
func (o *object) Transform() core.Matrix {
	return o.transform
}

// SetTransform replaces the shape's transform
func (o *object) SetTransform(m core.Matrix) {
	o.transform = m
}

// Material returns the shape's material
func (o *object) Material() material.Material {
	return o.material
}

// SetMaterial replaces the shape's material.
// Panics if any of the material's reflection attributes is negative.
func (o *object) SetMaterial(m material.Material) {
	o.material = m.Validate()
}

// Parent returns the enclosing Group or CSG, or nil at the root
func (o *object) Parent() Shape {
	return o.parent
}

func (o *object) setParent(p Shape) {
	o.parent = p
}

// Intersect calculates where the world-space ray meets the shape.
//
// The ray is shifted into the shape's local space by the inverse of the
// shape's own transform only; ancestor transforms are accounted for by the
// Group/CSG traversal, which hands each child an already-localized ray.
//
// Tangent rays yield two identical t values rather than one deduplicated
// value, and negative t values are included, so callers can reason about
// object overlaps and rays originating inside geometry.
func Intersect(s Shape, ray core.Ray) Intersections {
	localRay := ray.Transform(s.Transform().Inverse())
	return s.localIntersect(localRay)
}

// NormalAt calculates the world-space surface normal at the given point.
// hit supplies the barycentric coordinates needed by smooth triangles; pass
// the zero Intersection for shapes that don't need it.
// Panics if worldPoint is not a point.
func NormalAt(s Shape, worldPoint core.Tuple, hit Intersection) core.Tuple {
	if !worldPoint.IsPoint() {
		panic("geometry: normal query location must be a point")
	}

	localPoint := WorldToObject(s, worldPoint)
	localNormal := s.localNormalAt(localPoint, hit)
	return NormalToWorld(s, localNormal)
}

// WorldToObject converts a world-space point into the shape's local space,
// applying ancestor inverse transforms outermost-first and the shape's own
// inverse last
func WorldToObject(s Shape, point core.Tuple) core.Tuple {
	if s.Parent() != nil {
		point = WorldToObject(s.Parent(), point)
	}
	return s.Transform().Inverse().MultiplyTuple(point)
}

// NormalToWorld converts a local-space normal into world space, applying the
// inverse-transpose of each transform from the shape outward and
// renormalizing at every step.
//
// The inverse-transpose can leave a translation artifact in W, so the vector
// is rebuilt from its x, y, z components before renormalizing.
func NormalToWorld(s Shape, normal core.Tuple) core.Tuple {
	normal = s.Transform().Inverse().Transpose().MultiplyTuple(normal)
	normal = core.NewVector(normal.X, normal.Y, normal.Z).Normalize()

	if s.Parent() != nil {
		normal = NormalToWorld(s.Parent(), normal)
	}
	return normal
}
