package geometry

import "github.com/sco1/ray-tracer-challenge/pkg/core"

// Group is a shape with no surface of its own; it takes its form from the
// shapes it contains. Groups nest arbitrarily, and a group's transform
// applies implicitly to every descendant, so a whole subtree can be placed
// with a single matrix.
type Group struct {
	object
	children []Shape
}

// NewGroup creates an empty group with an identity transform
func NewGroup() *Group {
	return &Group{object: newObject()}
}

// AddChild adds a shape to the group and points the child's parent link back
// at the group. A shape belongs to at most one parent; membership is not
// checked before the parent link is overwritten.
func (g *Group) AddChild(s Shape) {
	g.children = append(g.children, s)
	s.setParent(g)
}

// Children returns the group's direct children
func (g *Group) Children() []Shape {
	return g.children
}

func (g *Group) localIntersect(localRay core.Ray) Intersections {
	// The incoming ray is already in the group's local space; each child
	// applies its own transform on top, recursively
	var inters Intersections
	for _, child := range g.children {
		inters = append(inters, Intersect(child, localRay)...)
	}
	inters.Sort()
	return inters
}

func (g *Group) localNormalAt(_ core.Tuple, _ Intersection) core.Tuple {
	// Normals are only ever queried on concrete surfaces; asking a group is
	// a defect in the caller
	panic("geometry: groups have no surface normal")
}
