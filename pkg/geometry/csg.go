package geometry

import "github.com/sco1/ray-tracer-challenge/pkg/core"

// Operation is a boolean set operation combining two solid shapes
type Operation int

// The supported CSG operations
const (
	// OpUnion keeps intersections on the exterior of both shapes
	OpUnion Operation = iota
	// OpIntersection keeps intersections where the shapes overlap
	OpIntersection
	// OpDifference keeps the left shape minus the volume of the right
	OpDifference
)

// CSG combines exactly two child shapes with a boolean set operation.
// Operands may themselves be Groups or other CSGs, so arbitrarily complex
// solids can be built from a hierarchy of binary operations. Like a Group,
// a CSG has no surface of its own and its transform applies to both
// children implicitly.
type CSG struct {
	object
	Operation Operation
	Left      Shape
	Right     Shape
}

// NewCSG combines two shapes under the given operation, setting both
// children's parent links to the new node
func NewCSG(op Operation, left, right Shape) *CSG {
	c := &CSG{
		object:    newObject(),
		Operation: op,
		Left:      left,
		Right:     right,
	}
	left.setParent(c)
	right.setParent(c)
	return c
}

func (c *CSG) localIntersect(localRay core.Ray) Intersections {
	inters := Intersect(c.Left, localRay).Merge(Intersect(c.Right, localRay))
	return c.FilterIntersections(inters)
}

func (c *CSG) localNormalAt(_ core.Tuple, _ Intersection) core.Tuple {
	panic("geometry: CSG nodes have no surface normal")
}

// IntersectionAllowed applies the CSG truth table: given which operand was
// hit and whether the ray is currently inside each operand, it decides
// whether the intersection lies on the boundary of the combined solid
func (c *CSG) IntersectionAllowed(leftHit, inLeft, inRight bool) bool {
	switch c.Operation {
	case OpUnion:
		return (leftHit && !inRight) || (!leftHit && !inLeft)
	case OpIntersection:
		return (leftHit && inRight) || (!leftHit && inLeft)
	case OpDifference:
		return (leftHit && !inRight) || (!leftHit && inLeft)
	}
	return false
}

// FilterIntersections sweeps a sorted intersection sequence left to right,
// tracking whether the ray is inside each operand, and keeps only the
// intersections the operation's truth table admits. Admission is decided
// from the state before the crossing toggles it.
func (c *CSG) FilterIntersections(inters Intersections) Intersections {
	inLeft := false
	inRight := false

	filtered := make(Intersections, 0, len(inters))
	for _, inter := range inters {
		leftHit := Includes(c.Left, inter.Object)

		if c.IntersectionAllowed(leftHit, inLeft, inRight) {
			filtered = append(filtered, inter)
		}

		// Crossing a boundary toggles containment for that side
		if leftHit {
			inLeft = !inLeft
		} else {
			inRight = !inRight
		}
	}
	return filtered
}

// Includes reports whether shape a is, or contains, shape b. Groups and CSG
// nodes are searched depth-first through their children; any other shape is
// compared by identity.
func Includes(a, b Shape) bool {
	switch s := a.(type) {
	case *Group:
		for _, child := range s.Children() {
			if Includes(child, b) {
				return true
			}
		}
		return false
	case *CSG:
		return Includes(s.Left, b) || Includes(s.Right, b)
	default:
		return a == b
	}
}
