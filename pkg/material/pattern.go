package material

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
)

// Object is the narrow view of a scene object that patterns need: just
// enough to shift a world-space point into the object's own space
type Object interface {
	Transform() core.Matrix
}

// Pattern samples a procedural color at a point expressed in pattern space.
// Each pattern owns two colors and its own transform, so a pattern can be
// scaled or rotated independently of the shape it is applied to.
type Pattern interface {
	// AtPoint returns the pattern's color at a pattern-space point
	AtPoint(point core.Tuple) core.Color
	// Transform returns the pattern's own transform
	Transform() core.Matrix
	// SetTransform replaces the pattern's transform
	SetTransform(m core.Matrix)
}

// AtObject samples a pattern on an object's surface: the world-space point is
// shifted into object space via the object's inverse transform, then into
// pattern space via the pattern's inverse transform
func AtObject(p Pattern, obj Object, worldPoint core.Tuple) core.Color {
	objectPoint := obj.Transform().Inverse().MultiplyTuple(worldPoint)
	patternPoint := p.Transform().Inverse().MultiplyTuple(objectPoint)
	return p.AtPoint(patternPoint)
}

// basePattern carries the state shared by every pattern variant
type basePattern struct {
	A, B      core.Color
	transform core.Matrix
}

func newBasePattern(a, b core.Color) basePattern {
	return basePattern{A: a, B: b, transform: core.IdentityMatrix()}
}

// Transform returns the pattern's own transform
func (p *basePattern) Transform() core.Matrix {
	return p.transform
}

// SetTransform replaces the pattern's transform
func (p *basePattern) SetTransform(m core.Matrix) {
	p.transform = m
}

// StripePattern alternates between two colors every unit along the x-axis
type StripePattern struct {
	basePattern
}

// NewStripePattern creates a stripe pattern alternating between a and b
func NewStripePattern(a, b core.Color) *StripePattern {
	return &StripePattern{newBasePattern(a, b)}
}

// AtPoint returns a for even floor(x), b for odd
func (p *StripePattern) AtPoint(point core.Tuple) core.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.A
	}
	return p.B
}

// GradientPattern blends linearly from one color to the other along the
// x-axis, repeating every unit
type GradientPattern struct {
	basePattern
}

// NewGradientPattern creates a gradient pattern blending from a to b
func NewGradientPattern(a, b core.Color) *GradientPattern {
	return &GradientPattern{newBasePattern(a, b)}
}

// AtPoint blends a toward b by the fractional part of x
func (p *GradientPattern) AtPoint(point core.Tuple) core.Color {
	distance := p.B.Subtract(p.A)
	fraction := point.X - math.Floor(point.X)
	return p.A.Add(distance.Multiply(fraction))
}

// RingPattern alternates between two colors in concentric rings around the
// y-axis
type RingPattern struct {
	basePattern
}

// NewRingPattern creates a ring pattern alternating between a and b
func NewRingPattern(a, b core.Color) *RingPattern {
	return &RingPattern{newBasePattern(a, b)}
}

// AtPoint returns a for even floor(sqrt(x²+z²)), b for odd
func (p *RingPattern) AtPoint(point core.Tuple) core.Color {
	if int(math.Floor(math.Sqrt(point.X*point.X+point.Z*point.Z)))%2 == 0 {
		return p.A
	}
	return p.B
}

// CheckerPattern alternates between two colors in a 3D checkerboard so that
// no two adjacent unit cubes share a color
type CheckerPattern struct {
	basePattern
}

// NewCheckerPattern creates a checker pattern alternating between a and b
func NewCheckerPattern(a, b core.Color) *CheckerPattern {
	return &CheckerPattern{newBasePattern(a, b)}
}

// AtPoint returns a when floor(x)+floor(y)+floor(z) is even, b when odd
func (p *CheckerPattern) AtPoint(point core.Tuple) core.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.A
	}
	return p.B
}

// TestPattern reports the pattern-space coordinates it is sampled at as a
// color. It has no visual use; it exists to verify the world-to-pattern
// transform plumbing in tests.
type TestPattern struct {
	basePattern
}

// NewTestPattern creates a test pattern
func NewTestPattern() *TestPattern {
	return &TestPattern{newBasePattern(core.White, core.Black)}
}

// AtPoint returns the sample point's coordinates as a color
func (p *TestPattern) AtPoint(point core.Tuple) core.Color {
	return core.NewColor(point.X, point.Y, point.Z)
}
