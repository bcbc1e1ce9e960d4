package renderer

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
	"github.com/sco1/ray-tracer-challenge/pkg/world"
)

// Camera maps the 3D world onto a 2D canvas. The canvas sits exactly one
// unit in front of the camera, and the camera's transform orients the world
// around it (usually built with core.ViewTransform).
type Camera struct {
	HSize     int     // horizontal size of the canvas in pixels
	VSize     int     // vertical size of the canvas in pixels
	FOV       float64 // field of view, in radians
	PixelSize float64

	transform    core.Matrix
	invTransform core.Matrix
	halfWidth    float64
	halfHeight   float64
}

// NewCamera creates a camera for the given canvas size and field of view
func NewCamera(hSize, vSize int, fov float64) *Camera {
	c := &Camera{
		HSize:        hSize,
		VSize:        vSize,
		FOV:          fov,
		transform:    core.IdentityMatrix(),
		invTransform: core.IdentityMatrix(),
	}

	// The canvas is one unit away, so half the FOV's tangent gives half the
	// canvas width in world units; the aspect ratio decides which axis that
	// half-view spans
	halfView := math.Tan(fov / 2)
	aspectRatio := float64(hSize) / float64(vSize)
	if aspectRatio >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspectRatio
	} else {
		c.halfWidth = halfView * aspectRatio
		c.halfHeight = halfView
	}
	c.PixelSize = (c.halfWidth * 2) / float64(hSize)

	return c
}

// Transform returns the camera's view transform
func (c *Camera) Transform() core.Matrix {
	return c.transform
}

// SetTransform replaces the camera's view transform.
// The inverse is cached since every pixel's ray needs it.
func (c *Camera) SetTransform(m core.Matrix) {
	c.transform = m
	c.invTransform = m.Inverse()
}

// RayForPixel computes the world-space ray from the camera through the
// center of the pixel at canvas coordinates (x, y)
func (c *Camera) RayForPixel(x, y int) core.Ray {
	// Offset from the canvas edge to the pixel's center
	xOffset := (float64(x) + 0.5) * c.PixelSize
	yOffset := (float64(y) + 0.5) * c.PixelSize

	// Untransformed canvas coordinates; +x is to the left because the
	// camera looks toward -z
	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	// The canvas sits at z = -1; transform the canvas point and the origin
	// to world space and the direction falls out
	pixel := c.invTransform.MultiplyTuple(core.NewPoint(worldX, worldY, -1))
	origin := c.invTransform.MultiplyTuple(core.NewPoint(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return core.NewRay(origin, direction)
}

// Render traces the camera's view of the world, one ray per pixel, into a
// new canvas
func (c *Camera) Render(w *world.World) *Canvas {
	img := NewCanvas(c.HSize, c.VSize)
	for y := 0; y < c.VSize; y++ {
		for x := 0; x < c.HSize; x++ {
			ray := c.RayForPixel(x, y)
			img.WritePixel(x, y, w.ColorAt(ray, world.MaxBounces))
		}
	}
	return img
}
