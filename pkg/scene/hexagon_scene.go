package scene

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
	"github.com/sco1/ray-tracer-challenge/pkg/geometry"
	"github.com/sco1/ray-tracer-challenge/pkg/lights"
	"github.com/sco1/ray-tracer-challenge/pkg/renderer"
	"github.com/sco1/ray-tracer-challenge/pkg/world"
)

// NewHexagonScene creates a hexagonal ring built from a group of six
// corner/edge subgroups, exercising nested group transforms
func NewHexagonScene(width, height int) *Scene {
	hex := hexagon()
	hex.SetTransform(core.Translation(0, 1, 0).Multiply(core.RotationX(-math.Pi / 6)))

	w := world.New(
		lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
		hex,
	)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2, -4),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}
}

// hexagon assembles six rotated copies of a corner-sphere + edge-cylinder
// subgroup into a ring
func hexagon() *geometry.Group {
	hex := geometry.NewGroup()
	for n := 0; n < 6; n++ {
		side := hexagonSide()
		side.SetTransform(core.RotationY(float64(n) * math.Pi / 3))
		hex.AddChild(side)
	}
	return hex
}

func hexagonSide() *geometry.Group {
	side := geometry.NewGroup()
	side.AddChild(hexagonCorner())
	side.AddChild(hexagonEdge())
	return side
}

func hexagonCorner() *geometry.Sphere {
	corner := geometry.NewSphere()
	corner.SetTransform(
		core.Translation(0, 0, -1).Multiply(core.Scaling(0.25, 0.25, 0.25)),
	)
	return corner
}

func hexagonEdge() *geometry.Cylinder {
	edge := geometry.NewCylinder()
	edge.Minimum = 0
	edge.Maximum = 1
	edge.SetTransform(
		core.Translation(0, 0, -1).
			Multiply(core.RotationY(-math.Pi / 6)).
			Multiply(core.RotationZ(-math.Pi / 2)).
			Multiply(core.Scaling(0.25, 1, 0.25)),
	)
	return edge
}
