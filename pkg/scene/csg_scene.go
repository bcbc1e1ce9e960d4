package scene

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
	"github.com/sco1/ray-tracer-challenge/pkg/geometry"
	"github.com/sco1/ray-tracer-challenge/pkg/lights"
	"github.com/sco1/ray-tracer-challenge/pkg/material"
	"github.com/sco1/ray-tracer-challenge/pkg/renderer"
	"github.com/sco1/ray-tracer-challenge/pkg/world"
)

// NewCSGScene creates a constructive-solid-geometry showcase: a rounded die
// body (cube intersected with a sphere) with a cylinder bored out of it
func NewCSGScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floorMat := material.DefaultMaterial()
	floorMat.Pattern = material.NewCheckerPattern(
		core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.4, 0.4, 0.4),
	)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)

	body := geometry.NewCube()
	bodyMat := material.DefaultMaterial()
	bodyMat.Color = core.NewColor(0.8, 0.2, 0.2)
	body.SetMaterial(bodyMat)

	rounding := geometry.NewSphere()
	rounding.SetTransform(core.Scaling(1.45, 1.45, 1.45))
	roundingMat := material.DefaultMaterial()
	roundingMat.Color = core.NewColor(0.8, 0.2, 0.2)
	rounding.SetMaterial(roundingMat)

	bore := geometry.NewCylinder()
	bore.Closed = true
	bore.Minimum = -2
	bore.Maximum = 2
	bore.SetTransform(core.Scaling(0.6, 1, 0.6))
	boreMat := material.DefaultMaterial()
	boreMat.Color = core.NewColor(0.2, 0.2, 0.8)
	bore.SetMaterial(boreMat)

	die := geometry.NewCSG(
		geometry.OpDifference,
		geometry.NewCSG(geometry.OpIntersection, body, rounding),
		bore,
	)
	die.SetTransform(core.Translation(0, 1, 0).Multiply(core.RotationY(math.Pi / 6)))

	w := world.New(
		lights.NewPointLight(core.NewPoint(-8, 10, -10), core.White),
		floor, die,
	)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2.5, -6),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}
}
