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

// NewDefaultScene creates the classic three-spheres-on-a-floor scene: a
// matte plane with a large sphere in the middle flanked by two smaller ones
func NewDefaultScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floorMat := material.DefaultMaterial()
	floorMat.Color = core.NewColor(1, 0.9, 0.9)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)

	middle := geometry.NewSphere()
	middle.SetTransform(core.Translation(-0.5, 1, 0.5))
	middleMat := material.DefaultMaterial()
	middleMat.Color = core.NewColor(0.1, 1, 0.5)
	middleMat.Diffuse = 0.7
	middleMat.Specular = 0.3
	middleMat.Pattern = material.NewStripePattern(
		core.NewColor(0.1, 1, 0.5), core.NewColor(0.05, 0.5, 0.25),
	)
	middleMat.Pattern.SetTransform(core.Scaling(0.25, 0.25, 0.25).Multiply(core.RotationZ(math.Pi / 4)))
	middle.SetMaterial(middleMat)

	right := geometry.NewSphere()
	right.SetTransform(core.Translation(1.5, 0.5, -0.5).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	rightMat := material.DefaultMaterial()
	rightMat.Color = core.NewColor(0.5, 1, 0.1)
	rightMat.Diffuse = 0.7
	rightMat.Specular = 0.3
	rightMat.Reflective = 0.2
	right.SetMaterial(rightMat)

	left := geometry.NewSphere()
	left.SetTransform(core.Translation(-1.5, 0.33, -0.75).Multiply(core.Scaling(0.33, 0.33, 0.33)))
	leftMat := material.DefaultMaterial()
	leftMat.Color = core.NewColor(1, 0.8, 0.1)
	leftMat.Diffuse = 0.7
	leftMat.Specular = 0.3
	left.SetMaterial(leftMat)

	w := world.New(
		lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
		floor, middle, right, left,
	)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}
}
