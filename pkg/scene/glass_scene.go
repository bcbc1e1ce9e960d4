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

// NewGlassScene creates a reflection/refraction showcase: a glass sphere
// with an air bubble inside it, hovering over a checkered floor beside a
// mirrored sphere
func NewGlassScene(width, height int) *Scene {
	floor := geometry.NewPlane()
	floorMat := material.DefaultMaterial()
	floorMat.Pattern = material.NewCheckerPattern(
		core.NewColor(0.85, 0.85, 0.85), core.NewColor(0.15, 0.15, 0.15),
	)
	floorMat.Specular = 0
	floorMat.Reflective = 0.1
	floor.SetMaterial(floorMat)

	// Outer glass shell
	glass := geometry.NewGlassSphere()
	glass.SetTransform(core.Translation(0, 1, 0))
	glassMat := glass.Material()
	glassMat.Color = core.NewColor(0.05, 0.05, 0.05)
	glassMat.Diffuse = 0.1
	glassMat.Specular = 1
	glassMat.Shininess = 300
	glassMat.Reflective = 0.9
	glass.SetMaterial(glassMat)

	// Pocket of air inside the shell; the refractive-index stack is what
	// makes this read as a hollow ball
	bubble := geometry.NewGlassSphere()
	bubble.SetTransform(core.Translation(0, 1, 0).Multiply(core.Scaling(0.5, 0.5, 0.5)))
	bubbleMat := bubble.Material()
	bubbleMat.RefractiveIndex = 1.0000034
	bubbleMat.Diffuse = 0.1
	bubbleMat.Reflective = 0.9
	bubble.SetMaterial(bubbleMat)

	mirror := geometry.NewSphere()
	mirror.SetTransform(core.Translation(2.2, 0.75, 1.5).Multiply(core.Scaling(0.75, 0.75, 0.75)))
	mirrorMat := material.DefaultMaterial()
	mirrorMat.Color = core.NewColor(0.1, 0.1, 0.1)
	mirrorMat.Diffuse = 0.3
	mirrorMat.Specular = 1
	mirrorMat.Shininess = 300
	mirrorMat.Reflective = 0.9
	mirror.SetMaterial(mirrorMat)

	w := world.New(
		lights.NewPointLight(core.NewPoint(-5, 8, -9), core.White),
		floor, glass, bubble, mirror,
	)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 1.5, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}
}
