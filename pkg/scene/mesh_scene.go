package scene

import (
	"fmt"
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
	"github.com/sco1/ray-tracer-challenge/pkg/geometry"
	"github.com/sco1/ray-tracer-challenge/pkg/lights"
	"github.com/sco1/ray-tracer-challenge/pkg/loaders"
	"github.com/sco1/ray-tracer-challenge/pkg/material"
	"github.com/sco1/ray-tracer-challenge/pkg/renderer"
	"github.com/sco1/ray-tracer-challenge/pkg/world"
)

// NewMeshScene loads a Wavefront OBJ mesh and places it over a checkered
// floor. The mesh's triangles keep the default material; adjust the source
// file's scale so it fits in roughly a 2-unit box around the origin.
func NewMeshScene(width, height int, objPath string) (*Scene, error) {
	data, err := loaders.LoadOBJFile(objPath)
	if err != nil {
		return nil, fmt.Errorf("loading mesh scene: %w", err)
	}

	mesh := data.DefaultGroup
	mesh.SetTransform(core.Translation(0, 1, 0))

	floor := geometry.NewPlane()
	floorMat := material.DefaultMaterial()
	floorMat.Pattern = material.NewCheckerPattern(
		core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.4, 0.4, 0.4),
	)
	floorMat.Specular = 0
	floor.SetMaterial(floorMat)

	w := world.New(
		lights.NewPointLight(core.NewPoint(-10, 10, -10), core.White),
		floor, mesh,
	)

	camera := renderer.NewCamera(width, height, math.Pi/3)
	camera.SetTransform(core.ViewTransform(
		core.NewPoint(0, 2, -5),
		core.NewPoint(0, 1, 0),
		core.NewVector(0, 1, 0),
	))

	return &Scene{World: w, Camera: camera}, nil
}
