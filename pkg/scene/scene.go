package scene

import (
	"github.com/sco1/ray-tracer-challenge/pkg/renderer"
	"github.com/sco1/ray-tracer-challenge/pkg/world"
)

// Scene pairs a world with the camera that views it, ready to render
type Scene struct {
	World  *world.World
	Camera *renderer.Camera
}

// Render traces the scene into a canvas
func (s *Scene) Render() *renderer.Canvas {
	return s.Camera.Render(s.World)
}
