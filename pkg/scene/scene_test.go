package scene

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSceneConstruction(t *testing.T) {
	tests := []struct {
		name       string
		build      func() *Scene
		minObjects int
	}{
		{name: "default", build: func() *Scene { return NewDefaultScene(100, 50) }, minObjects: 4},
		{name: "glass", build: func() *Scene { return NewGlassScene(100, 50) }, minObjects: 3},
		{name: "csg", build: func() *Scene { return NewCSGScene(100, 50) }, minObjects: 1},
		{name: "hexagon", build: func() *Scene { return NewHexagonScene(100, 50) }, minObjects: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.build()
			if s.Camera.HSize != 100 || s.Camera.VSize != 50 {
				t.Errorf("Expected a 100x50 camera, got %dx%d", s.Camera.HSize, s.Camera.VSize)
			}
			if len(s.World.Objects) < tt.minObjects {
				t.Errorf("Expected at least %d objects, got %d", tt.minObjects, len(s.World.Objects))
			}
		})
	}
}

func TestSceneRender(t *testing.T) {
	// A tiny canvas keeps the full trace fast while still exercising the
	// whole camera-world-shading pipeline
	s := NewDefaultScene(10, 5)
	img := s.Render()

	if img.Width != 10 || img.Height != 5 {
		t.Errorf("Expected a 10x5 canvas, got %dx%d", img.Width, img.Height)
	}
}

func TestNewMeshScene(t *testing.T) {
	t.Run("missing obj file", func(t *testing.T) {
		if _, err := NewMeshScene(100, 50, "no/such/file.obj"); err == nil {
			t.Errorf("Expected an error for a missing file")
		}
	})

	t.Run("valid obj file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "tri.obj")
		src := "v 0 1 0\nv -1 0 0\nv 1 0 0\nf 1 2 3\n"
		if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
			t.Fatalf("Writing fixture: %v", err)
		}

		s, err := NewMeshScene(100, 50, path)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(s.World.Objects) < 2 {
			t.Errorf("Expected the mesh and floor in the world, got %d objects", len(s.World.Objects))
		}
	})
}
