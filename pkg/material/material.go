package material

import "github.com/sco1/ray-tracer-challenge/pkg/core"

// Material holds the Phong reflection model attributes for a surface.
// Ambient, Diffuse and Specular are typically between 0 and 1, Shininess
// between 10 and 200. Reflective is 0 for matte surfaces and 1 for a perfect
// mirror; Transparency is 0 for opaque surfaces and 1 for clear glass.
type Material struct {
	Color           core.Color
	Pattern         Pattern // optional; overrides Color when set
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// DefaultMaterial returns a material with the standard Phong defaults:
// white, mostly diffuse, opaque, non-reflective
func DefaultMaterial() Material {
	return Material{
		Color:           core.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
}

// Validate panics if any reflection attribute is negative.
// A negative coefficient is a defect in scene-construction code; surfacing it
// at construction time beats rendering garbage.
func (m Material) Validate() Material {
	for _, val := range []float64{
		m.Ambient, m.Diffuse, m.Specular, m.Shininess,
		m.Reflective, m.Transparency, m.RefractiveIndex,
	} {
		if val < 0 {
			panic("material: reflection attributes must be non-negative")
		}
	}
	return m
}
