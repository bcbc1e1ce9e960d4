package lights

import (
	"math"

	"github.com/sco1/ray-tracer-challenge/pkg/core"
	"github.com/sco1/ray-tracer-challenge/pkg/material"
)

// PointLight is a light source with no size, existing at a single point and
// radiating in every direction with the given intensity
type PointLight struct {
	Position  core.Tuple
	Intensity core.Color
}

// NewPointLight creates a point light.
// Panics unless position is a point.
func NewPointLight(position core.Tuple, intensity core.Color) PointLight {
	if !position.IsPoint() {
		panic("lights: light position must be a point")
	}
	return PointLight{Position: position, Intensity: intensity}
}

// Lighting evaluates the Phong reflection model at a surface point, blending
// the ambient, diffuse and specular contributions.
//
// obj supplies the transform chain for pattern sampling and may be nil when
// the material has no pattern. When inShadow is set, the diffuse and
// specular terms are suppressed and only the ambient term survives.
//
// Panics unless surfPos is a point and eyeV and normalV are vectors.
func Lighting(m material.Material, obj material.Object, light PointLight, surfPos, eyeV, normalV core.Tuple, inShadow bool) core.Color {
	if !surfPos.IsPoint() {
		panic("lights: surface position must be a point")
	}
	if !eyeV.IsVector() {
		panic("lights: eye vector must be a vector")
	}
	if !normalV.IsVector() {
		panic("lights: normal vector must be a vector")
	}

	baseColor := m.Color
	if m.Pattern != nil {
		baseColor = material.AtObject(m.Pattern, obj, surfPos)
	}

	// Combine the surface color with the light's intensity, then the
	// ambient contribution is always present
	effectiveColor := baseColor.Hadamard(light.Intensity)
	ambient := effectiveColor.Multiply(m.Ambient)

	if inShadow {
		return ambient
	}

	lightV := light.Position.Subtract(surfPos).Normalize()
	lightDotNormal := lightV.Dot(normalV)

	diffuse := core.Black
	specular := core.Black
	if lightDotNormal >= 0 {
		// A negative value means the light is on the other side of the
		// surface, leaving diffuse and specular black
		diffuse = effectiveColor.Multiply(m.Diffuse * lightDotNormal)

		reflectV := lightV.Negate().Reflect(normalV)
		reflectDotEye := reflectV.Dot(eyeV)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Multiply(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
