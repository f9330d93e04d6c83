package stilllife

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneLightCount is the fixed number of point lights the shader
// iterates over.
const SceneLightCount = 4

// Light is one point light source. FocalStrength is the specular
// exponent the shader raises the reflection term to; SpecularIntensity
// scales the resulting highlight.
type Light struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// sceneLights returns the four fixed lights of the still life: a key
// light in front above the table, two fills from the far corners, and
// a low back light behind the card box.
func sceneLights() [SceneLightCount]Light {
	return [SceneLightCount]Light{
		{
			Position:          mgl32.Vec3{0.0, 10.0, 20.0},
			AmbientColor:      mgl32.Vec3{0.3, 0.3, 0.3},
			DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:     mgl32.Vec3{1.0, 1.0, 1.0},
			FocalStrength:     42.0,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{-15.0, 10.0, -15.0},
			AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.2},
			DiffuseColor:      mgl32.Vec3{0.4, 0.4, 0.4},
			SpecularColor:     mgl32.Vec3{1.0, 1.0, 1.0},
			FocalStrength:     38.0,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{20.0, 10.0, 1.0},
			AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.2},
			DiffuseColor:      mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:     mgl32.Vec3{1.0, 1.0, 1.0},
			FocalStrength:     74.0,
			SpecularIntensity: 0.05,
		},
		{
			Position:          mgl32.Vec3{0.0, 0.0, -25.0},
			AmbientColor:      mgl32.Vec3{0.2, 0.2, 0.2},
			DiffuseColor:      mgl32.Vec3{1.0, 1.0, 1.0},
			SpecularColor:     mgl32.Vec3{1.0, 1.0, 1.0},
			FocalStrength:     26.0,
			SpecularIntensity: 0.05,
		},
	}
}

// uploadLights enables lighting and pushes every light's properties to
// the lightSources uniform array.
func uploadLights(shader UniformSetter, lights [SceneLightCount]Light) {
	shader.SetBool(uniformUseLighting, true)

	for i, light := range lights {
		prefix := fmt.Sprintf("lightSources[%d]", i)
		shader.SetVec3(prefix+".position", light.Position)
		shader.SetVec3(prefix+".ambientColor", light.AmbientColor)
		shader.SetVec3(prefix+".diffuseColor", light.DiffuseColor)
		shader.SetVec3(prefix+".specularColor", light.SpecularColor)
		shader.SetFloat(prefix+".focalStrength", light.FocalStrength)
		shader.SetFloat(prefix+".specularIntensity", light.SpecularIntensity)
	}
}
