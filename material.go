package stilllife

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Material is a classic ambient/diffuse/specular preset addressed by
// tag from the scene script.
type Material struct {
	Tag             string
	AmbientColor    mgl32.Vec3
	AmbientStrength float32
	DiffuseColor    mgl32.Vec3
	SpecularColor   mgl32.Vec3
	Shininess       float32
}

// MaterialLibrary is an ordered list of material presets. Lookup is a
// linear scan; the first entry with a matching tag wins.
type MaterialLibrary struct {
	materials []Material
}

func NewMaterialLibrary() *MaterialLibrary {
	return &MaterialLibrary{}
}

// Define appends a material preset. Duplicate tags are allowed; Find
// keeps returning the earliest one.
func (l *MaterialLibrary) Define(m Material) {
	l.materials = append(l.materials, m)
}

// Count returns the number of defined materials.
func (l *MaterialLibrary) Count() int {
	return len(l.materials)
}

// Find returns the first material defined under tag, and false if no
// material carries that tag.
func (l *MaterialLibrary) Find(tag string) (Material, bool) {
	for _, m := range l.materials {
		if m.Tag == tag {
			return m, true
		}
	}
	return Material{}, false
}

// apply uploads the material's properties to the shader.
func (m Material) apply(shader UniformSetter) {
	shader.SetVec3("material.ambientColor", m.AmbientColor)
	shader.SetFloat("material.ambientStrength", m.AmbientStrength)
	shader.SetVec3("material.diffuseColor", m.DiffuseColor)
	shader.SetVec3("material.specularColor", m.SpecularColor)
	shader.SetFloat("material.shininess", m.Shininess)
}
