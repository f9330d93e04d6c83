package stilllife

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaterialLibrary_FindFirstMatch(t *testing.T) {
	library := NewMaterialLibrary()
	library.Define(Material{Tag: "metal", Shininess: 12})
	library.Define(Material{Tag: "wood", Shininess: 4})
	library.Define(Material{Tag: "metal", Shininess: 99})

	assert.Equal(t, 3, library.Count())

	material, ok := library.Find("metal")
	require.True(t, ok)
	assert.Equal(t, float32(12), material.Shininess, "the earliest definition wins")
}

func TestMaterialLibrary_FindMiss(t *testing.T) {
	library := NewMaterialLibrary()
	library.Define(Material{Tag: "wood"})

	material, ok := library.Find("glass")
	assert.False(t, ok)
	assert.Equal(t, Material{}, material)
}

func TestMaterial_Apply(t *testing.T) {
	recorder := &uniformRecorder{}

	material := Material{
		Tag:             "metal",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 5.0,
		DiffuseColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		SpecularColor:   mgl32.Vec3{0.5, 0.5, 0.5},
		Shininess:       12.0,
	}
	material.apply(recorder)

	ambient, ok := recorder.last("material.ambientColor")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.2, 0.2, 0.2}, ambient)

	strength, ok := recorder.last("material.ambientStrength")
	require.True(t, ok)
	assert.Equal(t, float32(5.0), strength)

	shininess, ok := recorder.last("material.shininess")
	require.True(t, ok)
	assert.Equal(t, float32(12.0), shininess)
}
