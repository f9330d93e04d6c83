package stilllife

import (
	"fmt"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextureRegistry_Register(t *testing.T) {
	registry := NewTextureRegistry(nil)

	require.NoError(t, registry.register("wood", 3))
	require.NoError(t, registry.register("brick", 5))

	assert.Equal(t, 2, registry.Count())
	assert.Equal(t, int32(3), registry.FindTextureID("wood"))
	assert.Equal(t, int32(5), registry.FindTextureID("brick"))

	assert.Equal(t, int32(0), registry.FindTextureSlot("wood"))
	assert.Equal(t, int32(1), registry.FindTextureSlot("brick"))
}

func TestTextureRegistry_LookupMiss(t *testing.T) {
	registry := NewTextureRegistry(nil)
	require.NoError(t, registry.register("wood", 3))

	assert.Equal(t, int32(-1), registry.FindTextureID("marble"))
	assert.Equal(t, int32(-1), registry.FindTextureSlot("marble"))
}

func TestTextureRegistry_Capacity(t *testing.T) {
	registry := NewTextureRegistry(nil)

	for i := 0; i < MaxSceneTextures; i++ {
		require.NoError(t, registry.register(fmt.Sprintf("tex%d", i), uint32(i+1)))
	}
	assert.Equal(t, MaxSceneTextures, registry.Count())

	err := registry.register("overflow", 99)
	require.Error(t, err)
	assert.Equal(t, MaxSceneTextures, registry.Count())
	assert.Equal(t, int32(-1), registry.FindTextureSlot("overflow"))
}

func TestTextureRegistry_CreateGLTexture_MissingFile(t *testing.T) {
	registry := NewTextureRegistry(nil)

	ok := registry.CreateGLTexture("does-not-exist.jpg", "ghost")

	assert.False(t, ok)
	assert.Equal(t, 0, registry.Count())
}

func TestFlipVertical(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 3))
	top := color.RGBA{R: 255, A: 255}
	bottom := color.RGBA{B: 255, A: 255}
	src.SetRGBA(0, 0, top)
	src.SetRGBA(1, 0, top)
	src.SetRGBA(0, 2, bottom)
	src.SetRGBA(1, 2, bottom)

	flipped := flipVertical(src)

	assert.Equal(t, bottom, flipped.RGBAAt(0, 0))
	assert.Equal(t, bottom, flipped.RGBAAt(1, 0))
	assert.Equal(t, top, flipped.RGBAAt(0, 2))
	assert.Equal(t, top, flipped.RGBAAt(1, 2))
}
