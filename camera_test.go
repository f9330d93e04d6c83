package stilllife

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCamera_ViewMatrixCentersEye(t *testing.T) {
	camera := defaultCamera()

	eye := camera.ViewMatrix().Mul4x1(camera.Position.Vec4(1))

	assert.InDelta(t, 0, eye.X(), 1e-5)
	assert.InDelta(t, 0, eye.Y(), 1e-5)
	assert.InDelta(t, 0, eye.Z(), 1e-5)
}

func TestCamera_TargetLiesAheadOfEye(t *testing.T) {
	camera := defaultCamera()

	target := camera.ViewMatrix().Mul4x1(camera.Target.Vec4(1))

	// view space looks down -z
	assert.Less(t, target.Z(), float32(0))
}

func TestCamera_Upload(t *testing.T) {
	recorder := &uniformRecorder{}
	camera := defaultCamera()

	camera.upload(recorder, 16.0/9.0)

	view, ok := recorder.last(uniformView)
	require.True(t, ok)
	assert.Equal(t, camera.ViewMatrix(), view)

	projection, ok := recorder.last(uniformProjection)
	require.True(t, ok)
	assert.Equal(t, camera.ProjectionMatrix(16.0/9.0), projection)

	position, ok := recorder.last(uniformViewPos)
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0, 12, 26}, position)
}
