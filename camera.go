package stilllife

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Camera is the fixed viewpoint of the still life. The scene never
// moves, so view and projection are uploaded once at startup.
type Camera struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3
	FovYDeg  float32
	Near     float32
	Far      float32
}

// defaultCamera frames the whole table: objects span roughly x -17..10,
// y 0..12, z -18..4.
func defaultCamera() *Camera {
	return &Camera{
		Position: mgl32.Vec3{0.0, 12.0, 26.0},
		Target:   mgl32.Vec3{-3.0, 5.0, -6.0},
		Up:       mgl32.Vec3{0.0, 1.0, 0.0},
		FovYDeg:  60.0,
		Near:     0.1,
		Far:      200.0,
	}
}

func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}

func (c *Camera) ProjectionMatrix(aspect float32) mgl32.Mat4 {
	return mgl32.Perspective(mgl32.DegToRad(c.FovYDeg), aspect, c.Near, c.Far)
}

// upload pushes the view, projection, and view-position uniforms.
func (c *Camera) upload(shader UniformSetter, aspect float32) {
	shader.SetMat4(uniformView, c.ViewMatrix())
	shader.SetMat4(uniformProjection, c.ProjectionMatrix(aspect))
	shader.SetVec3(uniformViewPos, c.Position)
}
