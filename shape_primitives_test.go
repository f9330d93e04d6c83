package stilllife

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func meshVertexAt(data MeshData, i int) (position, normal mgl32.Vec3, uv mgl32.Vec2) {
	v := data.Vertices[i*vertexStride : (i+1)*vertexStride]
	return mgl32.Vec3{v[0], v[1], v[2]}, mgl32.Vec3{v[3], v[4], v[5]}, mgl32.Vec2{v[6], v[7]}
}

func TestMeshData_Wellformed(t *testing.T) {
	shapes := map[string]func() MeshData{
		"plane":           planeMeshData,
		"box":             boxMeshData,
		"cylinder":        cylinderMeshData,
		"cone":            coneMeshData,
		"taperedCylinder": taperedCylinderMeshData,
		"sphere":          sphereMeshData,
		"torus":           torusMeshData,
		"pyramid":         pyramid4MeshData,
		"prism":           prismMeshData,
	}

	for name, generate := range shapes {
		t.Run(name, func(t *testing.T) {
			data := generate()

			require.NotEmpty(t, data.Vertices)
			require.NotEmpty(t, data.Indices)

			assert.Zero(t, len(data.Vertices)%vertexStride, "vertex data must be a whole number of vertices")
			assert.Zero(t, len(data.Indices)%3, "index data must be a whole number of triangles")

			vertexCount := data.VertexCount()
			for _, idx := range data.Indices {
				require.Less(t, int(idx), vertexCount, "index out of range")
			}

			for i := 0; i < vertexCount; i++ {
				_, normal, uv := meshVertexAt(data, i)
				assert.InDelta(t, 1.0, float64(normal.Len()), 1e-4, "vertex %d normal must be unit length", i)
				assert.GreaterOrEqual(t, uv.X(), float32(0))
				assert.LessOrEqual(t, uv.X(), float32(1))
				assert.GreaterOrEqual(t, uv.Y(), float32(0))
				assert.LessOrEqual(t, uv.Y(), float32(1))
			}
		})
	}
}

func TestPlaneMeshData_Bounds(t *testing.T) {
	data := planeMeshData()

	for i := 0; i < data.VertexCount(); i++ {
		position, normal, _ := meshVertexAt(data, i)
		assert.Zero(t, position.Y(), "plane lies at y=0")
		assert.LessOrEqual(t, float64(math.Abs(float64(position.X()))), 1.0)
		assert.LessOrEqual(t, float64(math.Abs(float64(position.Z()))), 1.0)
		assert.Equal(t, mgl32.Vec3{0, 1, 0}, normal)
	}
}

func TestBoxMeshData_Bounds(t *testing.T) {
	data := boxMeshData()

	assert.Equal(t, 24, data.VertexCount(), "four vertices per face")
	assert.Equal(t, 36, len(data.Indices), "two triangles per face")

	for i := 0; i < data.VertexCount(); i++ {
		position, _, _ := meshVertexAt(data, i)
		for axis := 0; axis < 3; axis++ {
			assert.InDelta(t, 0.5, math.Abs(float64(position[axis])), 1e-6, "box corners sit on the unit cube shell")
		}
	}
}

func TestRevolvedMeshData_Bounds(t *testing.T) {
	cases := map[string]struct {
		data      MeshData
		topRadius float64
	}{
		"cylinder":        {cylinderMeshData(), 1},
		"cone":            {coneMeshData(), 0},
		"taperedCylinder": {taperedCylinderMeshData(), 0.5},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < tc.data.VertexCount(); i++ {
				position, _, _ := meshVertexAt(tc.data, i)
				y := float64(position.Y())
				radius := math.Hypot(float64(position.X()), float64(position.Z()))

				assert.GreaterOrEqual(t, y, 0.0)
				assert.LessOrEqual(t, y, 1.0)

				// radius shrinks linearly from 1 at the base to
				// topRadius at the top
				maxRadius := 1 + (tc.topRadius-1)*y
				assert.LessOrEqual(t, radius, maxRadius+1e-5)
			}
		})
	}
}

func TestSphereMeshData_UnitRadius(t *testing.T) {
	data := sphereMeshData()

	for i := 0; i < data.VertexCount(); i++ {
		position, normal, _ := meshVertexAt(data, i)
		assert.InDelta(t, 1.0, float64(position.Len()), 1e-4)
		assert.Equal(t, position, normal, "unit sphere normals equal positions")
	}
}

func TestTorusMeshData_Bounds(t *testing.T) {
	data := torusMeshData()

	for i := 0; i < data.VertexCount(); i++ {
		position, _, _ := meshVertexAt(data, i)

		assert.LessOrEqual(t, math.Abs(float64(position.Z())), 0.25+1e-5, "tube never leaves the z band")

		ringDistance := math.Hypot(float64(position.X()), float64(position.Y()))
		assert.GreaterOrEqual(t, ringDistance, 0.75-1e-5)
		assert.LessOrEqual(t, ringDistance, 1.25+1e-5)
	}
}

func TestPyramid4MeshData_Bounds(t *testing.T) {
	data := pyramid4MeshData()

	var apexSeen bool
	for i := 0; i < data.VertexCount(); i++ {
		position, _, _ := meshVertexAt(data, i)
		assert.GreaterOrEqual(t, position.Y(), float32(-0.5))
		assert.LessOrEqual(t, position.Y(), float32(0.5))
		if position == (mgl32.Vec3{0, 0.5, 0}) {
			apexSeen = true
		}
	}
	assert.True(t, apexSeen, "apex vertex present")
}

func TestPrismMeshData_Bounds(t *testing.T) {
	data := prismMeshData()

	for i := 0; i < data.VertexCount(); i++ {
		position, _, _ := meshVertexAt(data, i)
		assert.InDelta(t, 0.5, math.Abs(float64(position.Z())), 1e-6, "prism spans z -0.5..0.5")
		assert.GreaterOrEqual(t, position.Y(), float32(0))
		assert.LessOrEqual(t, position.Y(), float32(1))
	}
}
