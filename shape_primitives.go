package stilllife

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive conventions, shared with the scene script's placement
// constants:
//
//   - plane: 2x2 in the xz plane at y=0, normal +y
//   - box: unit cube centered at the origin
//   - cylinder family (cylinder, cone, tapered cylinder): base radius 1
//     at y=0, rising to y=1
//   - sphere: radius 1, centered
//   - torus: ring of major radius 1 and tube radius 0.25 in the xy
//     plane, axis +z
//   - pyramid: square base 1x1 at y=-0.5, apex at y=0.5
//   - prism: triangular cross-section in xy (base width 1 at y=0, apex
//     at y=1) extruded along z from -0.5 to 0.5

const (
	radialSegments = 36
	sphereStacks   = 18
	tubeSegments   = 18
	torusTube      = 0.25
)

// meshBuilder accumulates interleaved vertices and triangle indices.
type meshBuilder struct {
	vertices []float32
	indices  []uint32
}

func (b *meshBuilder) vertex(position, normal mgl32.Vec3, u, v float32) uint32 {
	idx := uint32(len(b.vertices) / vertexStride)
	b.vertices = append(b.vertices,
		position.X(), position.Y(), position.Z(),
		normal.X(), normal.Y(), normal.Z(),
		u, v,
	)
	return idx
}

func (b *meshBuilder) tri(i0, i1, i2 uint32) {
	b.indices = append(b.indices, i0, i1, i2)
}

func (b *meshBuilder) quad(i0, i1, i2, i3 uint32) {
	b.tri(i0, i1, i2)
	b.tri(i0, i2, i3)
}

func (b *meshBuilder) data() MeshData {
	return MeshData{Vertices: b.vertices, Indices: b.indices}
}

// faceNormal returns the unit normal of the triangle a-b-c.
func faceNormal(a, b, c mgl32.Vec3) mgl32.Vec3 {
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

func sincos(angle float64) (float32, float32) {
	s, c := math.Sincos(angle)
	return float32(s), float32(c)
}

func planeMeshData() MeshData {
	var b meshBuilder
	up := mgl32.Vec3{0, 1, 0}

	i0 := b.vertex(mgl32.Vec3{-1, 0, -1}, up, 0, 1)
	i1 := b.vertex(mgl32.Vec3{1, 0, -1}, up, 1, 1)
	i2 := b.vertex(mgl32.Vec3{1, 0, 1}, up, 1, 0)
	i3 := b.vertex(mgl32.Vec3{-1, 0, 1}, up, 0, 0)
	b.quad(i0, i3, i2, i1)

	return b.data()
}

func boxMeshData() MeshData {
	var b meshBuilder
	const h = 0.5

	faces := []struct {
		normal   mgl32.Vec3
		corners  [4]mgl32.Vec3
		uvOrigin int
	}{
		{mgl32.Vec3{0, 0, 1}, [4]mgl32.Vec3{{-h, -h, h}, {h, -h, h}, {h, h, h}, {-h, h, h}}, 0},
		{mgl32.Vec3{0, 0, -1}, [4]mgl32.Vec3{{h, -h, -h}, {-h, -h, -h}, {-h, h, -h}, {h, h, -h}}, 0},
		{mgl32.Vec3{1, 0, 0}, [4]mgl32.Vec3{{h, -h, h}, {h, -h, -h}, {h, h, -h}, {h, h, h}}, 0},
		{mgl32.Vec3{-1, 0, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {-h, -h, h}, {-h, h, h}, {-h, h, -h}}, 0},
		{mgl32.Vec3{0, 1, 0}, [4]mgl32.Vec3{{-h, h, h}, {h, h, h}, {h, h, -h}, {-h, h, -h}}, 0},
		{mgl32.Vec3{0, -1, 0}, [4]mgl32.Vec3{{-h, -h, -h}, {h, -h, -h}, {h, -h, h}, {-h, -h, h}}, 0},
	}

	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	for _, face := range faces {
		var idx [4]uint32
		for i, corner := range face.corners {
			idx[i] = b.vertex(corner, face.normal, uvs[i][0], uvs[i][1])
		}
		b.quad(idx[0], idx[1], idx[2], idx[3])
	}

	return b.data()
}

// revolvedMeshData builds a surface of revolution around the y axis
// rising from y=0 (bottomRadius) to y=1 (topRadius), with a bottom cap
// and, when topRadius > 0, a top cap. It covers the whole cylinder
// family: cylinder (1, 1), cone (1, 0), tapered cylinder (1, 0.5).
func revolvedMeshData(bottomRadius, topRadius float32) MeshData {
	var b meshBuilder

	// Side wall. The seam column is duplicated so UVs wrap cleanly.
	slope := bottomRadius - topRadius
	var side [radialSegments + 1][2]uint32
	for i := 0; i <= radialSegments; i++ {
		s, c := sincos(2 * math.Pi * float64(i) / radialSegments)
		normal := mgl32.Vec3{c, slope, s}.Normalize()
		u := float32(i) / radialSegments

		side[i][0] = b.vertex(mgl32.Vec3{bottomRadius * c, 0, bottomRadius * s}, normal, u, 0)
		side[i][1] = b.vertex(mgl32.Vec3{topRadius * c, 1, topRadius * s}, normal, u, 1)
	}
	for i := 0; i < radialSegments; i++ {
		b.quad(side[i][0], side[i][1], side[i+1][1], side[i+1][0])
	}

	// Bottom cap.
	down := mgl32.Vec3{0, -1, 0}
	bottomCenter := b.vertex(mgl32.Vec3{0, 0, 0}, down, 0.5, 0.5)
	var bottomRing [radialSegments + 1]uint32
	for i := 0; i <= radialSegments; i++ {
		s, c := sincos(2 * math.Pi * float64(i) / radialSegments)
		bottomRing[i] = b.vertex(mgl32.Vec3{bottomRadius * c, 0, bottomRadius * s}, down, 0.5+c/2, 0.5+s/2)
	}
	for i := 0; i < radialSegments; i++ {
		b.tri(bottomCenter, bottomRing[i], bottomRing[i+1])
	}

	// Top cap, absent on cones.
	if topRadius > 0 {
		up := mgl32.Vec3{0, 1, 0}
		topCenter := b.vertex(mgl32.Vec3{0, 1, 0}, up, 0.5, 0.5)
		var topRing [radialSegments + 1]uint32
		for i := 0; i <= radialSegments; i++ {
			s, c := sincos(2 * math.Pi * float64(i) / radialSegments)
			topRing[i] = b.vertex(mgl32.Vec3{topRadius * c, 1, topRadius * s}, up, 0.5+c/2, 0.5+s/2)
		}
		for i := 0; i < radialSegments; i++ {
			b.tri(topCenter, topRing[i+1], topRing[i])
		}
	}

	return b.data()
}

func cylinderMeshData() MeshData {
	return revolvedMeshData(1, 1)
}

func coneMeshData() MeshData {
	return revolvedMeshData(1, 0)
}

func taperedCylinderMeshData() MeshData {
	return revolvedMeshData(1, 0.5)
}

func sphereMeshData() MeshData {
	var b meshBuilder

	for stack := 0; stack <= sphereStacks; stack++ {
		phi := math.Pi * float64(stack) / sphereStacks
		y := float32(math.Cos(phi))
		ringRadius := float32(math.Sin(phi))

		for slice := 0; slice <= radialSegments; slice++ {
			s, c := sincos(2 * math.Pi * float64(slice) / radialSegments)
			position := mgl32.Vec3{ringRadius * c, y, ringRadius * s}
			u := float32(slice) / radialSegments
			v := 1 - float32(stack)/sphereStacks
			// Unit sphere: the position doubles as the normal.
			b.vertex(position, position, u, v)
		}
	}

	cols := uint32(radialSegments + 1)
	for stack := uint32(0); stack < sphereStacks; stack++ {
		for slice := uint32(0); slice < radialSegments; slice++ {
			i0 := stack*cols + slice
			i1 := i0 + cols
			b.quad(i0, i1, i1+1, i0+1)
		}
	}

	return b.data()
}

func torusMeshData() MeshData {
	var b meshBuilder
	const major = 1.0

	for i := 0; i <= radialSegments; i++ {
		su, cu := sincos(2 * math.Pi * float64(i) / radialSegments)
		for j := 0; j <= tubeSegments; j++ {
			sv, cv := sincos(2 * math.Pi * float64(j) / tubeSegments)

			position := mgl32.Vec3{
				(major + torusTube*cv) * cu,
				(major + torusTube*cv) * su,
				torusTube * sv,
			}
			normal := mgl32.Vec3{cv * cu, cv * su, sv}
			b.vertex(position, normal, float32(i)/radialSegments, float32(j)/tubeSegments)
		}
	}

	cols := uint32(tubeSegments + 1)
	for i := uint32(0); i < radialSegments; i++ {
		for j := uint32(0); j < tubeSegments; j++ {
			i0 := i*cols + j
			i1 := i0 + cols
			b.quad(i0, i1, i1+1, i0+1)
		}
	}

	return b.data()
}

func pyramid4MeshData() MeshData {
	var b meshBuilder
	const h = 0.5
	apex := mgl32.Vec3{0, h, 0}

	base := [4]mgl32.Vec3{
		{-h, -h, h},
		{h, -h, h},
		{h, -h, -h},
		{-h, -h, -h},
	}

	// Four slanted sides with flat per-face normals.
	for i := 0; i < 4; i++ {
		a := base[i]
		c := base[(i+1)%4]
		normal := faceNormal(a, c, apex)
		i0 := b.vertex(a, normal, 0, 0)
		i1 := b.vertex(c, normal, 1, 0)
		i2 := b.vertex(apex, normal, 0.5, 1)
		b.tri(i0, i1, i2)
	}

	down := mgl32.Vec3{0, -1, 0}
	uvs := [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	var idx [4]uint32
	for i := 0; i < 4; i++ {
		idx[i] = b.vertex(base[3-i], down, uvs[i][0], uvs[i][1])
	}
	b.quad(idx[0], idx[1], idx[2], idx[3])

	return b.data()
}

func prismMeshData() MeshData {
	var b meshBuilder
	const half = 0.5

	// Triangular cross-section in xy, extruded along z.
	front := [3]mgl32.Vec3{{-half, 0, half}, {half, 0, half}, {0, 1, half}}
	back := [3]mgl32.Vec3{{-half, 0, -half}, {half, 0, -half}, {0, 1, -half}}

	forward := mgl32.Vec3{0, 0, 1}
	f0 := b.vertex(front[0], forward, 0, 0)
	f1 := b.vertex(front[1], forward, 1, 0)
	f2 := b.vertex(front[2], forward, 0.5, 1)
	b.tri(f0, f1, f2)

	backward := mgl32.Vec3{0, 0, -1}
	k0 := b.vertex(back[1], backward, 0, 0)
	k1 := b.vertex(back[0], backward, 1, 0)
	k2 := b.vertex(back[2], backward, 0.5, 1)
	b.tri(k0, k1, k2)

	// Bottom plus the two slanted walls.
	walls := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for _, w := range walls {
		a, c := w[0], w[1]
		normal := faceNormal(back[a], back[c], front[a])
		i0 := b.vertex(back[a], normal, 0, 0)
		i1 := b.vertex(back[c], normal, 1, 0)
		i2 := b.vertex(front[c], normal, 1, 1)
		i3 := b.vertex(front[a], normal, 0, 1)
		b.quad(i0, i1, i2, i3)
	}

	return b.data()
}
