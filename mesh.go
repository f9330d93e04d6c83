package stilllife

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/google/uuid"
)

// vertexStride is the number of floats per vertex: position 3,
// normal 3, texture coordinate 2.
const vertexStride = 8

// MeshData is the CPU-side geometry of a primitive: interleaved
// vertices plus a triangle index list. Generators produce MeshData;
// newMesh uploads it.
type MeshData struct {
	Vertices []float32
	Indices  []uint32
}

func (d MeshData) VertexCount() int {
	return len(d.Vertices) / vertexStride
}

// Mesh is an uploaded vertex/index buffer pair. The id only serves
// debug logging.
type Mesh struct {
	id         string
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

func newMesh(data MeshData) *Mesh {
	m := &Mesh{
		id:         uuid.NewString(),
		indexCount: int32(len(data.Indices)),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data.Vertices)*4, gl.Ptr(data.Vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(data.Indices)*4, gl.Ptr(data.Indices), gl.STATIC_DRAW)

	stride := int32(vertexStride * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, stride, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 2, gl.FLOAT, false, stride, gl.PtrOffset(6*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	return m
}

func (m *Mesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

func (m *Mesh) Release() {
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteVertexArrays(1, &m.vao)
	m.vao, m.vbo, m.ebo, m.indexCount = 0, 0, 0, 0
}
