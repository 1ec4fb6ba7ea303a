package renderer

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/kjkrol/goquad/pkg/atlas"
)

const floatSize = 4

// Mesh is a batch uploaded once to static vertex and index buffers.
type Mesh struct {
	vao        *VertexArray
	vbo        *Buffer
	ebo        *Buffer
	indexCount int32
}

// NewMesh uploads batch and describes its layout: location 0 is the vec3
// position, location 1 the vec2 atlas coordinate.
func NewMesh(batch *atlas.Batch) *Mesh {
	m := &Mesh{
		vao:        NewVertexArray(),
		vbo:        NewBuffer(gl.ARRAY_BUFFER),
		ebo:        NewBuffer(gl.ELEMENT_ARRAY_BUFFER),
		indexCount: int32(batch.IndexCount()),
	}
	m.vao.Bind()
	Upload(m.vbo, batch.Vertices(), gl.STATIC_DRAW)
	Upload(m.ebo, batch.Indices(), gl.STATIC_DRAW)

	stride := int32(atlas.VertexStride * floatSize)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*floatSize))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	return m
}

func (m *Mesh) Draw() {
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, gl.PtrOffset(0))
}

func (m *Mesh) Release() {
	if m == nil {
		return
	}
	m.ebo.Release()
	m.vbo.Release()
	m.vao.Release()
}
