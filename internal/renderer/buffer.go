package renderer

import (
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"
)

type VertexArray struct {
	id uint32
}

func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.id)
	return va
}

func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.id)
}

func (va *VertexArray) Release() {
	if va == nil || va.id == 0 {
		return
	}
	gl.DeleteVertexArrays(1, &va.id)
	va.id = 0
}

// Buffer is a GL buffer object bound to a fixed target such as
// gl.ARRAY_BUFFER or gl.ELEMENT_ARRAY_BUFFER.
type Buffer struct {
	id     uint32
	target uint32
}

func NewBuffer(target uint32) *Buffer {
	b := &Buffer{target: target}
	gl.GenBuffers(1, &b.id)
	return b
}

func (b *Buffer) Bind() {
	gl.BindBuffer(b.target, b.id)
}

func (b *Buffer) Release() {
	if b == nil || b.id == 0 {
		return
	}
	gl.DeleteBuffers(1, &b.id)
	b.id = 0
}

// Upload binds b and replaces its storage with data.
func Upload[T float32 | uint32](b *Buffer, data []T, usage uint32) {
	b.Bind()
	var zero T
	size := len(data) * int(unsafe.Sizeof(zero))
	if size == 0 {
		gl.BufferData(b.target, 0, nil, usage)
	} else {
		gl.BufferData(b.target, size, gl.Ptr(data), usage)
	}
}
