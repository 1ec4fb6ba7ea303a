package atlas

import "fmt"

const (
	// VertexStride is the number of float32 values per vertex: x, y, z, u, v.
	VertexStride    = 5
	VerticesPerQuad = 4
	IndicesPerQuad  = 6
)

// UVRect is a sub-rectangle of the atlas in normalized texture space.
type UVRect struct {
	U0, V0 float32
	U1, V1 float32
}

// Quad is an axis-aligned rectangle in world space textured with a region of the atlas.
type Quad struct {
	X, Y float32
	W, H float32
	UV   UVRect
}

// AddQuad appends the four vertices and six indices of a textured quad and
// returns the grown slices. Vertices are ordered top-left, bottom-left,
// bottom-right, top-right; the two triangles (0,1,2) and (0,2,3) are
// counter-clockwise. Indices are based at len(vertices)/VertexStride.
func AddQuad(vertices []float32, indices []uint32, x, y, w, h, u0, v0, u1, v1 float32) ([]float32, []uint32) {
	if len(vertices)%VertexStride != 0 {
		panic(fmt.Sprintf("atlas: vertex buffer length %d is not a multiple of %d", len(vertices), VertexStride))
	}
	start := uint32(len(vertices) / VertexStride)

	vertices = append(vertices,
		x, y+h, 0, u0, v1, // top-left
		x, y, 0, u0, v0, // bottom-left
		x+w, y, 0, u1, v0, // bottom-right
		x+w, y+h, 0, u1, v1, // top-right
	)
	indices = append(indices,
		start, start+1, start+2,
		start, start+2, start+3,
	)
	return vertices, indices
}
