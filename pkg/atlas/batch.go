package atlas

// Batch accumulates quads that share one texture atlas into a single
// vertex/index buffer pair suitable for one indexed draw call.
type Batch struct {
	vertices []float32
	indices  []uint32
}

func NewBatch(capacityQuads int) *Batch {
	if capacityQuads < 0 {
		capacityQuads = 0
	}
	return &Batch{
		vertices: make([]float32, 0, capacityQuads*VerticesPerQuad*VertexStride),
		indices:  make([]uint32, 0, capacityQuads*IndicesPerQuad),
	}
}

func (b *Batch) Add(q Quad) {
	b.AddQuad(q.X, q.Y, q.W, q.H, q.UV)
}

func (b *Batch) AddQuad(x, y, w, h float32, uv UVRect) {
	b.vertices, b.indices = AddQuad(b.vertices, b.indices, x, y, w, h, uv.U0, uv.V0, uv.U1, uv.V1)
}

// Vertices returns the packed vertex data. The slice is shared with the batch.
func (b *Batch) Vertices() []float32 {
	return b.vertices
}

// Indices returns the index data. The slice is shared with the batch.
func (b *Batch) Indices() []uint32 {
	return b.indices
}

func (b *Batch) VertexCount() int {
	return len(b.vertices) / VertexStride
}

func (b *Batch) IndexCount() int {
	return len(b.indices)
}

func (b *Batch) QuadCount() int {
	return len(b.indices) / IndicesPerQuad
}
