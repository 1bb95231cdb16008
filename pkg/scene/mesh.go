// Package scene holds the CPU-side mesh representation and the Model type
// that owns a mesh's GPU buffers and pose.
package scene

import "fmt"

// Vertex attribute layout shared by every mesh: 8 interleaved float32 per
// vertex, split into three attribute slots.
const (
	FloatsPerVertex = 8

	// Byte stride of one vertex record and the byte offsets of the three
	// attribute slots within it.
	VertexStride   = FloatsPerVertex * 4
	PositionOffset = 0
	ColorOffset    = 12
	TexelOffset    = 24
)

// Mesh is an indexed triangle mesh. Vertices are stored as a column-major
// 8xN matrix: row count 8 (position 3, color 3, texture coordinate 2),
// column count N = vertex count. Column-major storage makes each column a
// contiguous 8-float vertex record, which is exactly the interleaved layout
// the GPU consumes. A mesh is immutable once its model has been uploaded.
type Mesh struct {
	vertices []float32
	indices  []uint32
}

// NewMesh validates and wraps vertex and index data. The vertex slice length
// must be a multiple of 8, the index count a multiple of 3, and every index
// must name a valid vertex column.
func NewMesh(vertices []float32, indices []uint32) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%FloatsPerVertex != 0 {
		return nil, fmt.Errorf("vertex data length %d is not a positive multiple of %d", len(vertices), FloatsPerVertex)
	}
	if len(indices)%3 != 0 {
		return nil, fmt.Errorf("index count %d is not divisible by 3", len(indices))
	}
	vertexCount := uint32(len(vertices) / FloatsPerVertex)
	for i, idx := range indices {
		if idx >= vertexCount {
			return nil, fmt.Errorf("index %d at position %d exceeds vertex count %d", idx, i, vertexCount)
		}
	}
	return &Mesh{vertices: vertices, indices: indices}, nil
}

// VertexCount returns the number of vertex columns.
func (m *Mesh) VertexCount() int {
	return len(m.vertices) / FloatsPerVertex
}

// IndexCount returns the number of triangle indices.
func (m *Mesh) IndexCount() int {
	return len(m.indices)
}

// Vertices returns the raw column-major vertex matrix.
func (m *Mesh) Vertices() []float32 {
	return m.vertices
}

// Indices returns the triangle index list.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// meshBuilder assembles the vertex matrix one column at a time, mirroring
// how the demo shapes author their vertices.
type meshBuilder struct {
	vertices []float32
}

func newMeshBuilder(vertexCount int) *meshBuilder {
	return &meshBuilder{vertices: make([]float32, vertexCount*FloatsPerVertex)}
}

// setVertex writes one column: position, color and texture coordinate.
func (b *meshBuilder) setVertex(col int, px, py, pz, r, g, bl, u, v float32) {
	base := col * FloatsPerVertex
	b.vertices[base+0] = px
	b.vertices[base+1] = py
	b.vertices[base+2] = pz
	b.vertices[base+3] = r
	b.vertices[base+4] = g
	b.vertices[base+5] = bl
	b.vertices[base+6] = u
	b.vertices[base+7] = v
}

func (b *meshBuilder) build(indices []uint32) (*Mesh, error) {
	return NewMesh(b.vertices, indices)
}
