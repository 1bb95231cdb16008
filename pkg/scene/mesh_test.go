package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var oneVec = mgl32.Vec3{1, 1, 1}

func TestAttributeLayout(t *testing.T) {
	assert.Equal(t, 32, VertexStride)
	assert.Equal(t, 0, PositionOffset)
	assert.Equal(t, 12, ColorOffset)
	assert.Equal(t, 24, TexelOffset)
}

func TestNewMeshValidation(t *testing.T) {
	oneVertex := make([]float32, FloatsPerVertex)

	_, err := NewMesh(nil, nil)
	assert.Error(t, err, "empty vertex data")

	_, err = NewMesh(make([]float32, 7), nil)
	assert.Error(t, err, "vertex data not a multiple of 8")

	_, err = NewMesh(oneVertex, []uint32{0, 0})
	assert.Error(t, err, "index count not divisible by 3")

	_, err = NewMesh(oneVertex, []uint32{0, 0, 1})
	assert.Error(t, err, "out-of-range index")

	mesh, err := NewMesh(oneVertex, []uint32{0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, 1, mesh.VertexCount())
	assert.Equal(t, 3, mesh.IndexCount())
}

func TestDemoShapes(t *testing.T) {
	for name, mesh := range map[string]*Mesh{"pyramid": Pyramid(), "cube": Cube()} {
		t.Run(name, func(t *testing.T) {
			assert.Zero(t, len(mesh.Vertices())%FloatsPerVertex)
			assert.Zero(t, mesh.IndexCount()%3)
			for _, idx := range mesh.Indices() {
				assert.Less(t, idx, uint32(mesh.VertexCount()))
			}
		})
	}
}

func TestCubeTopRingElevated(t *testing.T) {
	// Vertices 4-7 form the top ring: same footprint as 0-3 but at y = 2.
	cube := Cube()
	require.Equal(t, 8, cube.VertexCount())
	verts := cube.Vertices()
	for col := 4; col < 8; col++ {
		base := col * FloatsPerVertex
		lower := (col - 4) * FloatsPerVertex
		assert.Equal(t, verts[lower+0], verts[base+0], "column %d x", col)
		assert.Equal(t, float32(2), verts[base+1], "column %d y", col)
		assert.Equal(t, verts[lower+2], verts[base+2], "column %d z", col)
	}
}

func TestModelMatrixScalesThenTranslates(t *testing.T) {
	m := NewModel(mgl32.Vec3{2, 2, 2}, mgl32.Vec3{1, -1, -15}, Pyramid())
	p := mgl32.TransformCoordinate(mgl32.Vec3{1, 1, 1}, m.ModelMatrix())
	assert.Equal(t, mgl32.Vec3{3, 1, -13}, p)
}

func TestModelNotUploadedByDefault(t *testing.T) {
	m := NewModel(oneVec, oneVec, Pyramid())
	assert.False(t, m.Uploaded())
	// Deleting an unuploaded model is a no-op, not a crash.
	m.Delete()
}
