package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fvillanueva/go-sceneview/internal/glhelper"
	"github.com/fvillanueva/go-sceneview/pkg/transform"
)

// Model owns a mesh, its pose, and the GPU buffer triple the mesh is
// uploaded into. The triple is either all nil (not uploaded) or all valid;
// Delete releases it. Orientation is identity in this viewer, so the model
// matrix is translate composed with scale.
type Model struct {
	mesh        *Mesh
	scale       mgl32.Vec3
	translation mgl32.Vec3

	vao *glhelper.VertexArrayObject
	vbo *glhelper.BufferObject
	ebo *glhelper.BufferObject
}

// NewModel creates a model around a mesh with the given pose. The mesh is
// not uploaded until SetVerticesIntoGpu.
func NewModel(scale, translation mgl32.Vec3, mesh *Mesh) *Model {
	return &Model{
		mesh:        mesh,
		scale:       scale,
		translation: translation,
	}
}

// Mesh returns the model's mesh.
func (m *Model) Mesh() *Mesh {
	return m.mesh
}

// Uploaded reports whether the mesh has been sent to the GPU.
func (m *Model) Uploaded() bool {
	return m.vao != nil
}

// SetVerticesIntoGpu allocates the vertex array, vertex buffer and element
// buffer, uploads the vertex matrix as tightly packed 8-float records, and
// declares the three attribute slots (position, color, texture coordinate)
// against the vertex buffer. Uploading a model twice is a programming
// error and panics.
func (m *Model) SetVerticesIntoGpu() {
	if m.Uploaded() {
		panic("scene: model uploaded twice")
	}

	m.vao = glhelper.NewVAO()
	m.vao.Bind()

	m.vbo = glhelper.NewVBO(m.mesh.Vertices(), glhelper.StaticDraw)
	m.ebo = glhelper.NewEBO(m.mesh.Indices(), glhelper.StaticDraw)

	m.vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, VertexStride, PositionOffset)
	m.vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, VertexStride, ColorOffset)
	m.vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, VertexStride, TexelOffset)

	m.vao.Unbind()
}

// ModelMatrix derives the model-to-world transform from the pose.
func (m *Model) ModelMatrix() mgl32.Mat4 {
	return transform.Translate(m.translation).Mul4(transform.Scale(m.scale))
}

// Draw writes the model/view/projection uniforms, binds the texture to
// unit 0 and issues the indexed triangle draw. The caller guarantees the
// program is in use, the texture is valid and the mesh has been uploaded.
func (m *Model) Draw(program *glhelper.Program, projection, view mgl32.Mat4, texture uint32) {
	program.SetMat4("model", m.ModelMatrix())
	program.SetMat4("view", view)
	program.SetMat4("projection", projection)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	program.SetInt("texture_sampler", 0)

	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(m.mesh.IndexCount()), gl.UNSIGNED_INT, gl.PtrOffset(0))
	m.vao.Unbind()
}

// Delete releases the GPU buffer triple. Safe to call on a model that was
// never uploaded.
func (m *Model) Delete() {
	if !m.Uploaded() {
		return
	}
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
	m.vao, m.vbo, m.ebo = nil, nil, nil
}
