// Package glhelper wraps the low-level OpenGL objects the scene viewer
// needs (window/context, shader programs, buffers, textures) in a more
// Go-friendly API. Everything here must run on the thread that owns the
// OpenGL context.
package glhelper

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// BufferObject represents an OpenGL buffer object (VBO or EBO). It provides
// a higher-level abstraction over raw OpenGL buffer IDs and operations.
type BufferObject struct {
	ID    uint32
	Type  uint32 // GL_ARRAY_BUFFER or GL_ELEMENT_ARRAY_BUFFER
	Size  int    // Size of the buffer in bytes
	Usage uint32
}

// BufferUsage represents different buffer usage patterns for OpenGL buffers.
type BufferUsage uint32

const (
	// StaticDraw indicates buffer contents will be specified once and used many times for drawing
	StaticDraw BufferUsage = gl.STATIC_DRAW
	// DynamicDraw indicates buffer contents will be changed frequently and used many times for drawing
	DynamicDraw BufferUsage = gl.DYNAMIC_DRAW
	// StreamDraw indicates buffer contents will be specified once and used a few times for drawing
	StreamDraw BufferUsage = gl.STREAM_DRAW
)

// VertexArrayObject represents an OpenGL vertex array object (VAO) that
// stores vertex attribute configurations.
type VertexArrayObject struct {
	ID uint32
}

// NewBufferObject creates a buffer object with the specified parameters and
// uploads data to it. The currently bound VAO captures element buffer
// bindings, so callers bind their VAO first.
func NewBufferObject(bufferType uint32, sizeInBytes int, data unsafe.Pointer, usage BufferUsage) *BufferObject {
	var bufferID uint32
	gl.GenBuffers(1, &bufferID)

	buffer := &BufferObject{
		ID:    bufferID,
		Type:  bufferType,
		Size:  sizeInBytes,
		Usage: uint32(usage),
	}

	buffer.Bind()
	gl.BufferData(bufferType, sizeInBytes, data, uint32(usage))

	return buffer
}

// NewVBO creates a vertex buffer object from a float32 slice.
func NewVBO(data []float32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), usage)
}

// NewEBO creates an element buffer object from a uint32 index slice.
func NewEBO(indices []uint32, usage BufferUsage) *BufferObject {
	return NewBufferObject(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), usage)
}

// Bind binds the buffer object to its type target.
func (bo *BufferObject) Bind() {
	gl.BindBuffer(bo.Type, bo.ID)
}

// Unbind unbinds the buffer object from its type target.
func (bo *BufferObject) Unbind() {
	gl.BindBuffer(bo.Type, 0)
}

// UpdateSubData updates a portion of the buffer with new data.
// The offset is in bytes from the start of the buffer.
func (bo *BufferObject) UpdateSubData(offset int, size int, data unsafe.Pointer) {
	bo.Bind()
	gl.BufferSubData(bo.Type, offset, size, data)
}

// Delete releases the buffer object and frees its resources.
func (bo *BufferObject) Delete() {
	gl.DeleteBuffers(1, &bo.ID)
	bo.ID = 0
}

// NewVAO creates a new vertex array object.
func NewVAO() *VertexArrayObject {
	var vaoID uint32
	gl.GenVertexArrays(1, &vaoID)

	return &VertexArrayObject{
		ID: vaoID,
	}
}

// Bind binds the vertex array object.
func (vao *VertexArrayObject) Bind() {
	gl.BindVertexArray(vao.ID)
}

// Unbind unbinds the vertex array object.
func (vao *VertexArrayObject) Unbind() {
	gl.BindVertexArray(0)
}

// Delete releases the vertex array object and frees its resources.
func (vao *VertexArrayObject) Delete() {
	gl.DeleteVertexArrays(1, &vao.ID)
	vao.ID = 0
}

// SetVertexAttribPointer sets up a vertex attribute pointer and enables the
// attribute. This configures how OpenGL will interpret vertex data for a
// specific attribute slot.
func (vao *VertexArrayObject) SetVertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
	gl.EnableVertexAttribArray(index)
}
