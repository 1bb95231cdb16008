// Package render owns the camera and the frame loop: it polls input,
// derives the view and projection matrices from the camera controller, and
// draws every model in order each frame.
package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/fvillanueva/go-sceneview/internal/glhelper"
	"github.com/fvillanueva/go-sceneview/pkg/scene"
	"github.com/fvillanueva/go-sceneview/pkg/transform"
)

// drawItem pairs a model with the texture it is drawn with.
type drawItem struct {
	model   *scene.Model
	texture uint32
}

// Renderer orchestrates the per-frame protocol: poll input, drain held
// keys into camera moves, clear, bind the program, draw each model, swap.
// Everything runs on the thread owning the OpenGL context.
type Renderer struct {
	window     *glhelper.Window
	program    *glhelper.Program
	controller *CameraController

	items     []drawItem
	wireframe bool

	// Keys currently held, indexed by GLFW key code. The key callback
	// records transitions; the frame loop drains the array into camera
	// translation calls, one per held key per frame.
	heldKeys [glfw.KeyLast + 1]bool

	// Cursor tracking. The first sample only seeds the last position so
	// it cannot produce a spurious delta.
	lastX, lastY float64
	firstCursor  bool

	nearPlane float32
	farPlane  float32
}

// NewRenderer creates the window and context, compiles the shader program
// and wires the input callbacks. The shipped polygon mode is wireframe;
// SetWireframe(false) switches to solid fill.
func NewRenderer(width, height int, title string) (*Renderer, error) {
	window, err := glhelper.NewWindow(width, height, title)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	program := &glhelper.Program{}
	program.LoadVertexShaderFromString(vertexShaderSrc)
	program.LoadFragmentShaderFromString(fragmentShaderSrc)
	if err := program.Create(); err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r := &Renderer{
		window:      window,
		program:     program,
		controller:  NewCameraController(mgl32.Vec3{0, 0, 0}),
		wireframe:   true,
		firstCursor: true,
		nearPlane:   0.1,
		farPlane:    20.0,
	}

	// The callbacks close over the renderer, so no process-wide state is
	// needed to reach the controller or the held-keys array.
	window.GLFWWindow().SetKeyCallback(r.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(r.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(r.scrollCallback)
	window.CaptureCursor()

	return r, nil
}

// Controller returns the camera controller driven by the input callbacks.
func (r *Renderer) Controller() *CameraController {
	return r.controller
}

// SetWireframe selects between wireframe and solid polygon fill for both
// faces.
func (r *Renderer) SetWireframe(wireframe bool) {
	r.wireframe = wireframe
}

// AddModel appends a model to the draw list with the texture it will be
// sampled with. Models draw in the order they were added. The model is
// uploaded here if it has not been yet.
func (r *Renderer) AddModel(model *scene.Model, texture uint32) {
	if !model.Uploaded() {
		model.SetVerticesIntoGpu()
	}
	r.items = append(r.items, drawItem{model: model, texture: texture})
}

// keyCallback flags the window for closing on Escape and records every
// other key transition in the held-keys array.
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		r.window.SetShouldClose(true)
		return
	}
	if key < 0 || int(key) >= len(r.heldKeys) {
		return
	}
	switch action {
	case glfw.Press:
		r.heldKeys[key] = true
	case glfw.Release:
		r.heldKeys[key] = false
	}
}

// cursorPosCallback converts cursor deltas into sensitivity-scaled yaw and
// pitch offsets. Screen y grows downward, so the pitch delta is inverted.
func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if r.firstCursor {
		r.lastX = xpos
		r.lastY = ypos
		r.firstCursor = false
		return
	}

	sensitivity := r.controller.RotationSensitivity()
	r.controller.AddYawOffset(sensitivity * float32(xpos-r.lastX))
	r.controller.AddPitchOffset(sensitivity * float32(r.lastY-ypos))

	r.lastX = xpos
	r.lastY = ypos
}

func (r *Renderer) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	r.controller.AdjustZoom(float32(yoffset))
}

// updateCameraPose drains the held-keys array into translation calls, one
// per held movement key per frame.
func (r *Renderer) updateCameraPose() {
	if r.heldKeys[glfw.KeyW] {
		r.controller.MoveFront()
	}
	if r.heldKeys[glfw.KeyS] {
		r.controller.MoveBack()
	}
	if r.heldKeys[glfw.KeyA] {
		r.controller.MoveLeft()
	}
	if r.heldKeys[glfw.KeyD] {
		r.controller.MoveRight()
	}
}

// renderScene executes one frame's draw pass.
func (r *Renderer) renderScene(projection, view mgl32.Mat4) {
	r.window.Clear()

	r.program.Use()

	mode := uint32(gl.FILL)
	if r.wireframe {
		mode = gl.LINE
	}
	gl.PolygonMode(gl.FRONT_AND_BACK, mode)

	for _, item := range r.items {
		item.model.Draw(r.program, projection, view, item.texture)
	}
}

// Run drives the frame loop until the window is flagged for closing, then
// releases all GPU resources in dependency order: models first, then the
// program, then the window and its context.
func (r *Renderer) Run() {
	for !r.window.ShouldClose() {
		// Input callbacks run synchronously inside the poll, so the
		// frame below sees a settled camera pose.
		r.window.PollEvents()
		r.updateCameraPose()

		view := r.controller.ViewMatrix()
		projection := transform.Perspective(r.controller.Zoom(), r.window.AspectRatio(), r.nearPlane, r.farPlane)

		r.renderScene(projection, view)

		r.window.SwapBuffers()
		glhelper.CheckError("frame")
	}

	r.Cleanup()
}

// Cleanup releases models, the shader program and finally the window. Must
// run on the context thread.
func (r *Renderer) Cleanup() {
	for _, item := range r.items {
		item.model.Delete()
	}
	r.items = nil
	r.program.Delete()
	r.window.Close()
}
