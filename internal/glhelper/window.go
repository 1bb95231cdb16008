package glhelper

import (
	"fmt"
	"log"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Window handles GLFW window creation and management. The scene viewer uses
// a single fixed-size window; the OpenGL context lives and dies with it.
type Window struct {
	glfwWindow *glfw.Window
	width      int
	height     int
	title      string
}

// NewWindow creates a non-resizable GLFW window with an OpenGL 3.2 core
// forward-compatible context and makes it current on the calling thread.
func NewWindow(width, height int, title string) (*Window, error) {
	// Initialize GLFW
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.SetErrorCallback(func(code glfw.ErrorCode, description string) {
		log.Printf("GLFW error 0x%x: %s", code, description)
	})

	// Configure GLFW
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 2)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	// Create window
	glfwWindow, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glfwWindow.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	// Initialize OpenGL
	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	// The framebuffer may differ from the window size on high-DPI displays.
	fbWidth, fbHeight := glfwWindow.GetFramebufferSize()
	gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))

	return &Window{
		glfwWindow: glfwWindow,
		width:      width,
		height:     height,
		title:      title,
	}, nil
}

// Clear clears the color and depth buffers to an opaque black background.
func (w *Window) Clear() {
	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// SwapBuffers swaps the front and back buffers.
func (w *Window) SwapBuffers() {
	w.glfwWindow.SwapBuffers()
}

// PollEvents processes pending events, running any registered callbacks.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// ShouldClose returns whether the window should close.
func (w *Window) ShouldClose() bool {
	return w.glfwWindow.ShouldClose()
}

// SetShouldClose flags the window for closing; the frame loop observes the
// flag at the top of its next iteration.
func (w *Window) SetShouldClose(value bool) {
	w.glfwWindow.SetShouldClose(value)
}

// Close destroys the window and tears down GLFW. All GPU objects owned by
// the context must be released before calling this.
func (w *Window) Close() {
	w.glfwWindow.Destroy()
	glfw.Terminate()
}

// Size returns the window dimensions.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// AspectRatio returns width over height as a float ratio.
func (w *Window) AspectRatio() float32 {
	return float32(w.width) / float32(w.height)
}

// CaptureCursor hides the cursor and locks it to the window so that mouse
// motion produces unbounded position deltas.
func (w *Window) CaptureCursor() {
	w.glfwWindow.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
}

// GLFWWindow returns the underlying GLFW window for callback registration.
func (w *Window) GLFWWindow() *glfw.Window {
	return w.glfwWindow
}
