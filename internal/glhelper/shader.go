package glhelper

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// CompileError reports a shader stage that failed to compile. Log carries
// the driver info log.
type CompileError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link. Log carries the driver
// info log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// Program represents an OpenGL shader program. Sources are loaded first,
// then Create compiles and links them; GPU operations are only valid after
// a successful Create.
type Program struct {
	ID uint32

	vertexSrc   string
	fragmentSrc string

	// Uniform locations resolved once at link time. Asking for a name not
	// in this map is a programming error.
	uniforms map[string]int32
}

// UniformNames lists the uniforms every scene-viewer program declares; their
// locations are cached when the program links.
var UniformNames = []string{"model", "view", "projection", "texture_sampler"}

// LoadVertexShaderFromString stores the vertex shader source. No GPU work
// happens until Create.
func (p *Program) LoadVertexShaderFromString(src string) {
	p.vertexSrc = src
}

// LoadFragmentShaderFromString stores the fragment shader source. No GPU
// work happens until Create.
func (p *Program) LoadFragmentShaderFromString(src string) {
	p.fragmentSrc = src
}

// Create compiles both stages, links them into a program and caches the
// uniform locations. The stage objects are deleted after linking; only the
// program survives. On failure the returned error is a *CompileError or
// *LinkError carrying the driver info log.
func (p *Program) Create() error {
	vertexShader, err := compileShader(p.vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return err
	}

	fragmentShader, err := compileShader(p.fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		gl.DeleteShader(vertexShader)
		return err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		gl.DeleteProgram(program)
		return &LinkError{Log: strings.TrimRight(infoLog, "\x00")}
	}

	p.ID = program
	p.uniforms = make(map[string]int32, len(UniformNames))
	for _, name := range UniformNames {
		p.uniforms[name] = gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	}

	return nil
}

// compileShader compiles a single shader stage.
func compileShader(source string, shaderType uint32, stage string) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		gl.DeleteShader(shader)
		return 0, &CompileError{Stage: stage, Log: strings.TrimRight(infoLog, "\x00")}
	}

	return shader, nil
}

// Use activates the program for subsequent draws. Valid only after a
// successful Create.
func (p *Program) Use() {
	gl.UseProgram(p.ID)
}

// Delete releases the program object.
func (p *Program) Delete() {
	gl.DeleteProgram(p.ID)
	p.ID = 0
}

func (p *Program) location(name string) int32 {
	loc, ok := p.uniforms[name]
	if !ok {
		panic(fmt.Sprintf("glhelper: unknown uniform %q", name))
	}
	return loc
}

// SetMat4 writes a mat4 uniform by its cached location.
func (p *Program) SetMat4(name string, mat mgl32.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, &mat[0])
}

// SetInt writes an integer uniform by its cached location.
func (p *Program) SetInt(name string, value int32) {
	gl.Uniform1i(p.location(name), value)
}
