package stilllife

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// UniformSetter is the uniform-upload surface the scene script talks
// to. Shader implements it against OpenGL; tests implement it with a
// recorder.
type UniformSetter interface {
	SetMat4(name string, value mgl32.Mat4)
	SetVec2(name string, value mgl32.Vec2)
	SetVec3(name string, value mgl32.Vec3)
	SetVec4(name string, value mgl32.Vec4)
	SetFloat(name string, value float32)
	SetInt(name string, value int32)
	SetBool(name string, value bool)
	SetSampler2D(name string, slot int32)
}

// Shader wraps a linked GL program and caches uniform locations so the
// per-draw uniform churn of the scene script does not re-query them.
type Shader struct {
	program   uint32
	locations map[string]int32
}

func NewShader(vertexSource, fragmentSource string) (*Shader, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))
		gl.DeleteShader(vertexShader)
		gl.DeleteShader(fragmentShader)
		return nil, fmt.Errorf("link error: %s", infoLog)
	}

	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return &Shader{
		program:   program,
		locations: make(map[string]int32),
	}, nil
}

func compileShader(shaderType uint32, source string) (uint32, error) {
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
		return 0, fmt.Errorf("compile error: %s", infoLog)
	}
	return shader, nil
}

func (s *Shader) Use() {
	gl.UseProgram(s.program)
}

func (s *Shader) Release() {
	gl.DeleteProgram(s.program)
	s.locations = make(map[string]int32)
}

// location returns the cached uniform location, querying GL on the
// first request for each name. Unknown names yield -1, which the
// setters treat as a silent no-op, matching GL semantics.
func (s *Shader) location(name string) int32 {
	if loc, ok := s.locations[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(s.program, gl.Str(name+"\x00"))
	s.locations[name] = loc
	return loc
}

func (s *Shader) SetMat4(name string, value mgl32.Mat4) {
	if loc := s.location(name); loc != -1 {
		gl.UniformMatrix4fv(loc, 1, false, &value[0])
	}
}

func (s *Shader) SetVec2(name string, value mgl32.Vec2) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform2f(loc, value.X(), value.Y())
	}
}

func (s *Shader) SetVec3(name string, value mgl32.Vec3) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform3f(loc, value.X(), value.Y(), value.Z())
	}
}

func (s *Shader) SetVec4(name string, value mgl32.Vec4) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform4f(loc, value.X(), value.Y(), value.Z(), value.W())
	}
}

func (s *Shader) SetFloat(name string, value float32) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform1f(loc, value)
	}
}

func (s *Shader) SetInt(name string, value int32) {
	if loc := s.location(name); loc != -1 {
		gl.Uniform1i(loc, value)
	}
}

func (s *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	s.SetInt(name, v)
}

func (s *Shader) SetSampler2D(name string, slot int32) {
	s.SetInt(name, slot)
}

// RendererModule compiles the scene shader and installs it as a
// resource. Requires a live GL context, so it must be installed after
// PlatformWindowModule.
type RendererModule struct {
}

func (m RendererModule) Install(app *App) {
	shader, err := NewShader(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		panic(err)
	}
	app.AddResources(shader)
	app.UseSystem(System(releaseShaderSystem).InStage(Finale))
}

func releaseShaderSystem(shader *Shader) {
	shader.Release()
}
