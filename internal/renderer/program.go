package renderer

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

var (
	ErrShaderCompile = errors.New("shader compile error")
	ErrProgramLink   = errors.New("program link error")
	ErrUniformType   = errors.New("unsupported uniform type")
)

// Program is a linked shader program. Compile each stage, then Link.
// Uniform setters act on the program currently in use.
type Program struct {
	id       uint32
	shaders  []uint32
	uniforms map[string]int32
}

func NewProgram() *Program {
	return &Program{
		id:       gl.CreateProgram(),
		uniforms: make(map[string]int32),
	}
}

// NewQuadProgram compiles and links the embedded quad shader.
func NewQuadProgram() (*Program, error) {
	p := NewProgram()
	for _, stage := range []Stage{StageVertex, StageFragment} {
		if err := p.Compile(stage, QuadShaderSource(stage)); err != nil {
			p.Release()
			return nil, err
		}
	}
	if err := p.Link(); err != nil {
		p.Release()
		return nil, err
	}
	return p, nil
}

func (p *Program) Compile(stage Stage, source string) error {
	var shaderType uint32
	switch stage {
	case StageVertex:
		shaderType = gl.VERTEX_SHADER
	case StageFragment:
		shaderType = gl.FRAGMENT_SHADER
	default:
		return fmt.Errorf("%w: unknown stage %d", ErrShaderCompile, int(stage))
	}
	shader, err := compileShader(shaderType, source)
	if err != nil {
		slog.Error("Shader compilation failed", "stage", stage, "error", err)
		return fmt.Errorf("%s: %w", stage, err)
	}
	p.shaders = append(p.shaders, shader)
	return nil
}

func (p *Program) Link() error {
	for _, shader := range p.shaders {
		gl.AttachShader(p.id, shader)
	}
	gl.LinkProgram(p.id)
	for _, shader := range p.shaders {
		gl.DetachShader(p.id, shader)
		gl.DeleteShader(shader)
	}
	p.shaders = nil

	var status int32
	gl.GetProgramiv(p.id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(p.id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(p.id, logLength, nil, gl.Str(log))
		err := fmt.Errorf("%w: %s", ErrProgramLink, strings.TrimRight(log, "\x00"))
		slog.Error("Program link failed", "error", err)
		return err
	}
	return nil
}

func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Location returns the cached location of a uniform, or -1 if the linked
// program does not expose it.
func (p *Program) Location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (p *Program) SetUniform(name string, value any) error {
	loc := p.Location(name)
	switch v := value.(type) {
	case int:
		gl.Uniform1i(loc, int32(v))
	case int32:
		gl.Uniform1i(loc, v)
	case float32:
		gl.Uniform1f(loc, v)
	case mgl32.Vec2:
		gl.Uniform2f(loc, v[0], v[1])
	case mgl32.Vec3:
		gl.Uniform3f(loc, v[0], v[1], v[2])
	case mgl32.Vec4:
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	default:
		return fmt.Errorf("%w: %s is %T", ErrUniformType, name, value)
	}
	return nil
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(p.Location(name), v[0], v[1])
}

func (p *Program) Release() {
	if p == nil {
		return
	}
	for _, shader := range p.shaders {
		gl.DeleteShader(shader)
	}
	p.shaders = nil
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
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
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}
