package renderer

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/goquad/pkg/gfx"
)

// Init resolves OpenGL entry points for the current context.
func Init() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl.Init: %w", err)
	}
	slog.Info("OpenGL initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)
	return nil
}

// QuadRenderer draws a whole Mesh with one texture and one program.
type QuadRenderer struct {
	mesh       *Mesh
	texture    *Texture
	program    *Program
	clearColor mgl32.Vec4
}

var _ gfx.Renderer = (*QuadRenderer)(nil)

// NewQuadRenderer binds the sampler to texture unit 0, zeroes the offset
// uniform and enables alpha blending.
func NewQuadRenderer(mesh *Mesh, texture *Texture, program *Program, clearColor mgl32.Vec4) (*QuadRenderer, error) {
	r := &QuadRenderer{
		mesh:       mesh,
		texture:    texture,
		program:    program,
		clearColor: clearColor,
	}
	program.Use()
	if err := program.SetUniform(UniformTexture, int32(0)); err != nil {
		return nil, err
	}
	if err := program.SetUniform(UniformOffset, mgl32.Vec3{}); err != nil {
		return nil, err
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	return r, nil
}

func (r *QuadRenderer) Clear() {
	c := r.clearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *QuadRenderer) SetCamera(position mgl32.Vec2) {
	r.program.Use()
	r.program.SetVec2(UniformCamera, position)
}

func (r *QuadRenderer) Draw() {
	r.program.Use()
	r.texture.Bind(0)
	r.mesh.Draw()
}
