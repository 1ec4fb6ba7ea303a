package renderer

import (
	_ "embed"
	"strings"
)

//go:embed shaders/quad.glsl
var quadShader string

const (
	UniformOffset  = "offset"
	UniformCamera  = "cameraPos"
	UniformTexture = "atlasTexture"
)

type Stage int

const (
	StageVertex Stage = iota
	StageFragment
)

func (s Stage) String() string {
	switch s {
	case StageVertex:
		return "VERTEX"
	case StageFragment:
		return "FRAGMENT"
	default:
		return "UNKNOWN"
	}
}

// QuadShaderSource returns the quad shader specialized for stage.
func QuadShaderSource(stage Stage) string {
	return buildShaderSource(quadShader, stage)
}

func buildShaderSource(source string, stage Stage) string {
	var sb strings.Builder
	sb.WriteString("#version 330 core\n")
	sb.WriteString("#define " + stage.String() + "\n")
	sb.WriteString(source)
	if !strings.HasSuffix(source, "\n") {
		sb.WriteString("\n")
	}
	return sb.String()
}
