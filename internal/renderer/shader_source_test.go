package renderer_test

import (
	"strings"
	"testing"

	"github.com/kjkrol/goquad/internal/renderer"
)

func TestQuadShaderSource(t *testing.T) {
	cases := []struct {
		stage    renderer.Stage
		define   string
		contains []string
	}{
		{renderer.StageVertex, "#define VERTEX\n", []string{renderer.UniformOffset, renderer.UniformCamera, "layout(location = 0)", "layout(location = 1)"}},
		{renderer.StageFragment, "#define FRAGMENT\n", []string{renderer.UniformTexture}},
	}
	for _, tc := range cases {
		t.Run(tc.stage.String(), func(t *testing.T) {
			src := renderer.QuadShaderSource(tc.stage)
			if !strings.HasPrefix(src, "#version 330 core\n") {
				t.Fatalf("source does not start with the version directive:\n%s", src)
			}
			if !strings.Contains(src, tc.define) {
				t.Fatalf("source lacks %q", tc.define)
			}
			for _, s := range tc.contains {
				if !strings.Contains(src, s) {
					t.Errorf("source lacks %q", s)
				}
			}
			if !strings.HasSuffix(src, "\n") {
				t.Error("source does not end with a newline")
			}
		})
	}
}

func TestStage_String(t *testing.T) {
	if renderer.Stage(9).String() != "UNKNOWN" {
		t.Fatal("unexpected name for unknown stage")
	}
}
