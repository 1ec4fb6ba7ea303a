package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kjkrol/goquad/internal/config"
	"github.com/kjkrol/goquad/pkg/atlas"
)

func TestDefault(t *testing.T) {
	conf, err := config.Default()
	if err != nil {
		t.Fatalf("Default() error: %v", err)
	}
	if conf.Window.Width != 800 || conf.Window.Height != 600 {
		t.Fatalf("window = %dx%d, want 800x600", conf.Window.Width, conf.Window.Height)
	}
	if conf.Camera.Speed != 1 {
		t.Fatalf("camera speed = %v, want 1", conf.Camera.Speed)
	}
	if conf.ClearColor != [4]float32{0.1, 0.1, 0.2, 1} {
		t.Fatalf("clear color = %v", conf.ClearColor)
	}
	if conf.Texture == "" {
		t.Fatal("texture path is empty")
	}

	batch := conf.Batch()
	if batch.QuadCount() != 2 || batch.VertexCount() != 8 || batch.IndexCount() != 12 {
		t.Fatalf("batch = %d quads, %d vertices, %d indices", batch.QuadCount(), batch.VertexCount(), batch.IndexCount())
	}
	want := atlas.Quad{X: -1.5, Y: -0.5, W: 1, H: 1, UV: atlas.UVRect{U0: 0, V0: 0.8, U1: 0.2, V1: 0.7}}
	if got := conf.Quads[0].Atlas(); got != want {
		t.Fatalf("first quad = %+v, want %+v", got, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want error
	}{
		{"zero window", "window: {width: 0, height: 600}\nquads: [{rect: [0,0,1,1], uv: [0,0,1,1]}]", config.ErrInvalidWindow},
		{"no quads", "window: {width: 800, height: 600}", config.ErrNoQuads},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tc.yaml))
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParse_NegativeSpeed(t *testing.T) {
	_, err := config.Parse([]byte("window: {width: 1, height: 1}\ncamera: {speed: -1}\nquads: [{rect: [0,0,1,1], uv: [0,0,1,1]}]"))
	if err == nil || !strings.Contains(err.Error(), "camera speed") {
		t.Fatalf("error = %v, want camera speed error", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	if _, err := config.Parse([]byte("window: [")); err == nil {
		t.Fatal("expected decode error")
	}
}
