package config

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/kjkrol/goquad/pkg/atlas"
)

//go:embed default.yaml
var defaultYAML []byte

type Config struct {
	Window     Window     `yaml:"window"`
	ClearColor [4]float32 `yaml:"clear_color"`
	Camera     Camera     `yaml:"camera"`
	Texture    string     `yaml:"texture"`
	Quads      []Quad     `yaml:"quads"`
}

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type Camera struct {
	Speed float32 `yaml:"speed"`
}

// Quad is a world-space rectangle [x, y, w, h] and its atlas UV rectangle [u0, v0, u1, v1].
type Quad struct {
	Rect [4]float32 `yaml:"rect"`
	UV   [4]float32 `yaml:"uv"`
}

func (q Quad) Atlas() atlas.Quad {
	return atlas.Quad{
		X: q.Rect[0], Y: q.Rect[1], W: q.Rect[2], H: q.Rect[3],
		UV: atlas.UVRect{U0: q.UV[0], V0: q.UV[1], U1: q.UV[2], V1: q.UV[3]},
	}
}

var (
	ErrInvalidWindow = errors.New("config: window size must be positive")
	ErrNoQuads       = errors.New("config: at least one quad is required")
)

// Default returns the built-in configuration.
func Default() (Config, error) {
	return Parse(defaultYAML)
}

func Parse(data []byte) (Config, error) {
	var conf Config
	if err := yaml.Unmarshal(data, &conf); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidWindow, c.Window.Width, c.Window.Height)
	}
	if len(c.Quads) == 0 {
		return ErrNoQuads
	}
	if c.Camera.Speed < 0 {
		return fmt.Errorf("config: camera speed must not be negative, got %v", c.Camera.Speed)
	}
	return nil
}

// Batch packs every configured quad into one batch.
func (c Config) Batch() *atlas.Batch {
	batch := atlas.NewBatch(len(c.Quads))
	for _, q := range c.Quads {
		batch.Add(q.Atlas())
	}
	return batch
}
