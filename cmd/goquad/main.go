package main

import (
	"context"
	"image"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/kjkrol/goquad/internal/config"
	"github.com/kjkrol/goquad/internal/platform"
	"github.com/kjkrol/goquad/internal/renderer"
	"github.com/kjkrol/goquad/pkg/gfx"
)

func init() {
	// GLFW and the GL context must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run())
}

func run() int {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	conf, err := config.Default()
	if err != nil {
		slog.Error("Invalid configuration", "error", err)
		return 1
	}

	window, err := platform.NewWindow(platform.WindowConfig{
		Width:  conf.Window.Width,
		Height: conf.Window.Height,
		Title:  conf.Window.Title,
		VSync:  conf.Window.VSync,
	})
	if err != nil {
		slog.Error("Failed to create window", "error", err)
		return 1
	}
	defer window.Close()

	if err := renderer.Init(); err != nil {
		slog.Error("Failed to load OpenGL", "error", err)
		return 1
	}

	var res renderer.Resources
	defer res.ReleaseAll()

	batch := conf.Batch()
	mesh := renderer.Track(&res, renderer.NewMesh(batch))
	slog.Info("Batch uploaded", "quads", batch.QuadCount(), "indices", batch.IndexCount())
	texture := renderer.Track(&res, renderer.NewTexture(atlasImage(conf.Texture)))
	program, err := renderer.NewQuadProgram()
	if err != nil {
		slog.Error("Failed to build shader program", "error", err)
		return 1
	}
	renderer.Track(&res, program)

	quads, err := renderer.NewQuadRenderer(mesh, texture, program, mgl32.Vec4(conf.ClearColor))
	if err != nil {
		slog.Error("Failed to configure renderer", "error", err)
		return 1
	}
	if !texture.Valid() {
		slog.Warn("Rendering without atlas texture")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loop := gfx.NewLoop(window, window, quads, gfx.NewFrameState(gfx.NewCamera(conf.Camera.Speed), 0))
	loop.SetLogger(slog.Default().With("component", "loop"))
	loop.OnClose(func() {
		slog.Info("Releasing GPU resources", "count", res.Len())
	})
	loop.Run(ctx)
	return 0
}

// atlasImage loads the atlas, or returns nil so rendering continues untextured.
func atlasImage(path string) *image.RGBA {
	img, err := renderer.LoadImage(path)
	if err != nil {
		slog.Warn("Failed to load texture", "error", err)
		return nil
	}
	slog.Info("Texture loaded", "path", path, "width", img.Rect.Dx(), "height", img.Rect.Dy())
	return img
}
