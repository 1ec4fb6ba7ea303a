package platform

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/goquad/pkg/gfx"
)

// Window is a fixed-size GLFW window owning an OpenGL 3.3 core context.
// All methods must be called from the thread that created it.
type Window struct {
	win *glfw.Window
}

var (
	_ gfx.Window = (*Window)(nil)
	_ gfx.Input  = (*Window)(nil)
)

// NewWindow initializes GLFW, opens the window and makes its context current.
func NewWindow(conf WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: glfw init: %v", ErrWindow, err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	win, err := glfw.CreateWindow(conf.Width, conf.Height, conf.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: create %dx%d: %v", ErrWindow, conf.Width, conf.Height, err)
	}
	win.MakeContextCurrent()
	if conf.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	slog.Debug("Window created", "width", conf.Width, "height", conf.Height, "title", conf.Title)
	return &Window{win: win}, nil
}

func (w *Window) ShouldClose() bool {
	return w.win == nil || w.win.ShouldClose()
}

// Time returns the GLFW monotonic clock in seconds.
func (w *Window) Time() float64 {
	return glfw.GetTime()
}

func (w *Window) SwapBuffers() {
	w.win.SwapBuffers()
}

func (w *Window) PollEvents() {
	glfw.PollEvents()
}

func (w *Window) Pressed(key gfx.Key) bool {
	k, ok := glfwKey(key)
	if !ok || w.win == nil {
		return false
	}
	return w.win.GetKey(k) == glfw.Press
}

// Close destroys the window and terminates GLFW. Calling it twice is a no-op.
func (w *Window) Close() {
	if w.win == nil {
		return
	}
	w.win.Destroy()
	w.win = nil
	glfw.Terminate()
}
