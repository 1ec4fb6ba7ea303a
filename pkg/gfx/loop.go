package gfx

import (
	"context"
	"log/slog"
	"runtime"
)

type LoopState int

const (
	Running LoopState = iota
	Closing
)

func (s LoopState) String() string {
	switch s {
	case Running:
		return "running"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Loop drives one frame after another until the window asks to close.
type Loop struct {
	window   Window
	input    Input
	renderer Renderer
	state    *FrameState
	current  LoopState
	onClose  []func()
	logger   *slog.Logger
}

// NewLoop creates a loop in the Running state. A nil state is replaced by a
// fresh one with a zero camera; in both cases LastFrame is seeded from the
// window clock so the first frame does not include setup time.
func NewLoop(window Window, input Input, renderer Renderer, state *FrameState) *Loop {
	if state == nil {
		state = &FrameState{}
	}
	state.LastFrame = window.Time()
	return &Loop{
		window:   window,
		input:    input,
		renderer: renderer,
		state:    state,
		current:  Running,
		logger:   slog.Default(),
	}
}

func (l *Loop) SetLogger(logger *slog.Logger) {
	if logger != nil {
		l.logger = logger
	}
}

// OnClose registers fn to run once when the loop enters Closing.
func (l *Loop) OnClose(fn func()) {
	if fn != nil {
		l.onClose = append(l.onClose, fn)
	}
}

func (l *Loop) State() LoopState {
	return l.current
}

func (l *Loop) FrameState() *FrameState {
	return l.state
}

// Step renders exactly one frame: clear, update, upload the camera, draw,
// present and poll events.
func (l *Loop) Step() {
	l.renderer.Clear()
	Update(l.state, l.input, l.window.Time())
	l.renderer.SetCamera(l.state.Camera.Position)
	l.renderer.Draw()
	l.window.SwapBuffers()
	l.window.PollEvents()
	l.state.Frames++
}

// Run blocks until the window reports a close request or ctx is cancelled,
// then moves to Closing. It must be called from the thread that owns the
// graphics context.
func (l *Loop) Run(ctx context.Context) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	l.logger.Info("Render loop started")
	for l.current == Running {
		select {
		case <-ctx.Done():
			l.logger.Info("Render loop interrupted", "cause", context.Cause(ctx))
			l.close()
			return
		default:
		}
		if l.window.ShouldClose() {
			l.close()
			return
		}
		l.Step()
	}
}

func (l *Loop) close() {
	if l.current == Closing {
		return
	}
	l.current = Closing
	l.logger.Info("Render loop closing",
		"frames", l.state.Frames,
		"camera_x", l.state.Camera.Position.X(),
		"camera_y", l.state.Camera.Position.Y(),
	)
	for _, fn := range l.onClose {
		fn()
	}
	l.onClose = nil
}
