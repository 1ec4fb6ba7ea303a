package gfx_test

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/kjkrol/goquad/pkg/gfx"
)

type callLog struct {
	calls []string
}

func (c *callLog) record(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

// fakeWindow advances its clock by step on every PollEvents and asks to close
// after closeAfter frames. A negative closeAfter never closes.
type fakeWindow struct {
	log        *callLog
	now        float64
	step       float64
	frames     int
	closeAfter int
}

func (w *fakeWindow) ShouldClose() bool {
	return w.closeAfter >= 0 && w.frames >= w.closeAfter
}

func (w *fakeWindow) Time() float64 {
	return w.now
}

func (w *fakeWindow) SwapBuffers() {
	w.log.record("swap")
}

func (w *fakeWindow) PollEvents() {
	w.log.record("poll")
	w.frames++
	w.now += w.step
}

type fakeRenderer struct {
	log     *callLog
	camera  mgl32.Vec2
	draws   int
	clears  int
	cameras []mgl32.Vec2
}

func (r *fakeRenderer) Clear() {
	r.clears++
	r.log.record("clear")
}

func (r *fakeRenderer) SetCamera(position mgl32.Vec2) {
	r.camera = position
	r.cameras = append(r.cameras, position)
	r.log.record("camera")
}

func (r *fakeRenderer) Draw() {
	r.draws++
	r.log.record("draw")
}

type heldKeys map[gfx.Key]bool

func (h heldKeys) Pressed(key gfx.Key) bool {
	return h[key]
}
