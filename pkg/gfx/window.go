package gfx

// Window is the windowing collaborator driven by Loop.
// Time must be monotonic non-decreasing and expressed in seconds.
type Window interface {
	ShouldClose() bool
	Time() float64
	SwapBuffers()
	PollEvents()
}
