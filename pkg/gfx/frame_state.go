package gfx

// FrameState is the mutable state carried from one frame to the next.
type FrameState struct {
	Camera    Camera
	LastFrame float64
	Frames    uint64
}

func NewFrameState(camera Camera, now float64) *FrameState {
	return &FrameState{Camera: camera, LastFrame: now}
}

// Update advances the state to now and moves the camera by Speed*deltaTime for
// every held movement key. It returns the elapsed time in seconds.
// A clock that goes backwards yields a zero delta.
func Update(state *FrameState, input Input, now float64) float32 {
	delta := now - state.LastFrame
	if delta < 0 {
		delta = 0
	}
	state.LastFrame = now
	dt := float32(delta)
	if input == nil {
		return dt
	}

	step := state.Camera.Speed * dt
	for _, key := range MovementKeys {
		if !input.Pressed(key) {
			continue
		}
		switch key {
		case KeyUp:
			state.Camera.Move(0, step)
		case KeyDown:
			state.Camera.Move(0, -step)
		case KeyLeft:
			state.Camera.Move(-step, 0)
		case KeyRight:
			state.Camera.Move(step, 0)
		}
	}
	return dt
}
