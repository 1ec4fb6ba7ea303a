package gfx

import "fmt"

// Key identifies one of the camera movement keys.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
)

// MovementKeys lists every Key in the order the frame update samples them.
var MovementKeys = [...]Key{KeyUp, KeyDown, KeyLeft, KeyRight}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return fmt.Sprintf("Key(%d)", int(k))
	}
}

// Input reports whether a key is currently held. It is level-triggered: a key
// held across many frames reports true on each of them.
type Input interface {
	Pressed(key Key) bool
}

// InputFunc adapts a plain function to Input.
type InputFunc func(key Key) bool

func (f InputFunc) Pressed(key Key) bool {
	return f(key)
}
