package platform

import "errors"

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// ErrWindow reports that the window or its graphics context could not be created.
var ErrWindow = errors.New("platform: window unavailable")
