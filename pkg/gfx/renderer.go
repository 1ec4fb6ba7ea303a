package gfx

import "github.com/go-gl/mathgl/mgl32"

// Renderer draws the static batch. Clear resets the frame buffer to the
// background color, SetCamera uploads the camera offset and Draw issues a
// single draw call covering every batched quad.
type Renderer interface {
	Clear()
	SetCamera(position mgl32.Vec2)
	Draw()
}
