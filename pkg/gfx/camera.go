package gfx

import "github.com/go-gl/mathgl/mgl32"

// Camera is a 2D offset subtracted from every vertex position at render time.
// Speed is expressed in world units per second.
type Camera struct {
	Position mgl32.Vec2
	Speed    float32
}

func NewCamera(speed float32) Camera {
	return Camera{Speed: speed}
}

func (c *Camera) Move(dx, dy float32) {
	c.Position = c.Position.Add(mgl32.Vec2{dx, dy})
}
