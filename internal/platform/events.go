package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/kjkrol/goquad/pkg/gfx"
)

// movementKeys binds camera movement to W/S/A/D.
var movementKeys = map[gfx.Key]glfw.Key{
	gfx.KeyUp:    glfw.KeyW,
	gfx.KeyDown:  glfw.KeyS,
	gfx.KeyLeft:  glfw.KeyA,
	gfx.KeyRight: glfw.KeyD,
}

func glfwKey(key gfx.Key) (glfw.Key, bool) {
	k, ok := movementKeys[key]
	return k, ok
}
