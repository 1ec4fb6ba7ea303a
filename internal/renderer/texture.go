package renderer

import (
	"image"

	"github.com/go-gl/gl/v3.3-core/gl"
)

// Texture is a 2D texture. The zero value is GL texture 0: binding it leaves
// the unit without a usable texture, which samples as opaque black.
type Texture struct {
	id uint32
}

// NewTexture uploads img with nearest filtering, repeat wrapping and mipmaps.
// A nil image yields the zero Texture.
func NewTexture(img *image.RGBA) *Texture {
	if img == nil {
		return &Texture{}
	}
	t := &Texture{}
	gl.GenTextures(1, &t.id)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	if len(img.Pix) > 0 {
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(img.Stride/4))
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(img.Rect.Dx()), int32(img.Rect.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}
	return t
}

func (t *Texture) Valid() bool {
	return t != nil && t.id != 0
}

func (t *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	var id uint32
	if t != nil {
		id = t.id
	}
	gl.BindTexture(gl.TEXTURE_2D, id)
}

func (t *Texture) Release() {
	if t == nil || t.id == 0 {
		return
	}
	gl.DeleteTextures(1, &t.id)
	t.id = 0
}
