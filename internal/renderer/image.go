package renderer

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io"
	"os"
)

// LoadImage decodes the image at path into a tightly packed RGBA buffer,
// flipped vertically so that row 0 is the bottom of the image as OpenGL expects.
func LoadImage(path string) (*image.RGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	defer f.Close()

	img, err := DecodeImage(f)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return img, nil
}

func DecodeImage(r io.Reader) (*image.RGBA, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	bounds := src.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), src, bounds.Min, draw.Src)
	FlipVertical(rgba)
	return rgba, nil
}

// FlipVertical reverses the row order of img in place.
func FlipVertical(img *image.RGBA) {
	if img == nil {
		return
	}
	minX, minY := img.Rect.Min.X, img.Rect.Min.Y
	rowLen := img.Rect.Dx() * 4
	tmp := make([]byte, rowLen)
	for top, bottom := 0, img.Rect.Dy()-1; top < bottom; top, bottom = top+1, bottom-1 {
		ta := img.PixOffset(minX, minY+top)
		tb := img.PixOffset(minX, minY+bottom)
		a := img.Pix[ta : ta+rowLen]
		b := img.Pix[tb : tb+rowLen]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}
