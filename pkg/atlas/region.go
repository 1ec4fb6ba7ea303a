package atlas

import "image"

// Region converts a pixel rectangle of an atlas image (origin at the top-left
// corner, as image.Rectangle uses) into a UVRect for an atlas that was
// flipped vertically on upload. V0 addresses the bottom edge of the region.
func Region(atlasW, atlasH int, px image.Rectangle) UVRect {
	if atlasW <= 0 || atlasH <= 0 {
		return UVRect{}
	}
	px = px.Canon()
	w := float32(atlasW)
	h := float32(atlasH)
	return UVRect{
		U0: float32(px.Min.X) / w,
		V0: 1 - float32(px.Max.Y)/h,
		U1: float32(px.Max.X) / w,
		V1: 1 - float32(px.Min.Y)/h,
	}
}
