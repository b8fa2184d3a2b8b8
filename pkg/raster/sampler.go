package raster

import (
	"image"
	"math"
)

// Sample reads r at the fractional position x,y with bilinear
// interpolation. Corners outside the raster count as transparent black, so
// sampling near an edge fades out instead of failing.
func Sample(r *Raster, x, y float64) Color {
	return SampleWithin(r, r.bounds, x, y)
}

// SampleWithin is Sample with every corner outside clip treated as
// transparent black.
func SampleWithin(r *Raster, clip image.Rectangle, x, y float64) Color {
	if math.IsNaN(x) || math.IsNaN(y) {
		return Transparent
	}

	fx, fy := math.Floor(x), math.Floor(y)
	dx, dy := x-fx, y-fy
	x0, y0 := int(fx), int(fy)

	corner := func(px, py int) Color {
		if !(image.Point{X: px, Y: py}).In(clip) {
			return Transparent
		}
		c, _ := r.Pixel(px, py)
		return ColorOf(c)
	}

	c00 := corner(x0, y0)
	if dx == 0 && dy == 0 {
		return c00
	}

	c0 := c00.Lerp(corner(x0+1, y0), dx)
	c1 := corner(x0, y0+1).Lerp(corner(x0+1, y0+1), dx)
	return c0.Lerp(c1, dy)
}

// SampleMask is the single channel counterpart of Sample. Corners outside
// the mask contribute 0.
func SampleMask(m *Mask, x, y float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return 0
	}

	fx, fy := math.Floor(x), math.Floor(y)
	dx, dy := x-fx, y-fy
	x0, y0 := int(fx), int(fy)

	v00 := float64(m.Value(x0, y0))
	v10 := float64(m.Value(x0+1, y0))
	v01 := float64(m.Value(x0, y0+1))
	v11 := float64(m.Value(x0+1, y0+1))

	v0 := v00 + (v10-v00)*dx
	v1 := v01 + (v11-v01)*dx
	return v0 + (v1-v0)*dy
}
