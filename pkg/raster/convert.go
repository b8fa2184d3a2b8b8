package raster

import (
	"image"
	"image/color"
)

// FromImage copies src into a new raster. The source bounds are shifted so
// that the result starts at 0,0.
func FromImage(src image.Image) (*Raster, error) {
	if r, ok := src.(*Raster); ok {
		return r.Clone(), nil
	}

	b := src.Bounds()
	dst, err := New(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}

	if n, ok := src.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			i := n.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Row(y), n.Pix[i:i+4*b.Dx()])
		}
		return dst, nil
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.SetPixel(x-b.Min.X, y-b.Min.Y, color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA))
		}
	}

	return dst, nil
}

// NRGBA copies the raster into a standard library image.
func (r *Raster) NRGBA() *image.NRGBA {
	dst := image.NewNRGBA(r.bounds)
	for y := 0; y < r.bounds.Dy(); y++ {
		copy(dst.Pix[y*dst.Stride:], r.Row(y))
	}
	return dst
}

// Gray copies the mask into a standard library image.
func (m *Mask) Gray() *image.Gray {
	dst := image.NewGray(m.bounds)
	copy(dst.Pix, m.values)
	return dst
}
