package fusion

import (
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"

	"goofx/pkg/parallel"
	"goofx/pkg/raster"
)

// Overlay draws top over base with source-over compositing and an extra
// global opacity. Transparent parts of top leave base visible.
func Overlay(base, top *raster.Raster, opacity float64) (*raster.Raster, error) {
	if base == nil || top == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}
	if !base.SameSize(top) {
		return nil, errors.Wrapf(ErrSize, "%v vs %v", base.Bounds().Size(), top.Bounds().Size())
	}
	if err := checkOpacity(opacity); err != nil {
		return nil, err
	}

	dst := base.Clone()
	if opacity == 0 {
		return dst, nil
	}

	parallel.Rows(0, base.Height(), func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < base.Width(); x++ {
				t, _ := top.Pixel(x, y)
				if t.A == 0 {
					continue
				}
				b, _ := base.Pixel(x, y)
				dst.SetPixel(x, y, over(raster.ColorOf(b), raster.ColorOf(t), opacity).NRGBA())
			}
		}
	})

	return dst, nil
}

// over composites straight alpha colors.
func over(dst, src raster.Color, opacity float64) raster.Color {
	sa := src.A / 255 * opacity
	da := dst.A / 255
	oa := sa + da*(1-sa)
	if oa == 0 {
		return raster.Transparent
	}

	ch := func(s, d float64) float64 {
		return (s*sa + d*da*(1-sa)) / oa
	}
	return raster.Color{R: ch(src.R, dst.R), G: ch(src.G, dst.G), B: ch(src.B, dst.B), A: oa * 255}
}

type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Flip mirrors img along the given axis.
func Flip(img *raster.Raster, axis Axis) (*raster.Raster, error) {
	if img == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}

	switch axis {
	case Horizontal:
		return raster.FromImage(imaging.FlipH(img.NRGBA()))
	case Vertical:
		return raster.FromImage(imaging.FlipV(img.NRGBA()))
	}
	return nil, errors.Wrapf(ErrParam, "flip axis %d", axis)
}
