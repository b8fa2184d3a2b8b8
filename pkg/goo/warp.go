// Package goo implements the displacement brushes of the goo tool: every
// pixel inside the brush radius is resampled from a position shifted by a
// brush dependent offset field.
package goo

import (
	"math"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"seehuhn.de/go/geom/vec"

	"goofx/pkg/parallel"
	"goofx/pkg/raster"
)

type Params struct {
	Radius float64
	Force  float64
	Brush  Brush
}

// DefaultParams matches the initial slider positions of the goo tool.
func DefaultParams() Params {
	return Params{Radius: 100, Force: 10, Brush: Smear{}}
}

func (p Params) validate() error {
	if p.Brush == nil {
		return errors.Wrap(ErrBrush, "nil brush")
	}
	if !(p.Radius > 0) || math.IsInf(p.Radius, 0) {
		return errors.Wrapf(ErrRadius, "radius %v", p.Radius)
	}
	return nil
}

// Apply runs one brush dab centered at center with stroke direction
// direction and returns the warped copy of img. img itself is not modified,
// so the result of one dab can feed the next one.
func Apply(img *raster.Raster, center, direction vec.Vec2, p Params) (*raster.Raster, error) {
	if img == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	dst := img.Clone()
	w, h := img.Width(), img.Height()

	x0 := lo.Clamp(int(math.Floor(center.X-p.Radius)), 0, w)
	x1 := lo.Clamp(int(math.Ceil(center.X+p.Radius))+1, 0, w)
	y0 := lo.Clamp(int(math.Floor(center.Y-p.Radius)), 0, h)
	y1 := lo.Clamp(int(math.Ceil(center.Y+p.Radius))+1, 0, h)

	parallel.Rows(y0, y1, func(ya, yb int) {
		for y := ya; y < yb; y++ {
			for x := x0; x < x1; x++ {
				coord := vec.Vec2{X: float64(x), Y: float64(y)}
				rel := coord.Sub(center)

				d := rel.Length()
				if d >= p.Radius {
					continue
				}

				off := p.Brush.offset(rel, direction, p.Force, p.Radius, Influence(d, p.Radius))
				src := coord.Sub(off)
				dst.SetPixel(x, y, raster.Sample(img, src.X, src.Y).NRGBA())
			}
		}
	})

	return dst, nil
}

// Stroke applies one dab for a pointer that moved from from to to. A pointer
// that did not move leaves the image as it was.
func Stroke(img *raster.Raster, from, to vec.Vec2, p Params) (*raster.Raster, error) {
	dir := to.Sub(from)
	if dir.X == 0 && dir.Y == 0 {
		if img == nil {
			return nil, errors.Wrap(raster.ErrEmpty, "nil image")
		}
		if err := p.validate(); err != nil {
			return nil, err
		}
		return img.Clone(), nil
	}
	return Apply(img, from, dir, p)
}
