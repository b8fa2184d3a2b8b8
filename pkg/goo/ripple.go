package goo

import (
	"math"

	"github.com/pkg/errors"

	"goofx/pkg/parallel"
	"goofx/pkg/raster"
)

const (
	// RippleWavelength is the distance in pixels between two rings.
	RippleWavelength = 20.0
	// RippleSpeed is the phase advance per tick.
	RippleSpeed = 0.1
	rippleScale = 0.01
)

// Ripple pushes pixels along the ray from the image center by a sine wave
// of the distance that travels outwards with time. Pixels whose source
// falls outside the image stay transparent.
func Ripple(img *raster.Raster, strength float64, time int) (*raster.Raster, error) {
	if img == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}

	w, h := img.Width(), img.Height()
	dst, err := raster.New(w, h)
	if err != nil {
		return nil, err
	}

	cx, cy := w/2, h/2
	phase := float64(time) * RippleSpeed

	parallel.Rows(0, h, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < w; x++ {
				dx, dy := float64(x-cx), float64(y-cy)
				f := strength * math.Sin(math.Hypot(dx, dy)/RippleWavelength-phase) * rippleScale

				sx := int(float64(x) + dx*f)
				sy := int(float64(y) + dy*f)
				if c, ok := img.Pixel(sx, sy); ok {
					dst.SetPixel(x, y, c)
				}
			}
		}
	})

	return dst, nil
}
