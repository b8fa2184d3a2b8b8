// Package fractal renders the animated Julia set backdrop of the fusion
// room. Every pixel is an independent escape-time iteration, so rows are
// rendered concurrently.
package fractal

import (
	"image/color"
	"math"

	"github.com/pkg/errors"

	"goofx/pkg/parallel"
	"goofx/pkg/raster"
)

var ErrZoom = errors.New("zoom must be positive")

// MaxIter caps the iteration count, which doubles as the gray level.
const MaxIter = 255

type Option func(f *field)

// WithSeed moves the Julia constant c = cx + i*cy.
func WithSeed(cx, cy float64) Option {
	return func(f *field) {
		f.cx, f.cy = cx, cy
	}
}

// WithPerturbation sets how far (amplitude) and how fast (rate per tick)
// the real part of c wobbles over time.
func WithPerturbation(amplitude, rate float64) Option {
	return func(f *field) {
		f.amplitude, f.rate = amplitude, rate
	}
}

type field struct {
	cx, cy    float64
	amplitude float64
	rate      float64
}

// Generate renders a width x height gray image of the Julia set for the
// given zoom and animation tick. The output only depends on its arguments.
func Generate(width, height int, zoom float64, time int, opts ...Option) (*raster.Raster, error) {
	if !(zoom > 0) || math.IsInf(zoom, 0) {
		return nil, errors.Wrapf(ErrZoom, "zoom %v", zoom)
	}

	img, err := raster.New(width, height)
	if err != nil {
		return nil, err
	}

	f := &field{cx: -0.7, cy: 0.27015, amplitude: 0.1, rate: 0.05}
	for _, opt := range opts {
		opt(f)
	}

	cx := f.cx + f.amplitude*math.Sin(float64(time)*f.rate)
	sx := 0.5 * zoom * float64(width)
	sy := 0.5 * zoom * float64(height)

	parallel.Rows(0, height, func(y0, y1 int) {
		for y := y0; y < y1; y++ {
			for x := 0; x < width; x++ {
				zx := 1.5 * float64(x-width/2) / sx
				zy := float64(y-height/2) / sy
				i := escape(zx, zy, cx, f.cy)
				img.SetPixel(x, y, color.NRGBA{R: i, G: i, B: i, A: 255})
			}
		}
	})

	return img, nil
}

func escape(zx, zy, cx, cy float64) uint8 {
	i := 0
	for zx*zx+zy*zy < 4 && i < MaxIter {
		zx, zy = zx*zx-zy*zy+cx, 2*zx*zy+cy
		i++
	}
	return uint8(i)
}
