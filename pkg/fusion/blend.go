// Package fusion mixes two equally sized face images, either with one
// global factor, with a per pixel mask, or with a rippling seam, and edits
// the blend mask with paint, smear and smooth strokes.
package fusion

import (
	"math"

	"github.com/pkg/errors"

	"goofx/pkg/parallel"
	"goofx/pkg/raster"
)

var (
	ErrSize  = errors.New("image sizes differ")
	ErrParam = errors.New("invalid blend parameter")
)

// Mode selects how the second image is mixed in. It is one of Scalar,
// Masked or Warped.
type Mode interface {
	validate(a *raster.Raster) error
	blend(a, b, dst *raster.Raster, y0, y1 int)
}

// Scalar mixes every pixel by the same Amount in [0,1].
type Scalar struct {
	Amount float64
}

// Masked mixes every pixel by the mask weight at that pixel.
type Masked struct {
	Mask *raster.Mask
}

// Warped mixes by Amount and reads the second image through a sinusoidal
// displacement of Warp pixels. The wave has the given Wavelength in pixels
// and its phase advances by Phase per tick of Time.
type Warped struct {
	Amount     float64
	Warp       float64
	Time       int
	Wavelength float64
	Phase      float64
}

const (
	DefaultWavelength = 128.0
	DefaultPhase      = 0.05
)

// NewWarped is a Warped mode with the default wavelength and phase speed.
func NewWarped(amount, warp float64, time int) Warped {
	return Warped{
		Amount:     amount,
		Warp:       warp,
		Time:       time,
		Wavelength: DefaultWavelength,
		Phase:      DefaultPhase,
	}
}

// Blend returns a new image mixing a and b according to mode. a and b (and
// a mask) must have the same size.
func Blend(a, b *raster.Raster, mode Mode) (*raster.Raster, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}
	if mode == nil {
		return nil, errors.Wrap(ErrParam, "nil mode")
	}
	if !a.SameSize(b) {
		return nil, errors.Wrapf(ErrSize, "%v vs %v", a.Bounds().Size(), b.Bounds().Size())
	}
	if err := mode.validate(a); err != nil {
		return nil, err
	}

	dst := a.Clone()
	parallel.Rows(0, a.Height(), func(y0, y1 int) {
		mode.blend(a, b, dst, y0, y1)
	})
	return dst, nil
}

func checkAmount(amount float64) error {
	if !(amount >= 0 && amount <= 1) {
		return errors.Wrapf(ErrParam, "amount %v not in [0,1]", amount)
	}
	return nil
}

func mix(a, b *raster.Raster, ax, ay, bx, by int, t float64) raster.Color {
	ca, _ := a.Pixel(ax, ay)
	cb, _ := b.Pixel(bx, by)
	return raster.ColorOf(ca).Lerp(raster.ColorOf(cb), t)
}

func (s Scalar) validate(*raster.Raster) error {
	return checkAmount(s.Amount)
}

func (s Scalar) blend(a, b, dst *raster.Raster, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < a.Width(); x++ {
			dst.SetPixel(x, y, mix(a, b, x, y, x, y, s.Amount).NRGBA())
		}
	}
}

func (m Masked) validate(a *raster.Raster) error {
	if m.Mask == nil {
		return errors.Wrap(ErrParam, "nil mask")
	}
	if !a.SameSize(m.Mask) {
		return errors.Wrapf(ErrSize, "mask %v vs image %v", m.Mask.Bounds().Size(), a.Bounds().Size())
	}
	return nil
}

func (m Masked) blend(a, b, dst *raster.Raster, y0, y1 int) {
	for y := y0; y < y1; y++ {
		for x := 0; x < a.Width(); x++ {
			dst.SetPixel(x, y, mix(a, b, x, y, x, y, m.Mask.Weight(x, y)).NRGBA())
		}
	}
}

func (w Warped) validate(*raster.Raster) error {
	if err := checkAmount(w.Amount); err != nil {
		return err
	}
	if !(w.Warp >= 0) || math.IsInf(w.Warp, 0) {
		return errors.Wrapf(ErrParam, "warp %v", w.Warp)
	}
	if !(w.Wavelength > 0) || math.IsInf(w.Wavelength, 0) {
		return errors.Wrapf(ErrParam, "wavelength %v", w.Wavelength)
	}
	if math.IsNaN(w.Phase) || math.IsInf(w.Phase, 0) {
		return errors.Wrapf(ErrParam, "phase %v", w.Phase)
	}
	return nil
}

func (w Warped) blend(a, b, dst *raster.Raster, y0, y1 int) {
	wl := w.Wavelength
	shift := float64(w.Time) * w.Phase

	for y := y0; y < y1; y++ {
		for x := 0; x < a.Width(); x++ {
			xx := int(float64(x) + w.Warp*math.Sin(2*math.Pi*float64(y)/wl+shift))
			yy := int(float64(y) + w.Warp*math.Cos(2*math.Pi*float64(x)/wl+shift))
			if !b.Contains(xx, yy) {
				continue
			}
			dst.SetPixel(x, y, mix(a, b, x, y, xx, yy, w.Amount).NRGBA())
		}
	}
}
