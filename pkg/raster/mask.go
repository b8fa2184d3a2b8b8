package raster

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

// NewMask creates a mask with every value set to fill.
func NewMask(width, height int, fill uint8) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrEmpty, "new mask %dx%d", width, height)
	}

	m := &Mask{
		values: make([]uint8, width*height),
		bounds: image.Rect(0, 0, width, height),
	}
	if fill != 0 {
		for i := range m.values {
			m.values[i] = fill
		}
	}
	return m, nil
}

// MaskFromImage builds a mask from the luminance of img.
func MaskFromImage(img image.Image) (*Mask, error) {
	b := img.Bounds()
	m, err := NewMask(b.Dx(), b.Dy(), 0)
	if err != nil {
		return nil, err
	}

	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			g := color.GrayModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.Gray)
			m.values[y*b.Dx()+x] = g.Y
		}
	}
	return m, nil
}

// Mask is a single channel grid of blend weights. A value of 0 selects the
// first image, 255 selects the second one. It implements the draw.Image
// interface with a gray color model.
type Mask struct {
	values []uint8
	bounds image.Rectangle
}

func (m *Mask) Width() int {
	return m.bounds.Dx()
}

func (m *Mask) Height() int {
	return m.bounds.Dy()
}

// Bounds implements the image.Image (and draw.Image) interface.
func (m *Mask) Bounds() image.Rectangle {
	return m.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (m *Mask) ColorModel() color.Model {
	return color.GrayModel
}

// At implements the image.Image (and draw.Image) interface.
func (m *Mask) At(x, y int) color.Color {
	return color.Gray{Y: m.Value(x, y)}
}

// Set implements the draw.Image interface.
func (m *Mask) Set(x, y int, c color.Color) {
	m.SetValue(x, y, color.GrayModel.Convert(c).(color.Gray).Y)
}

// Value returns the weight at x,y, 0 outside the mask.
func (m *Mask) Value(x, y int) uint8 {
	if !m.Contains(x, y) {
		return 0
	}
	return m.values[y*m.bounds.Max.X+x]
}

// Weight returns the weight at x,y normalized to [0,1].
func (m *Mask) Weight(x, y int) float64 {
	return float64(m.Value(x, y)) / 255
}

func (m *Mask) SetValue(x, y int, v uint8) {
	if !m.Contains(x, y) {
		return
	}
	m.values[y*m.bounds.Max.X+x] = v
}

func (m *Mask) Contains(x, y int) bool {
	return x >= 0 && x < m.bounds.Max.X && y >= 0 && y < m.bounds.Max.Y
}

func (m *Mask) Clone() *Mask {
	c := &Mask{
		values: make([]uint8, len(m.values)),
		bounds: m.bounds,
	}
	copy(c.values, m.values)
	return c
}

func (m *Mask) SameSize(o image.Image) bool {
	return o != nil && m.bounds.Size() == o.Bounds().Size()
}

func (m *Mask) Equal(o *Mask) bool {
	if o == nil || m.bounds != o.bounds {
		return false
	}
	for i := range m.values {
		if m.values[i] != o.values[i] {
			return false
		}
	}
	return true
}
