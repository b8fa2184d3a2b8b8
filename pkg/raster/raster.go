package raster

import (
	"image"
	"image/color"

	"github.com/pkg/errors"
)

var (
	ErrEmpty = errors.New("raster has no pixels")
	ErrSize  = errors.New("raster size mismatch")
)

func New(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrEmpty, "new %dx%d", width, height)
	}

	return &Raster{
		pixels: make([]byte, 4*width*height),
		stride: 4 * width,
		bounds: image.Rect(0, 0, width, height),
	}, nil
}

// Raster is a fixed size grid of straight alpha RGBA pixels with 8 bits per
// channel. The origin is always at 0,0. It implements the draw.Image
// interface.
type Raster struct {
	pixels []byte
	stride int
	bounds image.Rectangle
}

func (r *Raster) Width() int {
	return r.bounds.Dx()
}

func (r *Raster) Height() int {
	return r.bounds.Dy()
}

// Bounds implements the image.Image (and draw.Image) interface.
func (r *Raster) Bounds() image.Rectangle {
	return r.bounds
}

// ColorModel implements the image.Image (and draw.Image) interface.
func (r *Raster) ColorModel() color.Model {
	return color.NRGBAModel
}

// At implements the image.Image (and draw.Image) interface.
func (r *Raster) At(x, y int) color.Color {
	c, _ := r.Pixel(x, y)
	return c
}

// Set implements the draw.Image interface.
func (r *Raster) Set(x, y int, c color.Color) {
	r.SetPixel(x, y, color.NRGBAModel.Convert(c).(color.NRGBA))
}

// Pixel returns the pixel at x,y. Coordinates outside the raster give
// transparent black and false.
func (r *Raster) Pixel(x, y int) (color.NRGBA, bool) {
	if !r.Contains(x, y) {
		return color.NRGBA{}, false
	}
	i := r.offset(x, y)
	p := r.pixels[i : i+4 : i+4]
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, true
}

// SetPixel writes c at x,y. Writes outside the raster are dropped.
func (r *Raster) SetPixel(x, y int, c color.NRGBA) {
	if !r.Contains(x, y) {
		return
	}
	i := r.offset(x, y)
	p := r.pixels[i : i+4 : i+4]
	p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
}

func (r *Raster) Contains(x, y int) bool {
	return x >= 0 && x < r.bounds.Max.X && y >= 0 && y < r.bounds.Max.Y
}

func (r *Raster) offset(x, y int) int {
	return y*r.stride + 4*x
}

// Fill paints every pixel with c.
func (r *Raster) Fill(c color.NRGBA) {
	for i := 0; i < len(r.pixels); i += 4 {
		r.pixels[i], r.pixels[i+1], r.pixels[i+2], r.pixels[i+3] = c.R, c.G, c.B, c.A
	}
}

// Clone returns a deep copy.
func (r *Raster) Clone() *Raster {
	c := &Raster{
		pixels: make([]byte, len(r.pixels)),
		stride: r.stride,
		bounds: r.bounds,
	}
	copy(c.pixels, r.pixels)
	return c
}

// SameSize reports whether both images share width and height.
func (r *Raster) SameSize(o image.Image) bool {
	return o != nil && r.bounds.Size() == o.Bounds().Size()
}

// Equal reports whether o holds exactly the same pixels.
func (r *Raster) Equal(o *Raster) bool {
	if o == nil || r.bounds != o.bounds {
		return false
	}
	for i := range r.pixels {
		if r.pixels[i] != o.pixels[i] {
			return false
		}
	}
	return true
}

// Row exposes the raw bytes of row y, four per pixel.
func (r *Raster) Row(y int) []byte {
	if y < 0 || y >= r.bounds.Max.Y {
		return nil
	}
	return r.pixels[y*r.stride : (y+1)*r.stride]
}
