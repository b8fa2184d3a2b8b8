package raster

import (
	"image/color"
	"math"
)

// Color is a straight alpha RGBA sample with float channels in the 0-255
// range. It is what the bilinear sampler produces.
type Color struct {
	R, G, B, A float64
}

var Transparent = Color{}

func ColorOf(c color.NRGBA) Color {
	return Color{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}

// Scale multiplies every channel by w.
func (c Color) Scale(w float64) Color {
	return Color{R: c.R * w, G: c.G * w, B: c.B * w, A: c.A * w}
}

func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

// Lerp moves from c towards o by t. Lerp(o, 0) is c and Lerp(o, 1) is o.
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// NRGBA rounds every channel to the nearest 8 bit value.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

func to8(v float64) uint8 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}
