package mixer

import (
	"goofx/pkg/goo"
	"goofx/pkg/raster"
)

func EffectRipple(strength float64, time int) Effect {
	return &ripple{
		strength: strength,
		time:     time,
	}
}

type ripple struct {
	strength float64
	time     int
}

func (e *ripple) Name() string {
	return "ripple"
}

func (e *ripple) Process(img *raster.Raster) (*raster.Raster, error) {
	return goo.Ripple(img, e.strength, e.time)
}
