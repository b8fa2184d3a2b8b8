package mixer

import "goofx/pkg/raster"

// Effect turns one frame into another. Process must not modify its input.
type Effect interface {
	Name() string
	Process(img *raster.Raster) (*raster.Raster, error)
}

// EffectFunc adapts a plain function to the Effect interface.
func EffectFunc(name string, fn func(img *raster.Raster) (*raster.Raster, error)) Effect {
	return &funcEffect{name: name, fn: fn}
}

type funcEffect struct {
	name string
	fn   func(img *raster.Raster) (*raster.Raster, error)
}

func (e *funcEffect) Name() string {
	return e.name
}

func (e *funcEffect) Process(img *raster.Raster) (*raster.Raster, error) {
	return e.fn(img)
}
