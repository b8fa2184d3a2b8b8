package mixer

import (
	"fmt"

	"github.com/pkg/errors"

	"goofx/pkg/fractal"
	"goofx/pkg/fusion"
	"goofx/pkg/raster"
)

// RoomParams are the slider values of the fusion room.
type RoomParams struct {
	Blend float64 // 0..1
	Zoom  float64 // > 0
	Spin  float64 // degrees
	Warp  float64 // pixels
}

func DefaultRoomParams() RoomParams {
	return RoomParams{Blend: 0.5, Zoom: 1, Spin: 0, Warp: 10}
}

// Room renders the animated fusion room: the two faces are blended across
// a rippling seam, cut into spinning tiles and laid over a Julia set
// backdrop, and the whole frame is pushed through a radial ripple.
type Room struct {
	Tiles   int
	Opacity float64
}

func NewRoom() *Room {
	return &Room{Tiles: 4, Opacity: 0.7}
}

// Frame renders tick time. a and b must have the same size.
func (r *Room) Frame(a, b *raster.Raster, p RoomParams, time int) (*raster.Raster, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}

	fused, err := fusion.Blend(a, b, fusion.NewWarped(p.Blend, p.Warp, time))
	if err != nil {
		return nil, fmt.Errorf("fusion failed: %w", err)
	}

	backdrop, err := fractal.Generate(a.Width(), a.Height(), p.Zoom, time)
	if err != nil {
		return nil, fmt.Errorf("fractal failed: %w", err)
	}

	spun, err := SpinTiles(fused, p.Spin+float64(time), r.Tiles)
	if err != nil {
		return nil, fmt.Errorf("tile spin failed: %w", err)
	}

	combo, err := fusion.Overlay(backdrop, spun, r.Opacity)
	if err != nil {
		return nil, fmt.Errorf("overlay failed: %w", err)
	}

	return EffectRipple(p.Warp, time).Process(combo)
}
