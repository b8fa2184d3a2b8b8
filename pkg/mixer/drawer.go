package mixer

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"goofx/pkg/proto"
	"goofx/pkg/raster"
)

func NewDrawer(dst proto.Display, opts ...Option) *Drawer {
	d := &Drawer{
		dev:    dst,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Drawer pushes frames through its effect chain and hands the result to a
// display.
type Drawer struct {
	dev    proto.Display
	effs   []Effect
	logger *zap.Logger
}

func (d *Drawer) Effects() []Effect {
	return d.effs
}

// Render runs img through every effect in order.
func (d *Drawer) Render(img *raster.Raster) (*raster.Raster, error) {
	out := img
	for _, eff := range d.effs {
		start := time.Now()

		next, err := eff.Process(out)
		if err != nil {
			return nil, fmt.Errorf("effect %s failed: %w", eff.Name(), err)
		}
		out = next

		d.logger.With(zap.String("effect", eff.Name()), zap.Duration("cost", time.Since(start))).Debug("processed")
	}
	return out, nil
}

// Canvas renders img and draws it at the display origin.
func (d *Drawer) Canvas(img *raster.Raster) error {
	out, err := d.Render(img)
	if err != nil {
		return err
	}

	return d.dev.DrawBitmap(0, 0, out)
}
