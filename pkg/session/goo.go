// Package session holds the mutable state of the interactive tools. The
// image operations themselves stay pure; a session only remembers the
// current picture, the brush settings and where the pointer was last seen.
package session

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"

	"goofx/pkg/goo"
	"goofx/pkg/raster"
)

func NewGoo(img *raster.Raster, logger *zap.Logger) (*Goo, error) {
	if img == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Goo{
		img:    img.Clone(),
		params: goo.DefaultParams(),
		log:    logger.With(zap.String("session", "goo")),
	}, nil
}

type Goo struct {
	l sync.RWMutex

	img     *raster.Raster
	params  goo.Params
	last    vec.Vec2
	strokes int
	log     *zap.Logger
}

// Press starts a stroke at pt.
func (s *Goo) Press(pt vec.Vec2) {
	s.l.Lock()
	defer s.l.Unlock()
	s.last = pt
}

// Move warps the image along the segment from the previous pointer
// position to pt. Nothing happens when the pointer did not move.
func (s *Goo) Move(pt vec.Vec2) error {
	s.l.Lock()
	defer s.l.Unlock()

	if pt == s.last {
		return nil
	}

	out, err := goo.Stroke(s.img, s.last, pt, s.params)
	if err != nil {
		return err
	}

	s.img = out
	s.last = pt
	s.strokes++

	s.log.With(
		zap.String("brush", s.params.Brush.Name()),
		zap.Float64("x", pt.X),
		zap.Float64("y", pt.Y),
	).Debug("stroke applied")
	return nil
}

// Image returns a copy of the current picture.
func (s *Goo) Image() *raster.Raster {
	s.l.RLock()
	defer s.l.RUnlock()
	return s.img.Clone()
}

func (s *Goo) Params() goo.Params {
	s.l.RLock()
	defer s.l.RUnlock()
	return s.params
}

// Strokes is the number of dabs applied so far.
func (s *Goo) Strokes() int {
	s.l.RLock()
	defer s.l.RUnlock()
	return s.strokes
}

func (s *Goo) SetBrush(b goo.Brush) error {
	if b == nil {
		return errors.Wrap(goo.ErrBrush, "nil brush")
	}
	s.l.Lock()
	defer s.l.Unlock()
	s.params.Brush = b
	return nil
}

func (s *Goo) SetRadius(r float64) error {
	if !(r > 0) {
		return errors.Wrapf(goo.ErrRadius, "radius %v", r)
	}
	s.l.Lock()
	defer s.l.Unlock()
	s.params.Radius = r
	return nil
}

func (s *Goo) SetForce(f float64) {
	s.l.Lock()
	defer s.l.Unlock()
	s.params.Force = f
}
