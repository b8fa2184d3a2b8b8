package session

import (
	"image"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"

	"goofx/pkg/fusion"
	"goofx/pkg/raster"
)

type Tool int

const (
	PaintA Tool = iota
	PaintB
	Smear
	Smooth
)

var toolNames = map[Tool]string{
	PaintA: "paint-a",
	PaintB: "paint-b",
	Smear:  "smear",
	Smooth: "smooth",
}

func (t Tool) String() string {
	if name, ok := toolNames[t]; ok {
		return name
	}
	return "invalid"
}

func ParseTool(name string) (Tool, error) {
	for t, n := range toolNames {
		if strings.EqualFold(n, name) {
			return t, nil
		}
	}
	return 0, errors.Wrapf(fusion.ErrParam, "unknown tool %q", name)
}

// DefaultRadius is the initial brush radius of the mask tools.
const DefaultRadius = 50

func NewFusion(a, b *raster.Raster, logger *zap.Logger) (*Fusion, error) {
	if a == nil || b == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}
	if !a.SameSize(b) {
		return nil, errors.Wrapf(fusion.ErrSize, "%v vs %v", a.Bounds(), b.Bounds())
	}

	m, err := raster.NewMask(a.Width(), a.Height(), 128)
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = zap.NewNop()
	}

	return &Fusion{
		a:      a.Clone(),
		b:      b.Clone(),
		mask:   m,
		tool:   PaintA,
		radius: DefaultRadius,
		log:    logger.With(zap.String("session", "fusion")),
	}, nil
}

// Fusion edits the blend mask between two equally sized faces.
type Fusion struct {
	l sync.RWMutex

	a      *raster.Raster
	b      *raster.Raster
	mask   *raster.Mask
	tool   Tool
	radius int
	last   image.Point
	log    *zap.Logger
}

func (s *Fusion) Tool() Tool {
	s.l.RLock()
	defer s.l.RUnlock()
	return s.tool
}

func (s *Fusion) SetTool(t Tool) error {
	if _, ok := toolNames[t]; !ok {
		return errors.Wrapf(fusion.ErrParam, "tool %d", t)
	}
	s.l.Lock()
	defer s.l.Unlock()
	s.tool = t
	return nil
}

func (s *Fusion) SetRadius(r int) error {
	if r < 1 {
		return errors.Wrapf(fusion.ErrParam, "radius %d", r)
	}
	s.l.Lock()
	defer s.l.Unlock()
	s.radius = r
	return nil
}

// Press puts the pointer down at pt. Paint and smooth tools act right away,
// the smear tool waits for the pointer to move.
func (s *Fusion) Press(pt image.Point) error {
	s.l.Lock()
	defer s.l.Unlock()

	s.last = pt
	if s.tool == Smear {
		return nil
	}
	return s.apply(pt)
}

// Move drags the pointer to pt.
func (s *Fusion) Move(pt image.Point) error {
	s.l.Lock()
	defer s.l.Unlock()

	if s.tool != Smear {
		s.last = pt
		return s.apply(pt)
	}

	delta := pt.Sub(s.last)
	if abs(delta.X)+abs(delta.Y) < 1 {
		return nil
	}

	m, err := fusion.Smear(s.mask, fusion.BrushArea(s.last, s.radius),
		vec.Vec2{X: float64(delta.X), Y: float64(delta.Y)}, fusion.SmearOpacity)
	if err != nil {
		return err
	}

	s.mask = m
	s.last = pt
	s.log.With(zap.Stringer("to", pt), zap.Stringer("delta", delta)).Debug("mask smeared")
	return nil
}

func (s *Fusion) apply(pt image.Point) error {
	var m *raster.Mask
	var err error

	switch s.tool {
	case PaintA:
		m, err = fusion.Paint(s.mask, vec.Vec2{X: float64(pt.X), Y: float64(pt.Y)}, float64(s.radius), fusion.TargetA)
	case PaintB:
		m, err = fusion.Paint(s.mask, vec.Vec2{X: float64(pt.X), Y: float64(pt.Y)}, float64(s.radius), fusion.TargetB)
	case Smooth:
		m, err = fusion.Smooth(s.mask, fusion.BrushArea(pt, s.radius), s.radius, fusion.SmoothOpacity)
	default:
		return errors.Wrapf(fusion.ErrParam, "tool %d", s.tool)
	}
	if err != nil {
		return err
	}

	s.mask = m
	s.log.With(zap.Stringer("tool", s.tool), zap.Stringer("at", pt)).Debug("brush applied")
	return nil
}

// Result blends A into B through the current mask.
func (s *Fusion) Result() (*raster.Raster, error) {
	s.l.RLock()
	defer s.l.RUnlock()
	return fusion.Blend(s.a, s.b, fusion.Masked{Mask: s.mask})
}

// SetMask replaces the blend mask with a copy of m.
func (s *Fusion) SetMask(m *raster.Mask) error {
	if m == nil {
		return errors.Wrap(raster.ErrEmpty, "nil mask")
	}

	s.l.Lock()
	defer s.l.Unlock()

	if !s.a.SameSize(m) {
		return errors.Wrapf(fusion.ErrSize, "mask %v vs image %v", m.Bounds(), s.a.Bounds())
	}
	s.mask = m.Clone()
	return nil
}

func (s *Fusion) Mask() *raster.Mask {
	s.l.RLock()
	defer s.l.RUnlock()
	return s.mask.Clone()
}

func (s *Fusion) FlipA(axis fusion.Axis) error {
	return s.flip(&s.a, axis)
}

func (s *Fusion) FlipB(axis fusion.Axis) error {
	return s.flip(&s.b, axis)
}

func (s *Fusion) flip(img **raster.Raster, axis fusion.Axis) error {
	s.l.Lock()
	defer s.l.Unlock()

	out, err := fusion.Flip(*img, axis)
	if err != nil {
		return err
	}
	*img = out
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
