package goo

import (
	"strings"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/vec"
)

var (
	ErrBrush  = errors.New("unknown brush")
	ErrRadius = errors.New("brush radius must be positive")
)

// Brush is one of Smear, Grow, Shrink, Pinch or Ungoo. The set is closed:
// only this package can add kinds.
type Brush interface {
	Name() string
	// offset is the displacement for a pixel at rel (relative to the brush
	// center) with stroke direction dir and falloff weight w.
	offset(rel, dir vec.Vec2, force, radius, w float64) vec.Vec2
}

type (
	Smear  struct{}
	Grow   struct{}
	Shrink struct{}
	Pinch  struct{}
	Ungoo  struct{}
)

func (Smear) Name() string  { return "smear" }
func (Grow) Name() string   { return "grow" }
func (Shrink) Name() string { return "shrink" }
func (Pinch) Name() string  { return "pinch" }
func (Ungoo) Name() string  { return "ungoo" }

func (Smear) offset(_, dir vec.Vec2, force, radius, w float64) vec.Vec2 {
	return dir.Mul(force / radius * w)
}

func (Ungoo) offset(_, dir vec.Vec2, force, radius, w float64) vec.Vec2 {
	return dir.Mul(-force / radius * w)
}

func (Grow) offset(rel, _ vec.Vec2, force, radius, w float64) vec.Vec2 {
	return normalize(rel).Mul(force / radius * w)
}

func (Shrink) offset(rel, _ vec.Vec2, force, radius, w float64) vec.Vec2 {
	return normalize(rel).Mul(-force / radius * w)
}

// PinchFactor scales the pinch displacement per unit of force.
var PinchFactor = 0.01

func (Pinch) offset(rel, _ vec.Vec2, force, _, w float64) vec.Vec2 {
	return rel.Mul(-PinchFactor * force * w)
}

// Brushes lists every brush kind in menu order.
var Brushes = []Brush{Smear{}, Grow{}, Shrink{}, Pinch{}, Ungoo{}}

// ParseBrush looks a brush up by name, ignoring case.
func ParseBrush(name string) (Brush, error) {
	for _, b := range Brushes {
		if strings.EqualFold(b.Name(), name) {
			return b, nil
		}
	}
	return nil, errors.Wrapf(ErrBrush, "%q", name)
}

func normalize(v vec.Vec2) vec.Vec2 {
	if v.X == 0 && v.Y == 0 {
		return vec.Vec2{}
	}
	return v.Mul(1 / v.Length())
}
