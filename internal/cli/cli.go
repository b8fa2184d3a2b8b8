// Package cli holds the flag parsing and setup helpers shared by the
// command line tools.
package cli

import (
	"image"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
	"seehuhn.de/go/geom/vec"
)

var ErrPoint = errors.New("invalid point")

func Logger(debug bool) *zap.Logger {
	var logger *zap.Logger
	if debug {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	return logger
}

// ParsePoint reads "x,y".
func ParsePoint(s string) (vec.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return vec.Vec2{}, errors.Wrapf(ErrPoint, "%q", s)
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return vec.Vec2{}, errors.Wrapf(ErrPoint, "%q: %v", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return vec.Vec2{}, errors.Wrapf(ErrPoint, "%q: %v", s, err)
	}

	return vec.Vec2{X: x, Y: y}, nil
}

func ParsePoints(ss []string) ([]vec.Vec2, error) {
	pts := make([]vec.Vec2, 0, len(ss))
	for _, s := range ss {
		p, err := ParsePoint(s)
		if err != nil {
			return nil, err
		}
		pts = append(pts, p)
	}
	return pts, nil
}

// ParseSegment reads "x,y:x,y".
func ParseSegment(s string) (from, to vec.Vec2, err error) {
	ends := strings.Split(s, ":")
	if len(ends) != 2 {
		return from, to, errors.Wrapf(ErrPoint, "segment %q", s)
	}
	if from, err = ParsePoint(ends[0]); err != nil {
		return
	}
	to, err = ParsePoint(ends[1])
	return
}

// Pixel rounds p to the nearest pixel.
func Pixel(p vec.Vec2) image.Point {
	return image.Pt(int(lo.Ternary(p.X < 0, p.X-0.5, p.X+0.5)), int(lo.Ternary(p.Y < 0, p.Y-0.5, p.Y+0.5)))
}
