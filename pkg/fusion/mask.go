package fusion

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/vec"

	"goofx/pkg/raster"
)

// Target is the mask value a paint stroke pulls towards.
type Target uint8

const (
	TargetA Target = 0
	TargetB Target = 255
)

func (t Target) String() string {
	switch t {
	case TargetA:
		return "A"
	case TargetB:
		return "B"
	}
	return "invalid"
}

// Default stroke opacities of the smear and smooth tools.
const (
	SmearOpacity  = 0.9
	SmoothOpacity = 0.7
)

// BrushArea is the square patch covered by a brush of the given radius.
func BrushArea(center image.Point, radius int) image.Rectangle {
	return image.Rect(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius)
}

// Paint pulls the mask towards target inside radius around center. The
// stroke is a radial gradient from target at the center to each pixel's
// previous value at the rim, so overlapping strokes feather into each other.
func Paint(m *raster.Mask, center vec.Vec2, radius float64, target Target) (*raster.Mask, error) {
	if m == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil mask")
	}
	if target != TargetA && target != TargetB {
		return nil, errors.Wrapf(ErrParam, "paint target %d", target)
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, errors.Wrapf(ErrParam, "radius %v", radius)
	}

	dst := m.Clone()
	x0 := lo.Clamp(int(math.Floor(center.X-radius)), 0, m.Width())
	x1 := lo.Clamp(int(math.Ceil(center.X+radius))+1, 0, m.Width())
	y0 := lo.Clamp(int(math.Floor(center.Y-radius)), 0, m.Height())
	y1 := lo.Clamp(int(math.Ceil(center.Y+radius))+1, 0, m.Height())

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			d := math.Hypot(float64(x)-center.X, float64(y)-center.Y)
			if d >= radius {
				continue
			}
			t := d / radius
			v := float64(target) + (float64(m.Value(x, y))-float64(target))*t
			dst.SetValue(x, y, uint8(math.Round(v)))
		}
	}

	return dst, nil
}

// Smear copies the patch area of the mask, moves it by offset and lays it
// back over the mask at the given opacity, leaving a drag trail.
func Smear(m *raster.Mask, area image.Rectangle, offset vec.Vec2, opacity float64) (*raster.Mask, error) {
	if m == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil mask")
	}
	if err := checkOpacity(opacity); err != nil {
		return nil, err
	}

	src := area.Intersect(m.Bounds())
	dst := m.Clone()
	if src.Empty() || opacity == 0 {
		return dst, nil
	}

	target := image.Rect(
		int(math.Floor(float64(src.Min.X)+offset.X)),
		int(math.Floor(float64(src.Min.Y)+offset.Y)),
		int(math.Ceil(float64(src.Max.X)+offset.X)),
		int(math.Ceil(float64(src.Max.Y)+offset.Y)),
	).Intersect(m.Bounds())

	for y := target.Min.Y; y < target.Max.Y; y++ {
		for x := target.Min.X; x < target.Max.X; x++ {
			sx, sy := float64(x)-offset.X, float64(y)-offset.Y
			if sx < float64(src.Min.X) || sy < float64(src.Min.Y) ||
				sx > float64(src.Max.X-1) || sy > float64(src.Max.Y-1) {
				continue
			}
			v := raster.SampleMask(m, sx, sy)
			old := float64(m.Value(x, y))
			dst.SetValue(x, y, uint8(math.Round(old+(v-old)*opacity)))
		}
	}

	return dst, nil
}

// Smooth blurs the patch area by shrinking it to size x size pixels with a
// box filter and scaling it back up, then lays the result over the mask at
// the given opacity.
func Smooth(m *raster.Mask, area image.Rectangle, size int, opacity float64) (*raster.Mask, error) {
	if m == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil mask")
	}
	if size <= 0 {
		return nil, errors.Wrapf(ErrParam, "smooth size %d", size)
	}
	if err := checkOpacity(opacity); err != nil {
		return nil, err
	}

	area = area.Intersect(m.Bounds())
	dst := m.Clone()
	if area.Empty() || opacity == 0 {
		return dst, nil
	}

	patch := m.Gray().SubImage(area)
	small := imaging.Resize(patch, size, size, imaging.Box)

	blurred := image.NewGray(area)
	draw.BiLinear.Scale(blurred, area, small, small.Bounds(), draw.Src, nil)

	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			v := float64(blurred.GrayAt(x, y).Y)
			old := float64(m.Value(x, y))
			dst.SetValue(x, y, uint8(math.Round(old+(v-old)*opacity)))
		}
	}

	return dst, nil
}

func checkOpacity(opacity float64) error {
	if !(opacity >= 0 && opacity <= 1) {
		return errors.Wrapf(ErrParam, "opacity %v not in [0,1]", opacity)
	}
	return nil
}
