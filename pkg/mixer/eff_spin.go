package mixer

import (
	"image"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/matrix"

	"goofx/pkg/raster"
)

var ErrTiles = errors.New("invalid tile count")

func EffectTileSpin(angle float64, tiles int) Effect {
	return &spin{
		angle: angle,
		tiles: tiles,
	}
}

type spin struct {
	angle float64
	tiles int
}

func (e *spin) Name() string {
	return "tile-spin"
}

func (e *spin) Process(img *raster.Raster) (*raster.Raster, error) {
	return SpinTiles(img, e.angle, e.tiles)
}

// SpinTiles cuts img into tiles x tiles equal cells and rotates each cell
// by angleDeg around its own center. Content rotated past a cell border is
// clipped, it never spills into the neighbours. When the size is not a
// multiple of tiles the leftover strip at the right and bottom is copied
// through unchanged.
func SpinTiles(img *raster.Raster, angleDeg float64, tiles int) (*raster.Raster, error) {
	if img == nil {
		return nil, errors.Wrap(raster.ErrEmpty, "nil image")
	}

	w, h := img.Width(), img.Height()
	if tiles < 1 || tiles > w || tiles > h {
		return nil, errors.Wrapf(ErrTiles, "%d tiles on %dx%d", tiles, w, h)
	}

	dst := img.Clone()
	size := image.Pt(w/tiles, h/tiles)

	// maps destination offsets from the tile center back into the source
	m := matrix.RotateDeg(-angleDeg)

	var cells []image.Rectangle
	for x := 0; x+size.X <= w; x += size.X {
		for y := 0; y+size.Y <= h; y += size.Y {
			cells = append(cells, image.Rectangle{Min: image.Pt(x, y), Max: image.Pt(x+size.X, y+size.Y)})
		}
	}

	for _, cell := range cells {
		cx := float64(cell.Min.X) + float64(size.X-1)/2
		cy := float64(cell.Min.Y) + float64(size.Y-1)/2

		for y := cell.Min.Y; y < cell.Max.Y; y++ {
			for x := cell.Min.X; x < cell.Max.X; x++ {
				dx, dy := float64(x)-cx, float64(y)-cy
				sx := m[0]*dx + m[2]*dy + cx
				sy := m[1]*dx + m[3]*dy + cy

				if sx <= float64(cell.Min.X)-1 || sy <= float64(cell.Min.Y)-1 ||
					sx >= float64(cell.Max.X) || sy >= float64(cell.Max.Y) {
					dst.SetPixel(x, y, raster.Transparent.NRGBA())
					continue
				}
				dst.SetPixel(x, y, raster.SampleWithin(img, cell, sx, sy).NRGBA())
			}
		}
	}

	return dst, nil
}
