// Package parallel splits per-pixel work into bands of rows that run on
// separate goroutines. Every band owns a disjoint range of output rows, so
// callers never need locking as long as they only write inside their band.
package parallel

import (
	"runtime"

	"github.com/samber/lo"
	lop "github.com/samber/lo/parallel"
)

// MinBand is the smallest number of rows handed to one goroutine. Small
// images run on the calling goroutine.
var MinBand = 16

type Band struct {
	Y0, Y1 int // half open
}

// Bands partitions the rows [y0, y1) into at most workers bands.
func Bands(y0, y1, workers int) []Band {
	if y1 <= y0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := y1 - y0
	size := lo.Max([]int{(rows + workers - 1) / workers, MinBand})

	return lo.Map(lo.Chunk(lo.RangeFrom(y0, rows), size), func(c []int, _ int) Band {
		return Band{Y0: c[0], Y1: c[len(c)-1] + 1}
	})
}

// Rows calls fn once per band of [y0, y1) and waits for all of them.
func Rows(y0, y1 int, fn func(y0, y1 int)) {
	bands := Bands(y0, y1, 0)
	if len(bands) == 1 {
		fn(bands[0].Y0, bands[0].Y1)
		return
	}

	lop.ForEach(bands, func(b Band, _ int) {
		fn(b.Y0, b.Y1)
	})
}
