package fusion

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/pkg/errors"
	"seehuhn.de/go/geom/vec"

	"goofx/pkg/raster"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func solid(t *testing.T, w, h int, c color.NRGBA) *raster.Raster {
	t.Helper()
	r, err := raster.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	r.Fill(c)
	return r
}

func noise(t *testing.T, w, h int, seed int) *raster.Raster {
	t.Helper()
	r, err := raster.New(w, h)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := (x*31 + y*17 + seed*7) % 256
			r.SetPixel(x, y, color.NRGBA{R: uint8(v), G: uint8(255 - v), B: uint8(v / 2), A: uint8(128 + v/2)})
		}
	}
	return r
}

func mask(t *testing.T, w, h int, fill uint8) *raster.Mask {
	t.Helper()
	m, err := raster.NewMask(w, h, fill)
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func TestScalarBlendEndpoints(t *testing.T) {
	a, b := noise(t, 8, 6, 1), noise(t, 8, 6, 2)

	out, err := Blend(a, b, Scalar{Amount: 0})
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(a) {
		t.Error("amount 0 should give a")
	}

	out, _ = Blend(a, b, Scalar{Amount: 1})
	if !out.Equal(b) {
		t.Error("amount 1 should give b")
	}
}

func TestScalarBlendIdempotent(t *testing.T) {
	a := noise(t, 8, 6, 3)

	for _, amount := range []float64{0, 0.1, 0.3, 0.5, 0.77, 1} {
		out, err := Blend(a, a.Clone(), Scalar{Amount: amount})
		if err != nil {
			t.Fatal(err)
		}
		if !out.Equal(a) {
			t.Errorf("blend(a, a, %v) changed the image", amount)
		}
	}
}

func TestScalarBlendMidpoint(t *testing.T) {
	out, err := Blend(solid(t, 2, 2, red), solid(t, 2, 2, blue), Scalar{Amount: 0.5})
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := out.Pixel(1, 1); got != (color.NRGBA{R: 128, B: 128, A: 255}) {
		t.Errorf("unexpected midpoint %v", got)
	}
}

func TestMaskBlendMatchesScalar(t *testing.T) {
	a, b := noise(t, 7, 5, 4), noise(t, 7, 5, 5)

	for _, tt := range []struct {
		fill   uint8
		amount float64
	}{{0, 0}, {255, 1}} {
		want, _ := Blend(a, b, Scalar{Amount: tt.amount})
		got, err := Blend(a, b, Masked{Mask: mask(t, 7, 5, tt.fill)})
		if err != nil {
			t.Fatal(err)
		}
		if !got.Equal(want) {
			t.Errorf("mask %d differs from scalar %v", tt.fill, tt.amount)
		}
	}
}

func TestMaskBlendHardSeam(t *testing.T) {
	a, b := solid(t, 4, 4, red), solid(t, 4, 4, blue)
	m := mask(t, 4, 4, 0)
	for y := 0; y < 4; y++ {
		m.SetValue(2, y, 255)
		m.SetValue(3, y, 255)
	}

	out, err := Blend(a, b, Masked{Mask: m})
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := red
			if x >= 2 {
				want = blue
			}
			if got, _ := out.Pixel(x, y); got != want {
				t.Errorf("pixel %d,%d = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestWarpedBlendWithoutWarp(t *testing.T) {
	a, b := noise(t, 9, 9, 6), noise(t, 9, 9, 7)

	want, _ := Blend(a, b, Scalar{Amount: 0.4})
	got, err := Blend(a, b, NewWarped(0.4, 0, 42))
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equal(want) {
		t.Error("warp 0 should match the scalar blend")
	}
}

func TestWarpedBlendSkipsOutside(t *testing.T) {
	a, b := solid(t, 8, 8, red), solid(t, 8, 8, blue)

	// a displacement larger than the image pushes every read outside
	out, err := Blend(a, b, Warped{Amount: 1, Warp: 1000, Time: 0, Wavelength: DefaultWavelength})
	if err != nil {
		t.Fatal(err)
	}

	changed := 0
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			got, _ := out.Pixel(x, y)
			if got != red && got != blue {
				t.Fatalf("pixel %d,%d is %v", x, y, got)
			}
			if got == blue {
				changed++
			}
		}
	}
	if changed == 64 {
		t.Error("expected some out of bounds reads to keep a")
	}
}

func TestWarpedBlendDisplacement(t *testing.T) {
	a := solid(t, 32, 32, color.NRGBA{B: 200, A: 255})
	b, _ := raster.New(32, 32)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			b.SetPixel(x, y, color.NRGBA{R: uint8(x * 7), G: uint8(y * 7), A: 255})
		}
	}

	out, err := Blend(a, b, NewWarped(1, 3, 7))
	if err != nil {
		t.Fatal(err)
	}

	// x reads along sin of the row, y along cos of the column, both
	// truncated toward zero
	tests := []struct {
		at, from image.Point
	}{
		{image.Pt(3, 20), image.Pt(5, 22)},   // 5.91, 22.64
		{image.Pt(25, 2), image.Pt(26, 1)},   // 26.30, 1.98
		{image.Pt(16, 16), image.Pt(18, 17)}, // 18.72, 17.27
	}
	for _, tt := range tests {
		want, _ := b.Pixel(tt.from.X, tt.from.Y)
		if got, _ := out.Pixel(tt.at.X, tt.at.Y); got != want {
			t.Errorf("pixel %v = %v, want b at %v (%v)", tt.at, got, tt.from, want)
		}
	}

	// 0,31 reads row 33 and keeps a
	if got, _ := out.Pixel(0, 31); got != (color.NRGBA{B: 200, A: 255}) {
		t.Errorf("out of bounds read should keep a, got %v", got)
	}
}

func TestWarpedBlendStaticSeam(t *testing.T) {
	a, b := noise(t, 16, 16, 3), noise(t, 16, 16, 4)

	still := Warped{Amount: 0.5, Warp: 4, Time: 0, Wavelength: 32}
	want, err := Blend(a, b, still)
	if err != nil {
		t.Fatal(err)
	}

	// zero phase speed means the seam does not move with time
	still.Time = 99
	got, _ := Blend(a, b, still)
	if !got.Equal(want) {
		t.Error("phase 0 should ignore time")
	}

	moving := NewWarped(0.5, 4, 99)
	moving.Wavelength = 32
	if got, _ := Blend(a, b, moving); got.Equal(want) {
		t.Error("expected the default phase speed to move the seam")
	}
}

func TestBlendRejects(t *testing.T) {
	a := noise(t, 4, 4, 1)

	tests := []struct {
		name string
		b    *raster.Raster
		mode Mode
		want error
	}{
		{"size", noise(t, 5, 4, 1), Scalar{Amount: 0.5}, ErrSize},
		{"mask size", a, Masked{Mask: mask(t, 4, 3, 0)}, ErrSize},
		{"nil mask", a, Masked{}, ErrParam},
		{"amount", a, Scalar{Amount: 1.5}, ErrParam},
		{"warp", a, NewWarped(0.5, -1, 0), ErrParam},
		{"wavelength", a, Warped{Amount: 0.5, Warp: 1}, ErrParam},
		{"phase", a, Warped{Amount: 0.5, Warp: 1, Wavelength: 64, Phase: math.Inf(1)}, ErrParam},
		{"nil mode", a, nil, ErrParam},
		{"nil image", nil, Scalar{}, raster.ErrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Blend(a, tt.b, tt.mode)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if out != nil {
				t.Error("expected no output on error")
			}
		})
	}
}

func TestPaint(t *testing.T) {
	m := mask(t, 21, 21, 128)

	out, err := Paint(m, vec.Vec2{X: 10, Y: 10}, 5, TargetB)
	if err != nil {
		t.Fatal(err)
	}
	if got := out.Value(10, 10); got != 255 {
		t.Errorf("center should reach the target, got %d", got)
	}
	if got := out.Value(10, 15); got != 128 {
		t.Errorf("rim should keep the old value, got %d", got)
	}
	if got := out.Value(12, 10); got <= 128 || got >= 255 {
		t.Errorf("inside should be feathered, got %d", got)
	}
	if m.Value(10, 10) != 128 {
		t.Error("input mask was modified")
	}

	out, _ = Paint(out, vec.Vec2{X: 10, Y: 10}, 5, TargetA)
	if got := out.Value(10, 10); got != 0 {
		t.Errorf("paint A should reach 0, got %d", got)
	}

	if _, err := Paint(m, vec.Vec2{}, 5, Target(7)); !errors.Is(err, ErrParam) {
		t.Errorf("expected ErrParam for bad target, got %v", err)
	}
	if _, err := Paint(m, vec.Vec2{}, 0, TargetA); !errors.Is(err, ErrParam) {
		t.Errorf("expected ErrParam for zero radius, got %v", err)
	}
}

func TestSmear(t *testing.T) {
	m := mask(t, 20, 10, 0)
	for y := 0; y < 10; y++ {
		for x := 0; x < 5; x++ {
			m.SetValue(x, y, 200)
		}
	}

	same, err := Smear(m, image.Rect(0, 0, 10, 10), vec.Vec2{X: 3}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !same.Equal(m) {
		t.Error("opacity 0 should leave the mask alone")
	}

	out, err := Smear(m, image.Rect(0, 0, 10, 10), vec.Vec2{X: 3}, SmearOpacity)
	if err != nil {
		t.Fatal(err)
	}
	// x=6 reads x=3 (200) and keeps 10% of 0
	if got := out.Value(6, 4); got != 180 {
		t.Errorf("expected dragged value 180, got %d", got)
	}
	// x=15 is beyond the moved patch
	if got := out.Value(15, 4); got != 0 {
		t.Errorf("expected untouched 0, got %d", got)
	}

	if _, err := Smear(m, image.Rect(0, 0, 1, 1), vec.Vec2{}, 2); !errors.Is(err, ErrParam) {
		t.Errorf("expected ErrParam, got %v", err)
	}
}

func TestSmooth(t *testing.T) {
	flat := mask(t, 16, 16, 90)

	out, err := Smooth(flat, image.Rect(2, 2, 12, 12), 5, SmoothOpacity)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(flat) {
		t.Error("smoothing a constant mask should be a no-op")
	}

	edge := mask(t, 16, 16, 0)
	for y := 0; y < 16; y++ {
		for x := 8; x < 16; x++ {
			edge.SetValue(x, y, 255)
		}
	}
	out, err = Smooth(edge, image.Rect(0, 0, 16, 16), 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if v := out.Value(7, 8); v == 0 {
		t.Error("expected the hard edge to be softened")
	}

	if _, err := Smooth(flat, image.Rect(0, 0, 4, 4), 0, 0.5); !errors.Is(err, ErrParam) {
		t.Errorf("expected ErrParam, got %v", err)
	}
}

func TestBrushArea(t *testing.T) {
	if got := BrushArea(image.Pt(10, 20), 5); got != image.Rect(5, 15, 15, 25) {
		t.Errorf("unexpected area %v", got)
	}
}

func TestOverlay(t *testing.T) {
	base, top := solid(t, 3, 3, red), solid(t, 3, 3, blue)

	out, err := Overlay(base, top, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !out.Equal(base) {
		t.Error("opacity 0 should keep the base")
	}

	out, _ = Overlay(base, top, 1)
	if !out.Equal(top) {
		t.Error("opaque top at full opacity should replace the base")
	}

	top.SetPixel(1, 1, color.NRGBA{})
	out, _ = Overlay(base, top, 0.7)
	if got, _ := out.Pixel(1, 1); got != red {
		t.Errorf("transparent top should show base, got %v", got)
	}
	if got, _ := out.Pixel(0, 0); got != (color.NRGBA{R: 77, B: 179, A: 255}) {
		t.Errorf("unexpected 70%% overlay %v", got)
	}
}

func TestFlip(t *testing.T) {
	img := noise(t, 5, 3, 9)

	h, err := Flip(img, Horizontal)
	if err != nil {
		t.Fatal(err)
	}
	want, _ := img.Pixel(0, 1)
	if got, _ := h.Pixel(4, 1); got != want {
		t.Errorf("horizontal flip: got %v want %v", got, want)
	}

	v, _ := Flip(img, Vertical)
	want, _ = img.Pixel(3, 0)
	if got, _ := v.Pixel(3, 2); got != want {
		t.Errorf("vertical flip: got %v want %v", got, want)
	}

	if _, err := Flip(img, Axis(5)); !errors.Is(err, ErrParam) {
		t.Errorf("expected ErrParam, got %v", err)
	}
}
