package fractal

import (
	"testing"

	"github.com/pkg/errors"

	"goofx/pkg/raster"
)

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(64, 48, 1.3, 17)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Generate(64, 48, 1.3, 17)
	if err != nil {
		t.Fatal(err)
	}
	if !a.Equal(b) {
		t.Error("identical arguments gave different images")
	}
}

func TestGenerateIsGray(t *testing.T) {
	img, err := Generate(32, 32, 1, 0)
	if err != nil {
		t.Fatal(err)
	}

	sawEscape := false
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			c, _ := img.Pixel(x, y)
			if c.R != c.G || c.G != c.B || c.A != 255 {
				t.Fatalf("pixel %d,%d not opaque gray: %v", x, y, c)
			}
			sawEscape = sawEscape || c.R < 10
		}
	}
	if !sawEscape {
		t.Error("expected fast escaping pixels at the border")
	}
}

func TestGenerateTimeMatters(t *testing.T) {
	a, _ := Generate(40, 40, 1, 0)
	b, _ := Generate(40, 40, 1, 30)
	if a.Equal(b) {
		t.Error("expected the perturbation to change the image")
	}

	c, _ := Generate(40, 40, 1, 30, WithPerturbation(0, 0.05))
	if !a.Equal(c) {
		t.Error("without perturbation time should not matter")
	}
}

func TestEscape(t *testing.T) {
	if got := escape(3, 0, 0, 0); got != 0 {
		t.Errorf("point outside radius 2 should escape at once, got %d", got)
	}
	if got := escape(0, 0, 0, 0); got != MaxIter {
		t.Errorf("origin with c=0 never escapes, got %d", got)
	}
	if got := escape(1.5, 0, 0, 0); got != 1 {
		t.Errorf("expected one step for 1.5, got %d", got)
	}
}

func TestGenerateRejects(t *testing.T) {
	for _, z := range []float64{0, -1} {
		if _, err := Generate(8, 8, z, 0); !errors.Is(err, ErrZoom) {
			t.Errorf("zoom %v: expected ErrZoom, got %v", z, err)
		}
	}
	if _, err := Generate(0, 8, 1, 0); !errors.Is(err, raster.ErrEmpty) {
		t.Errorf("expected ErrEmpty, got %v", err)
	}
}
