package pngseq

import (
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func TestSequenceWritesNumberedFrames(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := New(fs, "run1", zap.NewNop())

	if err := s.Startup(); err != nil {
		t.Fatal(err)
	}

	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	img.SetNRGBA(2, 1, color.NRGBA{R: 10, G: 20, B: 30, A: 255})

	for i := 0; i < 2; i++ {
		if err := s.DrawBitmap(0, 0, img); err != nil {
			t.Fatal(err)
		}
	}
	if s.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", s.Frames())
	}

	f, err := fs.Open("run1/frame-00002.png")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != img.Bounds() {
		t.Errorf("unexpected bounds %v", got.Bounds())
	}
	if r, g, b, _ := got.At(2, 1).RGBA(); r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
		t.Errorf("unexpected pixel %v", got.At(2, 1))
	}
}

func TestSequenceRejectsOffset(t *testing.T) {
	s := New(afero.NewMemMapFs(), "", zap.NewNop())
	if s.Dir() == "" {
		t.Fatal("expected a generated run name")
	}
	if err := s.DrawBitmap(1, 0, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err == nil {
		t.Error("expected an error for offset drawing")
	}
}

func TestSequenceWithoutLogger(t *testing.T) {
	s := New(afero.NewMemMapFs(), "quiet", nil)
	if err := s.Startup(); err != nil {
		t.Fatal(err)
	}
	if err := s.DrawBitmap(0, 0, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		t.Fatal(err)
	}
	if err := s.Shutdown(); err != nil {
		t.Fatal(err)
	}
}
