package virtual

import (
	"image"
	"testing"

	"go.uber.org/zap"
)

func TestMockKeepsLastFrame(t *testing.T) {
	m := Mock(zap.NewNop())
	if err := m.Startup(); err != nil {
		t.Fatal(err)
	}

	a := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	b := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	_ = m.DrawBitmap(0, 0, a)
	_ = m.DrawBitmap(1, 1, b)

	if m.Frames() != 2 {
		t.Errorf("expected 2 frames, got %d", m.Frames())
	}
	if m.Last() != image.Image(b) {
		t.Error("expected the last frame to be kept")
	}
	if err := m.Shutdown(); err != nil {
		t.Fatal(err)
	}
}
