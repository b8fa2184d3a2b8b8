package virtual

import (
	"image"
	"sync"

	"go.uber.org/zap"

	"goofx/pkg/proto"
)

// Mock returns a display that only logs what it is asked to draw and keeps
// the last frame for inspection.
func Mock(logger *zap.Logger) *Mocker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Mocker{l: logger.With(zap.String("display", "virtual"))}
}

var _ proto.Display = (*Mocker)(nil)

type Mocker struct {
	l *zap.Logger

	mu     sync.Mutex
	frames int
	last   image.Image
}

func (m *Mocker) Startup() error {
	m.l.Info("startup")
	return nil
}

func (m *Mocker) Shutdown() error {
	m.l.With(zap.Int("frames", m.Frames())).Info("shutdown")
	return nil
}

func (m *Mocker) DrawBitmap(posX uint16, posY uint16, image image.Image) error {
	m.mu.Lock()
	m.frames++
	m.last = image
	n := m.frames
	m.mu.Unlock()

	m.l.With(
		zap.Int("frame", n),
		zap.Uint16("x", posX),
		zap.Uint16("y", posY),
		zap.Int("w", image.Bounds().Dx()),
		zap.Int("h", image.Bounds().Dy()),
	).Debug("draw-bitmap")
	return nil
}

func (m *Mocker) Frames() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.frames
}

func (m *Mocker) Last() image.Image {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}
