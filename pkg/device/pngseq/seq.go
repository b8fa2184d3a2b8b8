package pngseq

import (
	"bytes"
	"fmt"
	"image"
	"path"
	"sync"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/rs/xid"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"goofx/pkg/proto"
)

// Open writes frames below the existing directory root on the local disk.
func Open(root, run string, logger *zap.Logger) (*Sequence, error) {
	fs, err := newFs(root)
	if err != nil {
		return nil, fmt.Errorf("open frame dir failed: %w", err)
	}
	return New(fs, run, logger), nil
}

// New writes frames as run/frame-00001.png, run/frame-00002.png, ... on fs.
// An empty run gets a fresh unique name.
func New(fs afero.Fs, run string, logger *zap.Logger) *Sequence {
	if run == "" {
		run = xid.New().String()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Sequence{
		fs:  fs,
		dir: run,
		log: logger.With(zap.String("display", "pngseq"), zap.String("run", run)),
	}
}

var _ proto.Display = (*Sequence)(nil)

type Sequence struct {
	sync.Mutex
	fs  afero.Fs
	dir string
	log *zap.Logger
	n   int
}

func (s *Sequence) Dir() string {
	return s.dir
}

func (s *Sequence) filename(n int) string {
	return path.Join(s.dir, fmt.Sprintf("frame-%05d.png", n))
}

func (s *Sequence) Startup() error {
	if exists, err := afero.DirExists(s.fs, s.dir); err != nil {
		return err
	} else if !exists {
		if err2 := s.fs.MkdirAll(s.dir, 0755); err2 != nil {
			return err2
		}
	}

	s.log.Info("startup")
	return nil
}

func (s *Sequence) Shutdown() error {
	s.Lock()
	defer s.Unlock()

	s.log.With(zap.Int("frames", s.n)).Info("shutdown")
	return nil
}

func (s *Sequence) DrawBitmap(posX uint16, posY uint16, img image.Image) error {
	if posX != 0 || posY != 0 {
		return errors.New("offset drawing not supported")
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return err
	}

	s.Lock()
	defer s.Unlock()

	s.n++
	file := s.filename(s.n)
	if err := afero.WriteFile(s.fs, file, buf.Bytes(), 0644); err != nil {
		s.n--
		return err
	}

	s.log.With(zap.String("file", file), zap.Int("bytes", buf.Len())).Debug("frame saved")
	return nil
}

// Frames is the number of frames written so far.
func (s *Sequence) Frames() int {
	s.Lock()
	defer s.Unlock()
	return s.n
}
