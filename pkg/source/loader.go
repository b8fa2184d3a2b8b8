package source

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/go-resty/resty/v2"
	"github.com/inhies/go-bytesize"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"goofx/pkg/raster"
)

var ErrFetch = errors.New("fetch failed")

func NewLoader(logger *zap.Logger, opts ...Option) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}

	l := &Loader{
		fs:       afero.NewOsFs(),
		cli:      resty.New().SetDoNotParseResponse(true),
		log:      logger.With(zap.String("via", "source")),
		progress: true,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Loader reads images from local paths or http(s) URLs and fits them to a
// fixed canvas so that every source shares the same size.
type Loader struct {
	fs       afero.Fs
	cli      *resty.Client
	log      *zap.Logger
	width    int
	height   int
	progress bool
}

func isURL(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Load decodes ref (PNG or JPEG) into a raster. With a canvas configured the
// image is scaled to cover it and center cropped.
func (l *Loader) Load(ref string) (*raster.Raster, error) {
	bs, err := lo.Ternary(isURL(ref), l.download, l.read)(ref)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewBuffer(bs))
	if err != nil {
		return nil, fmt.Errorf("image decode failed: %w", err)
	}

	l.log.With(
		zap.String("ref", ref),
		zap.String("format", format),
		zap.String("size", bytesize.New(float64(len(bs))).String()),
		zap.Stringer("bounds", img.Bounds()),
	).Debug("image loaded")

	if l.width > 0 && l.height > 0 {
		img = imaging.Fill(img, l.width, l.height, imaging.Center, imaging.Lanczos)
	}

	return raster.FromImage(img)
}

func (l *Loader) read(file string) ([]byte, error) {
	bs, err := afero.ReadFile(l.fs, file)
	if err != nil {
		return nil, fmt.Errorf("read %s failed: %w", file, err)
	}
	return bs, nil
}

func (l *Loader) download(url string) ([]byte, error) {
	resp, err := l.cli.R().Get(url)
	if err != nil {
		return nil, errors.Wrap(ErrFetch, err.Error())
	}

	defer func() {
		_ = resp.RawBody().Close()
	}()

	if resp.IsError() {
		return nil, errors.Wrapf(ErrFetch, "%s: %s", url, resp.Status())
	}

	var out io.Writer = io.Discard
	if l.progress {
		out = progressbar.DefaultBytes(resp.RawResponse.ContentLength, fmt.Sprintf("Downloading %s", url))
	}

	var buf bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&buf, out), resp.RawBody()); err != nil {
		return nil, errors.Wrap(ErrFetch, err.Error())
	}

	return buf.Bytes(), nil
}
