package source

import (
	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"
)

type Option func(l *Loader)

// WithCanvas fits every loaded image to width x height.
func WithCanvas(width, height int) Option {
	return func(l *Loader) {
		l.width = width
		l.height = height
	}
}

func WithFs(fs afero.Fs) Option {
	return func(l *Loader) {
		l.fs = fs
	}
}

func WithClient(cli *resty.Client) Option {
	return func(l *Loader) {
		l.cli = cli.SetDoNotParseResponse(true)
	}
}

// WithProgress toggles the download progress bar.
func WithProgress(enabled bool) Option {
	return func(l *Loader) {
		l.progress = enabled
	}
}
