package main

import (
	"net/http"
	"os"

	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"goofx/internal/cli"
	"goofx/pkg/device/pngseq"
	"goofx/pkg/device/remote"
	"goofx/pkg/device/virtual"
	"goofx/pkg/proto"
)

var listen = flag.String("listen", ":9123", "listen addr")
var out = flag.String("out", "", "frame directory, frames are only logged when empty")
var run = flag.String("run", "", "run name, random when empty")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			func() (*zap.Logger, *http.Server) {
				return cli.Logger(*debug),
					&http.Server{Addr: *listen}
			},
			newDisplay,
		),
		fx.Invoke(
			remote.Proxy,
		),
	).Run()
}

func newDisplay(log *zap.Logger) (proto.Display, error) {
	if *out == "" {
		return virtual.Mock(log), nil
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		return nil, err
	}
	return pngseq.Open(*out, *run, log)
}
