package main

import (
	"context"
	"os"

	"github.com/schollz/progressbar/v3"
	flag "github.com/spf13/pflag"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"goofx/internal/cli"
	"goofx/pkg/device/pngseq"
	"goofx/pkg/device/remote"
	"goofx/pkg/mixer"
	"goofx/pkg/proto"
	"goofx/pkg/source"
)

var faceA = flag.String("a", "", "face A path or url")
var faceB = flag.String("b", "", "face B path or url")
var frames = flag.Int("frames", 60, "frames to render")
var blend = flag.Float64("blend", 0.5, "blend amount")
var zoom = flag.Float64("zoom", 1, "fractal zoom")
var spin = flag.Float64("spin", 0, "tile spin in degrees")
var warp = flag.Float64("warp", 10, "warp and ripple strength")
var size = flag.Int("size", 512, "canvas size")
var out = flag.String("out", "frames", "frame directory")
var run = flag.String("run", "", "run name, random when empty")
var addr = flag.String("remote", "", "preview server addr, frames are sent there instead of -out")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Provide(
			func() *zap.Logger {
				return cli.Logger(*debug)
			},
			func(log *zap.Logger) *source.Loader {
				return source.NewLoader(log, source.WithCanvas(*size, *size))
			},
			newDisplay,
			func(dev proto.Display, log *zap.Logger) *mixer.Drawer {
				return mixer.NewDrawer(dev, mixer.WithLogger(log))
			},
			mixer.NewRoom,
		),
		fx.Invoke(
			render,
		),
	).Run()
}

func newDisplay(log *zap.Logger) (proto.Display, error) {
	if *addr != "" {
		return remote.New(*addr)
	}

	if err := os.MkdirAll(*out, 0755); err != nil {
		return nil, err
	}
	return pngseq.Open(*out, *run, log)
}

func render(
	lifecycle fx.Lifecycle,
	shutdowner fx.Shutdowner,
	loader *source.Loader,
	room *mixer.Room,
	drawer *mixer.Drawer,
	dev proto.Display,
	log *zap.Logger,
) {
	params := mixer.RoomParams{Blend: *blend, Zoom: *zoom, Spin: *spin, Warp: *warp}

	lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			a, err := loader.Load(*faceA)
			if err != nil {
				return err
			}
			b, err := loader.Load(*faceB)
			if err != nil {
				return err
			}

			if err := dev.Startup(); err != nil {
				return err
			}

			go func() {
				defer func() {
					_ = shutdowner.Shutdown()
				}()

				bar := progressbar.Default(int64(*frames), "Rendering")
				for t := 0; t < *frames; t++ {
					frame, err := room.Frame(a, b, params, t)
					if err != nil {
						log.With(zap.Int("tick", t), zap.Error(err)).Error("render failed")
						return
					}
					if err := drawer.Canvas(frame); err != nil {
						log.With(zap.Int("tick", t), zap.Error(err)).Error("draw failed")
						return
					}
					_ = bar.Add(1)
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return dev.Shutdown()
		},
	})
}
