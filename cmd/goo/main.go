package main

import (
	"log"

	"github.com/disintegration/imaging"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"goofx/internal/cli"
	"goofx/pkg/goo"
	"goofx/pkg/session"
	"goofx/pkg/source"
)

var in = flag.String("in", "", "source image path or url")
var out = flag.String("out", "goo.png", "output png path")
var brush = flag.String("brush", "smear", "smear, grow, shrink, pinch or ungoo")
var radius = flag.Float64("radius", 100, "brush radius")
var force = flag.Float64("force", 10, "brush force")
var width = flag.Int("width", 0, "canvas width, 0 keeps the source size")
var height = flag.Int("height", 0, "canvas height, 0 keeps the source size")
var strokes = flag.StringArray("stroke", nil, "pointer positions x,y, the first one presses")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger := cli.Logger(*debug)
	defer func() { _ = logger.Sync() }()

	b, err := goo.ParseBrush(*brush)
	if err != nil {
		log.Fatal(err)
	}

	pts, err := cli.ParsePoints(*strokes)
	if err != nil {
		log.Fatal(err)
	}

	img, err := source.NewLoader(logger, source.WithCanvas(*width, *height)).Load(*in)
	if err != nil {
		log.Fatal(err)
	}

	s, err := session.NewGoo(img, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.SetBrush(b); err != nil {
		log.Fatal(err)
	}
	if err := s.SetRadius(*radius); err != nil {
		log.Fatal(err)
	}
	s.SetForce(*force)

	for i, pt := range pts {
		if i == 0 {
			s.Press(pt)
			continue
		}
		if err := s.Move(pt); err != nil {
			log.Fatal(err)
		}
	}

	if err := imaging.Save(s.Image().NRGBA(), *out); err != nil {
		log.Fatal(err)
	}

	logger.With(zap.String("out", *out), zap.Int("strokes", s.Strokes())).Info("saved")
}
