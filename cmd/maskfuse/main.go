package main

import (
	"log"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/zap"

	"goofx/internal/cli"
	"goofx/pkg/fusion"
	"goofx/pkg/raster"
	"goofx/pkg/session"
	"goofx/pkg/source"
)

var faceA = flag.String("a", "", "face A path or url")
var faceB = flag.String("b", "", "face B path or url")
var size = flag.Int("size", 512, "canvas size")
var radius = flag.Int("radius", session.DefaultRadius, "brush radius")
var paintA = flag.StringArray("paint-a", nil, "paint towards A at x,y")
var paintB = flag.StringArray("paint-b", nil, "paint towards B at x,y")
var smear = flag.StringArray("smear", nil, "smear the mask along x,y:x,y")
var smooth = flag.StringArray("smooth", nil, "smooth the mask at x,y")
var flipA = flag.String("flip-a", "", "flip face A: h or v")
var flipB = flag.String("flip-b", "", "flip face B: h or v")
var out = flag.String("out", "fusion.png", "output png path")
var maskIn = flag.String("mask", "", "starting mask image path or url, gray 0 is A and 255 is B")
var maskOut = flag.String("mask-out", "", "also save the mask here")
var debug = flag.Bool("debug", false, "set debug")

func main() {
	flag.Parse()

	logger := cli.Logger(*debug)
	defer func() { _ = logger.Sync() }()

	loader := source.NewLoader(logger, source.WithCanvas(*size, *size))

	a, err := loader.Load(*faceA)
	if err != nil {
		log.Fatal(err)
	}
	b, err := loader.Load(*faceB)
	if err != nil {
		log.Fatal(err)
	}

	s, err := session.NewFusion(a, b, logger)
	if err != nil {
		log.Fatal(err)
	}
	if err := s.SetRadius(*radius); err != nil {
		log.Fatal(err)
	}

	if *maskIn != "" {
		img, err := loader.Load(*maskIn)
		if err != nil {
			log.Fatal(err)
		}
		m, err := raster.MaskFromImage(img)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.SetMask(m); err != nil {
			log.Fatal(err)
		}
	}

	if err := flip(s.FlipA, *flipA); err != nil {
		log.Fatal(err)
	}
	if err := flip(s.FlipB, *flipB); err != nil {
		log.Fatal(err)
	}

	for _, step := range []struct {
		tool session.Tool
		pts  []string
	}{
		{session.PaintA, *paintA},
		{session.PaintB, *paintB},
		{session.Smooth, *smooth},
	} {
		pts, err := cli.ParsePoints(step.pts)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.SetTool(step.tool); err != nil {
			log.Fatal(err)
		}
		for _, pt := range pts {
			if err := s.Press(cli.Pixel(pt)); err != nil {
				log.Fatal(err)
			}
		}
	}

	if err := s.SetTool(session.Smear); err != nil {
		log.Fatal(err)
	}
	for _, seg := range *smear {
		from, to, err := cli.ParseSegment(seg)
		if err != nil {
			log.Fatal(err)
		}
		if err := s.Press(cli.Pixel(from)); err != nil {
			log.Fatal(err)
		}
		if err := s.Move(cli.Pixel(to)); err != nil {
			log.Fatal(err)
		}
	}

	res, err := s.Result()
	if err != nil {
		log.Fatal(err)
	}
	if err := imaging.Save(res.NRGBA(), *out); err != nil {
		log.Fatal(err)
	}

	if *maskOut != "" {
		if err := imaging.Save(s.Mask().Gray(), *maskOut); err != nil {
			log.Fatal(err)
		}
	}

	logger.With(zap.String("out", *out)).Info("saved")
}

func flip(fn func(fusion.Axis) error, axis string) error {
	switch axis {
	case "":
		return nil
	case "h":
		return fn(fusion.Horizontal)
	case "v":
		return fn(fusion.Vertical)
	}
	return errors.Errorf("unknown flip axis %q", axis)
}
