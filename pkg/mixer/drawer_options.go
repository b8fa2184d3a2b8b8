package mixer

import "go.uber.org/zap"

type Option func(d *Drawer)

func WithEffect(e ...Effect) Option {
	return func(d *Drawer) {
		d.effs = append(d.effs, e...)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(d *Drawer) {
		d.logger = l.With(zap.String("via", "mixer"))
	}
}
