package layers

import (
	"github.com/datatrails/go-datatrails-common/logger"
)

// Options configures Compile and Registry.
type Options struct {
	// Log is optional. Nothing is logged when it is nil.
	Log logger.Logger
}

// Option is a generic option type. Implementations type assert to their
// options record and ignore options aimed at a different target.
type Option func(any)

func WithLogger(log logger.Logger) Option {
	return func(opts any) {
		if o, ok := opts.(*Options); ok {
			o.Log = log
		}
	}
}

func newOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) debugf(format string, args ...any) {
	if o.Log == nil {
		return
	}
	o.Log.Debugf(format, args...)
}

func (o Options) infof(format string, args ...any) {
	if o.Log == nil {
		return
	}
	o.Log.Infof(format, args...)
}
