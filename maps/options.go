package maps

import "log/slog"

type options struct {
	logger   *slog.Logger
	hideKeys bool
}

// Option configures a SortedMap at construction.
type Option func(*options)

// WithLogger sets the logger used to report failed copies and rollbacks.
// The default is slog.Default(). A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithoutKeyLogging keeps keys out of debug logs and out of the attributes
// attached to returned errors. Use it when keys hold secrets. Copies of the map
// inherit the setting.
func WithoutKeyLogging() Option {
	return func(o *options) {
		o.hideKeys = true
	}
}

func buildOptions(opts []Option) options {
	out := options{logger: slog.Default()}

	for _, opt := range opts {
		if opt != nil {
			opt(&out)
		}
	}

	return out
}
