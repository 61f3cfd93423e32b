// Package logger configures log/slog for programs built on this module and
// provides AnnotateError for attaching structured attributes to errors.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// configMutex serializes changes to the process-wide default loggers.
var configMutex sync.Mutex //nolint:gochecknoglobals

// ErrInvalidLogOutput is returned when LOG_OUTPUT names an unknown destination.
var ErrInvalidLogOutput = errors.New("invalid log output")

// Options is used to configure logging.
type Options struct {
	Subsystem   string
	JSON        bool
	MinLevel    slog.Level
	LegacyLevel slog.Level
	Output      io.Writer
}

// Option adjusts Options before they are applied by ConfigureLogging.
type Option func(*Options)

// WithOutput overrides the destination chosen from the environment.
func WithOutput(w io.Writer) Option {
	return func(o *Options) {
		o.Output = w
	}
}

// WithMinLevel overrides the level chosen from the environment.
func WithMinLevel(level slog.Level) Option {
	return func(o *Options) {
		o.MinLevel = level
	}
}

// ConfigureLoggingWithOptions installs a text or JSON handler as the slog default
// and redirects the legacy log package into it. Errors created with AnnotateError
// have their attributes expanded by the installed handler.
func ConfigureLoggingWithOptions(opts Options) *slog.Logger {
	configMutex.Lock()
	defer configMutex.Unlock()

	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	handlerOpts := &slog.HandlerOptions{Level: opts.MinLevel}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Output, handlerOpts)
	} else {
		handler = slog.NewTextHandler(opts.Output, handlerOpts)
	}

	handler = NewErrorHandler(handler)

	logger := slog.New(handler)
	if opts.Subsystem != "" {
		logger = logger.With("subsystem", opts.Subsystem)
	}

	slog.SetDefault(logger)

	// Third party packages may still use the log package.
	def := log.Default()
	*def = *slog.NewLogLogger(logger.Handler(), opts.LegacyLevel)

	return logger
}

// environment is decoded from LOG_* variables.
type environment struct {
	JSON        bool       `envconfig:"LOG_JSON"         default:"false"`
	Level       slog.Level `envconfig:"LOG_LEVEL"        default:"info"`
	LegacyLevel slog.Level `envconfig:"LEGACY_LOG_LEVEL" default:"info"`
	Output      string     `envconfig:"LOG_OUTPUT"       default:"stdout"`
}

// ConfigureLogging configures logging from the environment (LOG_JSON, LOG_LEVEL,
// LEGACY_LOG_LEVEL and LOG_OUTPUT, which is "stdout" or "stderr") and returns the
// new default logger. Options are applied after the environment is read.
func ConfigureLogging(app string, opts ...Option) (*slog.Logger, error) {
	var env environment
	if err := envconfig.Process("", &env); err != nil {
		return nil, fmt.Errorf("reading logging environment: %w", err)
	}

	var output io.Writer

	switch env.Output {
	case "stdout":
		output = os.Stdout
	case "stderr":
		output = os.Stderr
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidLogOutput, env.Output)
	}

	options := Options{
		Subsystem:   app,
		JSON:        env.JSON,
		MinLevel:    env.Level,
		LegacyLevel: env.LegacyLevel,
		Output:      output,
	}

	for _, o := range opts {
		o(&options)
	}

	return ConfigureLoggingWithOptions(options), nil
}
