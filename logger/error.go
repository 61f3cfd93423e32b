package logger

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// AnnotateError attaches slog key/value pairs to err. When the result is logged
// through a handler returned by NewErrorHandler, the pairs are added to the
// record next to the error. The annotation is transparent to errors.Is and
// errors.As. A nil err yields nil.
//
//	return logger.AnnotateError(ErrItemDoesNotExist, "op", "remove", "key", key)
func AnnotateError(err error, args ...any) error {
	if err == nil {
		return nil
	}

	record := slog.NewRecord(time.Time{}, slog.LevelDebug, "", 0)
	record.Add(args...)

	attrs := make([]slog.Attr, 0, record.NumAttrs())
	record.Attrs(func(attr slog.Attr) bool {
		attrs = append(attrs, attr)

		return true
	})

	return &annotatedError{err: err, attrs: attrs}
}

// Attrs returns every attribute attached to err or anything it wraps, outermost
// annotation first.
func Attrs(err error) []slog.Attr {
	var out []slog.Attr

	for err != nil {
		var ae *annotatedError
		if !errors.As(err, &ae) {
			break
		}

		out = append(out, ae.attrs...)
		err = ae.err
	}

	return out
}

type annotatedError struct {
	err   error
	attrs []slog.Attr
}

var _ error = (*annotatedError)(nil)

func (a *annotatedError) Error() string {
	return a.err.Error()
}

func (a *annotatedError) Unwrap() error {
	return a.err
}

// errorHandler expands annotated errors found in record attributes.
type errorHandler struct {
	inner slog.Handler
}

var _ slog.Handler = (*errorHandler)(nil)

// NewErrorHandler wraps inner so that attributes attached with AnnotateError are
// emitted alongside the error they were attached to.
func NewErrorHandler(inner slog.Handler) slog.Handler {
	if _, ok := inner.(*errorHandler); ok {
		return inner
	}

	return &errorHandler{inner: inner}
}

func (h *errorHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.inner.Enabled(ctx, level)
}

func (h *errorHandler) Handle(ctx context.Context, record slog.Record) error {
	var extra []slog.Attr

	record.Attrs(func(attr slog.Attr) bool {
		if err, ok := attr.Value.Any().(error); ok {
			extra = append(extra, Attrs(err)...)
		}

		return true
	})

	if len(extra) == 0 {
		return h.inner.Handle(ctx, record)
	}

	out := record.Clone()
	out.AddAttrs(extra...)

	return h.inner.Handle(ctx, out)
}

func (h *errorHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &errorHandler{inner: h.inner.WithAttrs(attrs)}
}

func (h *errorHandler) WithGroup(name string) slog.Handler {
	return &errorHandler{inner: h.inner.WithGroup(name)}
}
