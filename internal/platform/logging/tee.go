package logging

import (
	"context"
	"errors"
	"log/slog"
)

// tee writes each record to the console sink and the rolling file sink.
// A failing sink does not stop the other from receiving the record.
type tee struct {
	sinks []slog.Handler
}

func newTee(sinks ...slog.Handler) slog.Handler {
	if len(sinks) == 1 {
		return sinks[0]
	}

	return tee{sinks: sinks}
}

func (t tee) Enabled(ctx context.Context, level slog.Level) bool {
	for _, s := range t.sinks {
		if s.Enabled(ctx, level) {
			return true
		}
	}

	return false
}

//nolint:gocritic // slog.Handler passes records by value
func (t tee) Handle(ctx context.Context, r slog.Record) error {
	var errs []error

	for _, s := range t.sinks {
		if !s.Enabled(ctx, r.Level) {
			continue
		}

		if err := s.Handle(ctx, r.Clone()); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func (t tee) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return t
	}

	return t.each(func(s slog.Handler) slog.Handler { return s.WithAttrs(attrs) })
}

func (t tee) WithGroup(name string) slog.Handler {
	if name == "" {
		return t
	}

	return t.each(func(s slog.Handler) slog.Handler { return s.WithGroup(name) })
}

func (t tee) each(f func(slog.Handler) slog.Handler) tee {
	sinks := make([]slog.Handler, len(t.sinks))
	for i, s := range t.sinks {
		sinks[i] = f(s)
	}

	return tee{sinks: sinks}
}
