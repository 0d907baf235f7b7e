package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// ctxKey keys the logger stored in a context; an unexported struct type
// cannot collide with keys from other packages.
type ctxKey struct{}

// WithLogger attaches logger to ctx so deeper layers of a run (the runner's
// workers, mainly) log through the same configured instance.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxKey{}, logger)
}

// FromContext returns the logger attached with WithLogger, falling back to
// the package default so callers never receive nil.
func FromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(ctxKey{}).(*log.Logger); ok && logger != nil {
			return logger
		}
	}
	return Default()
}
