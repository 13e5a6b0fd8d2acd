package ctxlog

import (
	"context"

	"github.com/go-kit/kit/log"
)

type key int

const loggerKey key = 0

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored on ctx, or a nop logger.
func FromContext(ctx context.Context) log.Logger {
	v, ok := ctx.Value(loggerKey).(log.Logger)
	if !ok {
		return log.NewNopLogger()
	}
	return v
}
