package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

var discardLogger = NewCustomLogger(zap.NewNop())

func NewContext(ctx context.Context, l *CustomLogger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

func FromContextOrDiscard(ctx context.Context) *CustomLogger {
	if l, ok := ctx.Value(contextKey{}).(*CustomLogger); ok {
		return l
	}
	return discardLogger
}
