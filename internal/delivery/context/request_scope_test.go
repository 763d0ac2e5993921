package context

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestScope(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx := WithRequestScope(context.Background(), "req-1", scoped)

	assert.Equal(t, "req-1", RequestID(ctx))
	assert.Same(t, scoped, LoggerOrDefault(ctx, fallback))
}

func TestRequestScope_Empty(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	assert.Empty(t, RequestID(ctx))
	assert.Same(t, fallback, LoggerOrDefault(ctx, fallback))
	assert.Same(t, fallback, LoggerOrDefault(WithRequestScope(ctx, "req-2", nil), fallback))
}
