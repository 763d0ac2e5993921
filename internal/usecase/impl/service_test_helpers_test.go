package impl

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	deliverycontext "storm/internal/delivery/context"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newCapturingContext returns a context whose request-scoped logger writes to the returned buffer.
func newCapturingContext() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := deliverycontext.WithRequestScope(context.Background(), "req-test", logger)

	return ctx, buf
}
