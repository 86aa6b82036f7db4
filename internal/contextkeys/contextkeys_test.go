package contextkeys

import (
	"context"
	"testing"

	"github.com/srinugalla/the-slice-x/internal/core/port"
	"github.com/stretchr/testify/assert"
)

type recordingLogger struct {
	noopLogger
	fields port.Fields
}

func (r *recordingLogger) WithFields(f port.Fields) port.LoggerPort {
	r.fields = f
	return r
}

func TestLoggerFromContext(t *testing.T) {
	t.Run("missing logger falls back to noop", func(t *testing.T) {
		logger := LoggerFromContext(context.Background())
		assert.NotNil(t, logger)
		assert.NotPanics(t, func() {
			logger.WithFields(port.Fields{"k": "v"}).Error("boom", nil, nil)
		})
	})

	t.Run("stored logger is returned", func(t *testing.T) {
		rec := &recordingLogger{}
		ctx := ContextWithLogger(context.Background(), rec)
		LoggerFromContext(ctx).WithFields(port.Fields{"trace_id": "abc"})
		assert.Equal(t, "abc", rec.fields["trace_id"])
	})
}

func TestTraceIDFromContext(t *testing.T) {
	assert.Equal(t, "", TraceIDFromContext(context.Background()))
	ctx := ContextWithTraceID(context.Background(), "7f1c")
	assert.Equal(t, "7f1c", TraceIDFromContext(ctx))
}
