package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestGet(t *testing.T) {
	logger1 := Get()
	require.NotNil(t, logger1)

	logger2 := Get()
	assert.Same(t, logger1, logger2)
}

func TestFromCtx(t *testing.T) {
	t.Run("empty context falls back to default", func(t *testing.T) {
		assert.Same(t, Get(), FromCtx(context.Background()))
	})

	t.Run("attached logger is returned", func(t *testing.T) {
		customLogger := Get().With("custom", "value")
		ctx := WithCtx(context.Background(), customLogger)

		assert.Same(t, customLogger, FromCtx(ctx))
	})

	t.Run("extra fields produce a child logger", func(t *testing.T) {
		ctx := WithCtx(context.Background(), Get())

		child := FromCtx(ctx, "page", 2)
		assert.NotSame(t, Get(), child)
	})
}

func TestWithSameLogger(t *testing.T) {
	ctx := context.Background()
	logger := Get()

	newCtx := WithCtx(ctx, logger)

	assert.Same(t, newCtx, WithCtx(newCtx, logger))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("loud"))
}

func TestNewCore(t *testing.T) {
	var buf bytes.Buffer
	core := newCore(zapcore.WarnLevel, true, zapcore.AddSync(&buf))
	l := zap.New(core).Sugar()

	l.Info("hidden")
	l.Warnw("shown", "page", 3)
	require.NoError(t, l.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"page":3`)
}
