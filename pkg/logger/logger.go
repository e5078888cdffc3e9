package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	envLevel = "PAGER_LOG_LEVEL"
	envJSON  = "PAGER_JSON_LOG"
)

type ctxKey struct{}

var once sync.Once

var logger *zap.SugaredLogger

// Get initializes a zap.SugaredLogger writing to stderr if it has not been
// initialized already and returns the same instance for subsequent calls.
// stdout is left to command output.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		core := newCore(parseLevel(os.Getenv(envLevel)), os.Getenv(envJSON) != "", zapcore.AddSync(os.Stderr))
		logger = zap.New(core).Sugar()
	})

	return logger
}

func parseLevel(s string) zapcore.Level {
	if s == "" {
		return zap.InfoLevel
	}

	level, err := zapcore.ParseLevel(s)
	if err != nil {
		log.Println(fmt.Errorf("invalid level, defaulting to INFO: %w", err))
		return zap.InfoLevel
	}
	return level
}

func newCore(level zapcore.Level, json bool, out zapcore.WriteSyncer) zapcore.Core {
	var encoder zapcore.Encoder
	if json {
		cfg := zap.NewProductionEncoderConfig()
		cfg.TimeKey = "timestamp"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(cfg)
	} else {
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(cfg)
	}

	core := zapcore.NewCore(encoder, out, zap.NewAtomicLevelAt(level))

	buildInfo, ok := debug.ReadBuildInfo()
	if !ok {
		return core
	}

	fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
	for _, v := range buildInfo.Settings {
		if v.Key == "vcs.revision" && len(v.Value) >= 7 {
			fields = append(fields, zap.String("git_revision", v.Value[:7]))
			break
		}
	}

	return core.With(fields)
}

// FromCtx returns the Logger associated with the ctx, falling back to the
// default logger. Any extra key/value pairs are added to the returned logger.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger)
	if !ok {
		l = Get()
	}

	if len(with) == 0 {
		return l
	}
	return l.With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && lp == l {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
