package logging

import (
	"context"
	"log/slog"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Slog returns a slog.Logger backed by this logger's zap core, so components
// that take the standard interface still emit through the one JSON pipeline
// with trace correlation.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(&zapHandler{zap: l.Zap()})
}

type zapHandler struct {
	zap   *zap.Logger
	attrs []zap.Field
}

func (h *zapHandler) Enabled(_ context.Context, level slog.Level) bool {
	return h.zap.Core().Enabled(zapLevel(level))
}

func (h *zapHandler) Handle(ctx context.Context, rec slog.Record) error {
	fields := make([]zap.Field, 0, rec.NumAttrs()+len(h.attrs)+2)
	fields = append(fields, h.attrs...)
	rec.Attrs(func(a slog.Attr) bool {
		fields = append(fields, slogAttrToField(a))
		return true
	})
	fields = append(fields, traceFields(ctx)...)

	if ce := h.zap.Check(zapLevel(rec.Level), rec.Message); ce != nil {
		ce.Write(fields...)
	}

	return nil
}

func (h *zapHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]zap.Field, 0, len(h.attrs)+len(attrs))
	merged = append(merged, h.attrs...)
	for _, a := range attrs {
		merged = append(merged, slogAttrToField(a))
	}

	return &zapHandler{zap: h.zap, attrs: merged}
}

func (h *zapHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	return &zapHandler{zap: h.zap.Named(name), attrs: h.attrs}
}

func slogAttrToField(a slog.Attr) zap.Field {
	value := a.Value.Resolve().Any()
	if err, ok := value.(error); ok {
		return zap.NamedError(a.Key, err)
	}

	return zap.Any(a.Key, value)
}

func zapLevel(level slog.Level) zapcore.Level {
	switch {
	case level >= slog.LevelError:
		return zapcore.ErrorLevel
	case level >= slog.LevelWarn:
		return zapcore.WarnLevel
	case level >= slog.LevelInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}
