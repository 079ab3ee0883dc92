package logging

import (
	"context"

	"github.com/okatiev/banking_api/internal/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps *zap.Logger with context-carried fields: WithContextFields
// stores fields in the context, the *Ctx methods merge them into every entry.
type ZapLogger struct {
	logger *zap.Logger
}

type ctxFieldsKey struct{}

func NewZapLogger(cfg *config.Config) (*ZapLogger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.Level(cfg.LogLevel))

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return &ZapLogger{logger: logger}, nil
}

func (l *ZapLogger) WithContextFields(ctx context.Context, fields ...zap.Field) context.Context {
	return context.WithValue(ctx, ctxFieldsKey{}, append(l.ctxFields(ctx), fields...))
}

func (l *ZapLogger) DebugCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Debug(msg, append(l.ctxFields(ctx), fields...)...)
}

func (l *ZapLogger) InfoCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Info(msg, append(l.ctxFields(ctx), fields...)...)
}

func (l *ZapLogger) WarnCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Warn(msg, append(l.ctxFields(ctx), fields...)...)
}

func (l *ZapLogger) ErrorCtx(ctx context.Context, msg string, fields ...zap.Field) {
	l.logger.Error(msg, append(l.ctxFields(ctx), fields...)...)
}

func (l *ZapLogger) ctxFields(ctx context.Context) []zap.Field {
	fields, ok := ctx.Value(ctxFieldsKey{}).([]zap.Field)
	if !ok {
		return []zap.Field{}
	}

	return fields
}
