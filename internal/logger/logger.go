package logger

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)
	opts := []zap.Option{
		zap.AddStacktrace(zap.ErrorLevel),
	}

	if strings.ToLower(os.Getenv("ALPHA_ENV")) == "dev" {
		logger, err = zap.NewDevelopment(opts...)
	} else {
		opts = append(opts, zap.Fields(zap.Field{
			Key:    "ALPHA_ENV",
			Type:   zapcore.StringType,
			String: os.Getenv("ALPHA_ENV"),
		}))
		logger, err = zap.NewProduction(opts...)
	}

	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}

const ContextKey = "LOGGER"

func WithContext(ctx context.Context, lg *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, ContextKey, lg)
}

// FromContext falls back to the global logger when ctx carries none
func FromContext(ctx context.Context) *zap.SugaredLogger {
	lg, ok := ctx.Value(ContextKey).(*zap.SugaredLogger)
	if !ok || lg == nil {
		lg = zap.S()
		lg.Debug("no logger found in ctx - using global")
	}
	return lg
}

func init() {
	logger := New()
	zap.ReplaceGlobals(logger.Desugar())
}
