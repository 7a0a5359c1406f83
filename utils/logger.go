package utils

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig configura el logger del proceso.
type LogConfig struct {
	// Env: "dev" (consola) o "prod" (JSON). Default: "dev".
	Env         string
	Level       string
	ServiceName string
	Version     string
}

var (
	logOnce  sync.Once
	instance *zap.Logger
)

// InitLogger construye el logger global. Solo la primera llamada tiene efecto.
func InitLogger(cfg LogConfig) {
	logOnce.Do(func() {
		instance = buildLogger(cfg)
	})
}

// L retorna el logger global; si no se inicializó usa dev/info.
func L() *zap.Logger {
	InitLogger(LogConfig{Env: "dev", Level: "info"})
	return instance
}

func Named(name string) *zap.Logger {
	return L().Named(name)
}

func SyncLogger() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

type loggerKey struct{}

// LoggerToContext guarda un logger con campos del request.
func LoggerToContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// LoggerFrom devuelve el logger del contexto o el global.
func LoggerFrom(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*zap.Logger); ok {
			return l
		}
	}
	return L()
}

func buildLogger(cfg LogConfig) *zap.Logger {
	var zcfg zap.Config
	if strings.ToLower(cfg.Env) == "prod" {
		zcfg = zap.NewProductionConfig()
		zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zcfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		zcfg.DisableStacktrace = true
	}
	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zcfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	l, err := zcfg.Build()
	if err != nil {
		l, _ = zap.NewProduction()
	}
	if cfg.ServiceName != "" {
		l = l.With(zap.String("service", cfg.ServiceName))
	}
	if cfg.Version != "" {
		l = l.With(zap.String("version", cfg.Version))
	}
	return l
}

func parseLevel(lvl string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
