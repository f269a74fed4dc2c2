package logger

import (
	"fmt"
	"strings"

	"github.com/GlebRadaev/ipr/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	timeLayout  = "15:04:05 02-01-2006"
	serviceName = "ipr"
)

var logLvlMap = map[string]zapcore.Level{
	"info":  zapcore.InfoLevel,
	"error": zapcore.ErrorLevel,
	"debug": zapcore.DebugLevel,
	"warn":  zapcore.WarnLevel,
}

// ParseLevel accepts debug, info, warn and error in any case.
func ParseLevel(raw string) (zapcore.Level, error) {
	lvl, ok := logLvlMap[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return zapcore.InfoLevel, fmt.Errorf("unsupported log lvl: %s", raw)
	}
	return lvl, nil
}

// InitLogger installs a console zap logger as the global one. Every entry carries the service name.
func InitLogger(conf *config.Config) error {
	lvl, err := ParseLevel(conf.LogLvl)
	if err != nil {
		return err
	}

	encodeConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	c := zap.Config{
		Level:            zap.NewAtomicLevelAt(lvl),
		Encoding:         "console",
		EncoderConfig:    encodeConfig,
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
		InitialFields:    map[string]any{"service": serviceName},
	}

	logger, err := c.Build()
	if err != nil {
		return fmt.Errorf("unable to create zap logger, error: %w", err)
	}

	zap.ReplaceGlobals(logger)

	return nil
}

// Sync flushes the global logger, ignoring the EINVAL stdout returns on some platforms.
func Sync() {
	_ = zap.L().Sync()
}
