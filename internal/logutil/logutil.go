package logutil

import (
	"fmt"
	"os"

	"github.com/webbmaffian/go-qmap/config"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger writing to stderr, or to a rotated file when a
// filename is configured.
func New(cfg config.Log) (*zap.Logger, error) {
	var level zapcore.Level

	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	encoder, err := newEncoder(cfg.Format)

	if err != nil {
		return nil, err
	}

	core := zapcore.NewCore(encoder, newSink(cfg), zap.NewAtomicLevelAt(level))

	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel)), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	encConfig := zap.NewProductionEncoderConfig()
	encConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	switch format {
	case "console", "":
		encConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encConfig), nil
	case "json":
		return zapcore.NewJSONEncoder(encConfig), nil
	}

	return nil, fmt.Errorf("unsupported log format: %s", format)
}

func newSink(cfg config.Log) zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return zapcore.Lock(os.Stderr)
	}

	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
		Compress:   false,
	})
}
