// Package logging builds the application's zap logger.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config defines where and how much to log.
type Config struct {
	Level      string // "debug", "info", "warn", "error"
	File       string // rotated log file; empty disables file output
	MaxSize    int    // megabytes
	MaxBackups int
	MaxAge     int // days
	Compress   bool
}

// ParseLevel maps a level name to a zap level, defaulting to info.
func ParseLevel(name string) zapcore.Level {
	switch name {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// New builds a JSON logger writing to the rotated file in cfg and to extra, if non-nil.
// The returned closer flushes and closes the file.
func New(cfg Config, extra io.Writer) (*zap.Logger, io.Closer, error) {
	level := ParseLevel(cfg.Level)
	encoder := zapcore.NewJSONEncoder(encoderConfig())

	var (
		cores  []zapcore.Core
		closer io.Closer = nopCloser{}
	)

	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, nil, err
		}
		rotator := &lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(rotator), level))
		closer = rotator
	}
	if extra != nil {
		cores = append(cores, zapcore.NewCore(encoder.Clone(), zapcore.AddSync(extra), level))
	}
	if len(cores) == 0 {
		return zap.NewNop(), closer, nil
	}

	logger := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	return logger, syncCloser{logger: logger, closer: closer}, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type syncCloser struct {
	logger *zap.Logger
	closer io.Closer
}

func (s syncCloser) Close() error {
	_ = s.logger.Sync()
	return s.closer.Close()
}
