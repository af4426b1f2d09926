package utils

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	once   sync.Once
)

// Logger returns the process-wide logger. LOG_LEVEL picks the minimum level
// (info by default); when LOG_FILE is set, entries go to that file and stdout.
func Logger() *zap.Logger {
	once.Do(func() { logger = build() })
	return logger
}

func build() *zap.Logger {
	lvl := level(os.Getenv("LOG_LEVEL"))
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		return production(lvl)
	}
	_ = os.MkdirAll(filepath.Dir(logFile), 0o755)
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return production(lvl)
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	fileCore := zapcore.NewCore(enc, zapcore.AddSync(f), lvl)
	consoleCore := zapcore.NewCore(enc, zapcore.AddSync(os.Stdout), lvl)
	return zap.New(zapcore.NewTee(fileCore, consoleCore))
}

func production(lvl zapcore.Level) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}

func level(s string) zapcore.Level {
	if s == "" {
		return zapcore.InfoLevel
	}
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}
