package logging

import (
	"errors"
	"os"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"sportapp/internal/config"
)

// New builds the process logger and installs it as zap's global logger, so
// packages without an injected logger can use zap.L().
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if cfg.Format == "console" {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoderConfig.TimeKey = "timestamp"
		encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	sink := zapcore.AddSync(os.Stdout)
	if cfg.File != "" {
		fileName := cfg.File
		if !strings.HasSuffix(fileName, ".log") {
			fileName += ".log"
		}
		rotating := &lumberjack.Logger{
			Filename:  fileName,
			MaxSize:   50, // megabytes
			LocalTime: false,
			Compress:  true,
		}
		sink = zapcore.NewMultiWriteSyncer(sink, zapcore.AddSync(rotating))
	}

	core := zapcore.NewCore(encoder, sink, level)
	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	zap.ReplaceGlobals(logger)

	return logger, nil
}

// Sync flushes buffered entries. Errors from syncing a terminal or pipe on
// stdout are dropped; they say nothing about lost log lines.
func Sync(log *zap.Logger) error {
	err := log.Sync()
	if err == nil || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY) {
		return nil
	}
	return err
}
