// Package logging builds the zap logger shared by the client and the CLI.
package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options selects the console level and an optional rotating log file.
type Options struct {
	Quiet   bool
	Debug   bool
	LogFile string
}

// Level returns the console level for the options. Quiet wins over debug.
func (o Options) Level() zapcore.Level {
	switch {
	case o.Quiet:
		return zapcore.ErrorLevel
	case o.Debug:
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// New returns a logger writing human-readable lines to stderr and, when
// LogFile is set, JSON lines to a rotated file at debug level.
// The returned cleanup flushes the logger and closes the file.
func New(opts Options) (*zap.Logger, func()) {
	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(
			zapcore.NewConsoleEncoder(consoleCfg),
			zapcore.Lock(os.Stderr),
			zap.NewAtomicLevelAt(opts.Level()),
		),
	}

	var logFile *lumberjack.Logger
	if opts.LogFile != "" {
		logFile = &lumberjack.Logger{
			Filename:   opts.LogFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
			zapcore.AddSync(logFile),
			zapcore.DebugLevel,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...))
	cleanup := func() {
		_ = logger.Sync()
		if logFile != nil {
			_ = logFile.Close()
		}
	}
	return logger, cleanup
}
