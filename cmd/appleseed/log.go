package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the CLI logger: console-encoded, stderr by default, with
// optional rotation-backed file output.
func newLogger(config *rootCmdConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if config.verbose {
		level = zapcore.DebugLevel
	}

	var out zapcore.WriteSyncer = zapcore.Lock(os.Stderr)
	if config.logFile != "" {
		out = zapcore.AddSync(&lumberjack.Logger{
			Filename:   config.logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
		})
	}

	encoder := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(encoder, out, level))
}
