// Package log provides the package-level structured logger used by the
// CLI for its ambient error reporting.
package log

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

var log *zap.SugaredLogger
var baseLogger *zap.Logger

// Init initializes the package-level logger for the given level. Valid
// levels are "debug", "info", "warn", and "error"; anything else falls
// back to "info".
func Init(level string) error {
	cfg := zap.NewProductionConfig()
	switch level {
	case "debug":
		cfg = zap.NewDevelopmentConfig()
	case "warn":
		cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	case "error":
		cfg.Level = zap.NewAtomicLevelAt(zap.ErrorLevel)
	}

	zapLogger, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("can't initialize zap logger: %v", err)
	}

	baseLogger = zapLogger
	log = zapLogger.Sugar()
	return nil
}

// Sync flushes any buffered log entries.
func Sync() {
	if log != nil {
		log.Sync()
	}
}

func ensure() {
	if log == nil {
		baseLogger, _ = zap.NewProduction(zap.AddCallerSkip(1))
		log = baseLogger.Sugar()
	}
}

func Debug(args ...interface{}) { ensure(); log.Debug(args...) }
func Debugf(template string, args ...interface{}) { ensure(); log.Debugf(template, args...) }
func Info(args ...interface{})  { ensure(); log.Info(args...) }
func Infof(template string, args ...interface{})  { ensure(); log.Infof(template, args...) }
func Warn(args ...interface{})  { ensure(); log.Warn(args...) }
func Warnf(template string, args ...interface{})  { ensure(); log.Warnf(template, args...) }
func Error(args ...interface{}) { ensure(); log.Error(args...) }
func Errorf(template string, args ...interface{}) { ensure(); log.Errorf(template, args...) }

func Fatal(args ...interface{}) {
	ensure()
	log.Fatal(args...)
	os.Exit(1)
}

func Fatalf(template string, args ...interface{}) {
	ensure()
	log.Fatalf(template, args...)
	os.Exit(1)
}
