package bag

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logger used by all packages of wiredlist. Replace it with
// SetLogger to redirect the output.
var Logger *zap.SugaredLogger

var atom = zap.NewAtomicLevelAt(zap.WarnLevel)

func init() {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		atom,
	)
	Logger = zap.New(core).Sugar()
}

// SetLogger replaces the package logger.
func SetLogger(l *zap.SugaredLogger) {
	Logger = l
}

// Level type
type Level uint32

const (
	// PanicLevel level, highest level of severity. Logs and then calls panic.
	PanicLevel Level = iota
	// FatalLevel level. Logs and then calls os.Exit(1).
	FatalLevel
	// ErrorLevel level. Used for errors that should definitely be noted.
	ErrorLevel
	// WarnLevel level. Non-critical entries that deserve eyes.
	WarnLevel
	// InfoLevel level. General operational entries.
	InfoLevel
	// DebugLevel level. Usually only enabled when debugging. Very verbose
	// logging, list tracing ends up here.
	DebugLevel
)

// SetLogLevel sets the logging level of the default logger.
func SetLogLevel(level Level) {
	switch level {
	case PanicLevel:
		atom.SetLevel(zap.PanicLevel)
	case FatalLevel:
		atom.SetLevel(zap.FatalLevel)
	case ErrorLevel:
		atom.SetLevel(zap.ErrorLevel)
	case WarnLevel:
		atom.SetLevel(zap.WarnLevel)
	case InfoLevel:
		atom.SetLevel(zap.InfoLevel)
	case DebugLevel:
		atom.SetLevel(zap.DebugLevel)
	}
}

// LogLevel returns the current level of the default logger.
func LogLevel() Level {
	switch atom.Level() {
	case zap.PanicLevel, zap.DPanicLevel:
		return PanicLevel
	case zap.FatalLevel:
		return FatalLevel
	case zap.ErrorLevel:
		return ErrorLevel
	case zap.InfoLevel:
		return InfoLevel
	case zap.DebugLevel:
		return DebugLevel
	}
	return WarnLevel
}
