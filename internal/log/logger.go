package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Log = (*Logger)(nil)

var (
	innerMu     sync.Mutex
	innerLogger *Logger
)

// Logger is a thin wrapper around zap used for all library output:
// calibration messages, stat reports and fatal configuration errors.
type Logger struct {
	zapLogger *zap.Logger
	zapLevel  zapcore.Level
}

func New(level Level) *Logger {
	logger := build(level)

	innerMu.Lock()
	if innerLogger == nil {
		innerLogger = logger
	}
	innerMu.Unlock()

	return logger
}

// build constructs a logger without touching the singleton guard.
func build(level Level) *Logger {
	zapLevel := toZapLevel(level)
	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	zapLogger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return &Logger{
		zapLogger: zapLogger,
		zapLevel:  zapLevel,
	}
}

// Provide returns the first logger built with New, or a default one if
// nothing has been built yet. Never blocks beyond the guard mutex.
func Provide() *Logger {
	innerMu.Lock()
	defer innerMu.Unlock()
	if innerLogger == nil {
		innerLogger = build(LevelInfo)
	}
	return innerLogger
}

// Nop returns a logger that discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zapLogger: zap.NewNop(), zapLevel: zapcore.InfoLevel}
}

// FromZap wraps an existing zap logger. Lets applications route library
// output into their own logging setup.
func FromZap(zl *zap.Logger) *Logger {
	return &Logger{zapLogger: zl, zapLevel: zl.Level()}
}

func (l *Logger) Debug(msg string, fields ...zap.Field) {
	l.zapLogger.Debug(msg, fields...)
}

func (l *Logger) Info(msg string, fields ...zap.Field) {
	l.zapLogger.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zap.Field) {
	l.zapLogger.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zap.Field) {
	l.zapLogger.Error(msg, fields...)
}

func (l *Logger) With(fields ...zap.Field) Log {
	return &Logger{
		zapLogger: l.zapLogger.With(fields...),
		zapLevel:  l.zapLevel,
	}
}

func (l *Logger) GetLevel() Level {
	return fromZapLevel(l.zapLevel)
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zap.DebugLevel
	case LevelInfo:
		return zap.InfoLevel
	case LevelWarn:
		return zap.WarnLevel
	case LevelError:
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}

func fromZapLevel(level zapcore.Level) Level {
	switch level {
	case zap.DebugLevel:
		return LevelDebug
	case zap.InfoLevel:
		return LevelInfo
	case zap.WarnLevel:
		return LevelWarn
	case zap.ErrorLevel:
		return LevelError
	default:
		return LevelInfo
	}
}
