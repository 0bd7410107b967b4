package util

import (
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	globalLogger atomic.Value
	globalLevel  = zap.NewAtomicLevelAt(INFO)
)

type LogLevel = zapcore.Level

const (
	PANIC   LogLevel = zapcore.PanicLevel
	FATAL   LogLevel = zapcore.FatalLevel
	ERROR   LogLevel = zapcore.ErrorLevel
	WARNING LogLevel = zapcore.WarnLevel
	INFO    LogLevel = zapcore.InfoLevel
	DEBUG   LogLevel = zapcore.DebugLevel
)

func init() {
	logger, err := InitLogger(globalLevel)
	if err != nil {
		logger = zap.NewNop()
	}
	ReplaceGlobals(logger)
}

// InitLogger initializes a zap logger that writes JSON lines to stdout.
func InitLogger(level zap.AtomicLevel, opts ...zap.Option) (*zap.Logger, error) {
	stdOut, _, err := zap.Open([]string{"stdout"}...)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(cfg.EncoderConfig),
		zapcore.AddSync(stdOut),
		level,
	)
	return zap.New(core, opts...), nil
}

// Logger returns the global Logger. It's safe for concurrent use.
func Logger() *zap.Logger {
	return globalLogger.Load().(*zap.Logger)
}

// ReplaceGlobals replaces the global Logger. It's safe for concurrent use.
func ReplaceGlobals(logger *zap.Logger) {
	globalLogger.Store(logger)
}

// SetLogLevel changes the level of the logger installed by init.
// Loggers installed with ReplaceGlobals keep their own level.
func SetLogLevel(level LogLevel) {
	globalLevel.SetLevel(level)
}

// Sync flushes any buffered log entries.
func Sync() error {
	return Logger().Sync()
}
