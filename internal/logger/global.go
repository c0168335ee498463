package logger

import (
	"sync"

	"github.com/rs/zerolog"
)

var (
	globalLogger *Logger
	// mu protects globalLogger.
	mu sync.RWMutex
)

// init initializes the global logger with default configuration.
func init() {
	globalLogger = New(DefaultConfig())
}

func SetGlobalLogger(logger *Logger) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = logger
}

func GetGlobalLogger() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func Configure(config Config) {
	SetGlobalLogger(New(config))
}

func Debug(msg string, attrs ...any) {
	GetGlobalLogger().Debug(msg, attrs...)
}

func Info(msg string, attrs ...any) {
	GetGlobalLogger().Info(msg, attrs...)
}

func Warn(msg string, attrs ...any) {
	GetGlobalLogger().Warn(msg, attrs...)
}

func Error(msg string, attrs ...any) {
	GetGlobalLogger().Error(msg, attrs...)
}

func DebugOperation(operation string, attrs ...any) {
	GetGlobalLogger().DebugOperation(operation, attrs...)
}

func Command(argv []string, attrs ...any) {
	GetGlobalLogger().Command(argv, attrs...)
}

func CommandResult(argv []string, exitCode int, attrs ...any) {
	GetGlobalLogger().CommandResult(argv, exitCode, attrs...)
}

func Enabled(level zerolog.Level) bool {
	return GetGlobalLogger().Enabled(level)
}

func WithOperation(operation string) *Logger {
	return GetGlobalLogger().WithOperation(operation)
}

func WithComponent(component string) *Logger {
	return GetGlobalLogger().WithComponent(component)
}

func WithError(err error) *Logger {
	return GetGlobalLogger().WithError(err)
}
