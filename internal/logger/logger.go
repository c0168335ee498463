package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// Config selects the level, encoding and destination of diagnostic logs.
// Diagnostics always go to stderr by default so they never mix with the
// output of a wrapped command.
type Config struct {
	Level   string
	Format  string
	Output  io.Writer
	NoColor bool
}

func DefaultConfig() Config {
	return Config{
		Level:  "warn",
		Format: "text",
		Output: os.Stderr,
	}
}

type Logger struct {
	zl zerolog.Logger
}

func New(config Config) *Logger {
	out := config.Output
	if out == nil {
		out = os.Stderr
	}
	out = zerolog.SyncWriter(out)

	if strings.ToLower(config.Format) != "json" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			NoColor:    config.NoColor,
			TimeFormat: "15:04:05",
		}
	}

	zl := zerolog.New(out).
		Level(ParseLevel(config.Level)).
		With().
		Timestamp().
		Logger()

	return &Logger{zl: zl}
}

// ParseLevel maps a configured level name to zerolog. Unknown names fall
// back to warn.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.WarnLevel
	}
}

func (l *Logger) Debug(msg string, attrs ...any) {
	l.zl.Debug().Fields(attrs).Msg(msg)
}

func (l *Logger) Info(msg string, attrs ...any) {
	l.zl.Info().Fields(attrs).Msg(msg)
}

func (l *Logger) Warn(msg string, attrs ...any) {
	l.zl.Warn().Fields(attrs).Msg(msg)
}

func (l *Logger) Error(msg string, attrs ...any) {
	l.zl.Error().Fields(attrs).Msg(msg)
}

func (l *Logger) DebugOperation(operation string, attrs ...any) {
	l.zl.Debug().Str("operation", operation).Fields(attrs).Msg("operation started")
}

// Command logs a child process about to be started.
func (l *Logger) Command(argv []string, attrs ...any) {
	l.zl.Debug().Strs("argv", argv).Fields(attrs).Msg("running command")
}

// CommandResult logs how a child process ended. Non-zero exits are logged
// at info so they show up with -v.
func (l *Logger) CommandResult(argv []string, exitCode int, attrs ...any) {
	event := l.zl.Debug()
	if exitCode != 0 {
		event = l.zl.Info()
	}
	event.Strs("argv", argv).Int("exit_code", exitCode).Fields(attrs).Msg("command finished")
}

func (l *Logger) WithOperation(operation string) *Logger {
	return &Logger{zl: l.zl.With().Str("operation", operation).Logger()}
}

func (l *Logger) WithComponent(component string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", component).Logger()}
}

func (l *Logger) WithError(err error) *Logger {
	return &Logger{zl: l.zl.With().Err(err).Logger()}
}

// Enabled reports whether messages at level would be written.
func (l *Logger) Enabled(level zerolog.Level) bool {
	return l.zl.GetLevel() <= level
}
