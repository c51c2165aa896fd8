package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps a zap sugared logger with the keyed variadic surface
// (Infow, Debugw, ...) the CLI uses.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a console logger writing to stderr. With verbose
// set, debug-level output is enabled and caller locations are shown.
func NewLogger(verbose bool) *Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true

	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
		cfg.DisableCaller = true
	}

	base, err := cfg.Build()
	if err != nil {
		// The static config above cannot fail to build; fall back to a
		// no-op logger rather than panicking in a CLI.
		base = zap.NewNop()
	}

	return &Logger{SugaredLogger: base.Sugar()}
}

// Sync flushes buffered log entries.
func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}
