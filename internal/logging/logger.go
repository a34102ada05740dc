package logging

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var once sync.Once

// Init replaces the global logger. Debug mode switches to the human-readable
// development encoder at debug level; otherwise only warnings and errors are
// emitted, as JSON on stderr.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		cfg := zap.NewProductionConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		l, err = cfg.Build()
	}
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(l)
	return nil
}

// L returns the global logger, initializing a quiet production logger on first use.
func L() *zap.Logger {
	once.Do(func() {
		if isNop(zap.L()) {
			_ = Init(false)
		}
	})
	return zap.L()
}

func isNop(l *zap.Logger) bool {
	return !l.Core().Enabled(zapcore.FatalLevel)
}

// Sync flushes buffered log entries.
func Sync() {
	_ = zap.L().Sync()
}
