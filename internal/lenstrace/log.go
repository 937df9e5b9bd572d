package lenstrace

import (
	"sync"

	"go.uber.org/zap"
)

var (
	logger = zap.NewNop()
	once   sync.Once
)

// SetLogger installs the package logger; nil restores the no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// Logger returns the package logger.
func Logger() *zap.Logger { return logger }

func DebugLog(format string, args ...interface{}) {
	if !Debug {
		return
	}
	logger.Sugar().Debugf(format, args...)
}

func DebugLogOnce(format string, args ...interface{}) {
	if !Debug {
		return
	}
	once.Do(func() {
		logger.Sugar().Debugf(format, args...)
	})
}
