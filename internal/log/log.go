// Package log builds the zap loggers used by the build-time tooling.
package log

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel defines the severity threshold for log messages.
type LogLevel string

const (
	// LogInfo is used for general informational messages.
	LogInfo LogLevel = "info"

	// LogWarn is used for potentially harmful situations.
	LogWarn LogLevel = "warn"

	// LogError is used for failures that abort the current operation.
	LogError LogLevel = "error"

	// LogDebug is used for detailed internal information.
	LogDebug LogLevel = "debug"
)

// ParseLogLevel accepts one of the LogLevel constants.
func ParseLogLevel(s string) (LogLevel, error) {
	switch lvl := LogLevel(s); lvl {
	case LogInfo, LogWarn, LogError, LogDebug:
		return lvl, nil
	default:
		return "", fmt.Errorf("unknown log level %q", s)
	}
}

func (l LogLevel) zapLevel() zapcore.Level {
	switch l {
	case LogWarn:
		return zap.WarnLevel
	case LogError:
		return zap.ErrorLevel
	case LogDebug:
		return zap.DebugLevel
	default:
		return zap.InfoLevel
	}
}

// New returns a console logger writing to w at the given level.
func New(level LogLevel, w io.Writer) *zap.Logger {
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.Lock(zapcore.AddSync(w)),
		level.zapLevel(),
	)
	return zap.New(consoleCore)
}

// Sync flushes logger, reporting a failure through the logger itself.
func Sync(logger *zap.Logger) {
	if err := logger.Sync(); err != nil {
		logger.Warn("failed to sync logger", zap.Error(err))
	}
}
