package logger

import (
	"fmt"
	"sync"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"

	"go.uber.org/zap/zapcore"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger initializes the singleton logger.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = newLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

func newLogger(c *config.LoggerSettings) (Logger, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch c.LogType {
	case config.LogTypeConsole:
		if c.Encoding == "" {
			return NewConsoleLogger(c.LogLevel, config.EncodingConsole), nil
		}
		return NewConsoleLogger(c.LogLevel, c.Encoding), nil
	case config.LogTypeFile:
		if c.FilePath == "" {
			return nil, fmt.Errorf("file path required for file logger")
		}
		return NewFileLogger(c.LogLevel, c.FilePath, c.MaxSize, c.MaxBackups, c.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", c.LogType)
	}
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case config.LogLevelDebug:
		return zapcore.DebugLevel
	case config.LogLevelInfo:
		return zapcore.InfoLevel
	case config.LogLevelWarning:
		return zapcore.WarnLevel
	case config.LogLevelError, config.LogLevelCritical:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
