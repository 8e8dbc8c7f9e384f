package logger

import (
	"os"

	"go.uber.org/zap/zapcore"
)

// NewConsoleLogger creates a logger writing to stdout with the specified log level.
// Encoding is either "console" (human readable) or "json".
func NewConsoleLogger(level, encoding string) Logger {
	core := zapcore.NewCore(newEncoder(encoding), zapcore.Lock(os.Stdout), parseLevel(level))
	return newZapLogger(core)
}
