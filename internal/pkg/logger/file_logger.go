package logger

import (
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap/zapcore"
)

// NewFileLogger creates a JSON logger writing to a size-rotated file.
func NewFileLogger(level string, filePath string, maxSize int, maxBackups int, maxAge int) Logger {
	writer := &lumberjack.Logger{
		Filename:   filePath,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}

	core := zapcore.NewCore(newEncoder("json"), zapcore.AddSync(writer), parseLevel(level))
	return newZapLogger(core)
}
