//go:build unit
// +build unit

package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func resetLoggerSingleton() {
	loggerInstance = nil
	loggerErr = nil
	loggerOnce = sync.Once{}
}

func newBufferLogger(buf *bytes.Buffer, level string) Logger {
	core := zapcore.NewCore(newEncoder(config.EncodingJSON), zapcore.AddSync(buf), parseLevel(level))
	return newZapLogger(core)
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name     string
		settings func(t *testing.T) *config.LoggerSettings
		wantErr  bool
	}{
		{
			name: "console logger",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}
			},
		},
		{
			name: "file logger with rotation",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{
					LogLevel:   config.LogLevelInfo,
					LogType:    config.LogTypeFile,
					FilePath:   filepath.Join(t.TempDir(), "app.log"),
					MaxSize:    10,
					MaxBackups: 3,
					MaxAge:     28,
				}
			},
		},
		{
			name: "invalid log level",
			settings: func(t *testing.T) *config.LoggerSettings {
				return &config.LoggerSettings{LogLevel: "verbose", LogType: config.LogTypeConsole}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetLoggerSingleton()
			defer resetLoggerSingleton()

			err := InitLogger(tt.settings(t))
			if tt.wantErr {
				assert.Error(t, err)
				_, getErr := GetLogger()
				assert.Error(t, getErr)
				return
			}

			require.NoError(t, err)
			log, err := GetLogger()
			require.NoError(t, err)
			assert.NotNil(t, log)
		})
	}
}

func TestGetLoggerBeforeInit(t *testing.T) {
	resetLoggerSingleton()

	_, err := GetLogger()
	assert.Error(t, err)
}

func TestLoggerSingleton(t *testing.T) {
	resetLoggerSingleton()
	defer resetLoggerSingleton()

	settings := &config.LoggerSettings{LogLevel: config.LogLevelInfo, LogType: config.LogTypeConsole}
	require.NoError(t, InitLogger(settings))
	first, err := GetLogger()
	require.NoError(t, err)

	// Second call is ignored, even with different settings
	require.NoError(t, InitLogger(&config.LoggerSettings{LogLevel: config.LogLevelDebug, LogType: config.LogTypeConsole}))
	second, err := GetLogger()
	require.NoError(t, err)

	assert.Same(t, first, second)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel(config.LogLevelDebug))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(config.LogLevelInfo))
	assert.Equal(t, zapcore.WarnLevel, parseLevel(config.LogLevelWarning))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel(config.LogLevelError))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel(config.LogLevelCritical))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("unknown"))
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, config.LogLevelWarning)

	log.Debug("debug message")
	log.Info("info message")
	assert.Empty(t, buf.String())

	log.Warn("warn message")
	assert.Contains(t, buf.String(), "warn message")
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, config.LogLevelDebug)

	log.With("post_id", "abc", "attempt", 2).Info("published post")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "published post", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "abc", entry["post_id"])
	assert.EqualValues(t, 2, entry["attempt"])
	assert.Contains(t, entry, "time")
}

func TestFileLoggerWritesEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "api.log")
	log := NewFileLogger(config.LogLevelInfo, path, 1, 1, 1)

	log.Error("database unavailable")
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "database unavailable")
}

func TestLoggerPanic(t *testing.T) {
	var buf bytes.Buffer
	log := newBufferLogger(&buf, config.LogLevelInfo)

	assert.Panics(t, func() { log.Panic("boom") })
	assert.Contains(t, buf.String(), "boom")
}
