//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *LoggerSettings
		expectedError bool
	}{
		{
			name:          "valid console logger",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole},
			expectedError: false,
		},
		{
			name:          "valid console logger with json encoding",
			settings:      &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole, Encoding: "json"},
			expectedError: false,
		},
		{
			name:          "unknown encoding",
			settings:      &LoggerSettings{LogLevel: LogLevelDebug, LogType: LogTypeConsole, Encoding: "xml"},
			expectedError: true,
		},
		{
			name: "valid file logger with rotation",
			settings: &LoggerSettings{
				LogLevel:   LogLevelInfo,
				LogType:    LogTypeFile,
				FilePath:   "/var/log/portfolio/api.log",
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			expectedError: false,
		},
		{
			name:          "missing log level",
			settings:      &LoggerSettings{LogType: LogTypeConsole},
			expectedError: true,
		},
		{
			name:          "invalid log type",
			settings:      &LoggerSettings{LogLevel: LogLevelInfo, LogType: "syslog"},
			expectedError: true,
		},
		{
			name: "file logger missing file path",
			settings: &LoggerSettings{
				LogLevel:   LogLevelInfo,
				LogType:    LogTypeFile,
				MaxSize:    10,
				MaxBackups: 3,
				MaxAge:     28,
			},
			expectedError: true,
		},
		{
			name: "file logger missing rotation settings",
			settings: &LoggerSettings{
				LogLevel: LogLevelInfo,
				LogType:  LogTypeFile,
				FilePath: "/var/log/portfolio/api.log",
			},
			expectedError: true,
		},
		{
			name: "file logger max size too large",
			settings: &LoggerSettings{
				LogLevel:   LogLevelInfo,
				LogType:    LogTypeFile,
				FilePath:   "/var/log/portfolio/api.log",
				MaxSize:    101,
				MaxBackups: 3,
				MaxAge:     28,
			},
			expectedError: true,
		},
		{
			name: "console logger ignores rotation settings",
			settings: &LoggerSettings{
				LogLevel: LogLevelWarning,
				LogType:  LogTypeConsole,
				MaxSize:  1000,
			},
			expectedError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoggerSettingsApplyEnvironment(t *testing.T) {
	tests := []struct {
		environment string
		configured  string
		expected    string
	}{
		{environment: EnvDevelopment, expected: EncodingConsole},
		{environment: EnvProduction, expected: EncodingJSON},
		{environment: EnvTest, expected: EncodingJSON},
		{environment: EnvProduction, configured: EncodingConsole, expected: EncodingConsole},
		{environment: EnvDevelopment, configured: EncodingJSON, expected: EncodingJSON},
	}

	for _, tt := range tests {
		t.Run(tt.environment+"/"+tt.configured, func(t *testing.T) {
			settings := &LoggerSettings{LogLevel: LogLevelInfo, LogType: LogTypeConsole, Encoding: tt.configured}
			settings.ApplyEnvironment(tt.environment)
			assert.Equal(t, tt.expected, settings.Encoding)
		})
	}
}
