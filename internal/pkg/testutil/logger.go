package testutil

import (
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// SetupTestLogger returns a console logger that only emits errors, so test
// output stays readable. Each test gets its own instance instead of the
// process wide singleton.
func SetupTestLogger(t *testing.T) logger.Logger {
	t.Helper()

	log := logger.NewConsoleLogger(config.LogLevelError, config.EncodingJSON)
	t.Cleanup(func() {
		_ = log.Sync()
	})
	return log
}
