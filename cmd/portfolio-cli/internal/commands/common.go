package commands

import (
	"fmt"
	"os"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	configFlag        = "config"
	defaultConfigPath = "configs/rest-app.yaml"
)

// RegisterFlags adds the persistent flags shared by all commands
func RegisterFlags(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().String(configFlag, "", "Path to the configuration file")
}

// resolveConfigPath prefers the flag, then CONFIG_PATH, then the default path
func resolveConfigPath(cmd *cobra.Command) string {
	if flag := cmd.Flag(configFlag); flag != nil && flag.Value.String() != "" {
		return flag.Value.String()
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return defaultConfigPath
}

// setup loads the configuration and initializes the logger
func setup(cmd *cobra.Command) (*config.RestConfig, logger.Logger, error) {
	cfg, err := config.InitializeRestConfig(resolveConfigPath(cmd))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&cfg.Logger); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return cfg, loggerInstance, nil
}
