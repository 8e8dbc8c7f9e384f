//go:build unit
// +build unit

package commands

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{Use: "portfolio-cli", SilenceUsage: true, SilenceErrors: true}
	RegisterFlags(rootCmd)
	InitMigrateCommand(rootCmd)
	InitPublishCommand(rootCmd)
	InitVersionCommand(rootCmd)
	return rootCmd
}

func TestVersionCommand(t *testing.T) {
	rootCmd := newRootCmd()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "portfolio-cli dev (none)\n", out.String())
}

func TestCommandsAreRegistered(t *testing.T) {
	rootCmd := newRootCmd()

	for _, name := range []string{"migrate", "publish-scheduled", "version"} {
		cmd, _, err := rootCmd.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}

func TestResolveConfigPath(t *testing.T) {
	t.Run("flag wins", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "/env/config.yaml")
		rootCmd := newRootCmd()
		require.NoError(t, rootCmd.PersistentFlags().Set(configFlag, "/flag/config.yaml"))

		assert.Equal(t, "/flag/config.yaml", resolveConfigPath(rootCmd))
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "/env/config.yaml")

		assert.Equal(t, "/env/config.yaml", resolveConfigPath(newRootCmd()))
	})

	t.Run("default", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", "")

		assert.Equal(t, defaultConfigPath, resolveConfigPath(newRootCmd()))
	})
}
