package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Build metadata, set with -ldflags "-X ...commands.Version=v1.2.3"
var (
	Version = "dev"
	Commit  = "none"
)

// InitVersionCommand registers the version command
func InitVersionCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "portfolio-cli %s (%s)\n", Version, Commit)
		},
	})
}
