package commands

import (
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence"

	"github.com/spf13/cobra"
)

// InitMigrateCommand registers the migrate command
func InitMigrateCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE:  runMigrate,
	})
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	db, err := persistence.NewDBConnection(cmd.Context(), cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		_ = persistence.CloseDB(db)
	}()

	if err := persistence.Migrate(db); err != nil {
		return err
	}

	log.Info("Database migrations completed successfully")
	fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
	return nil
}
