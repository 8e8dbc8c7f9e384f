package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/bootstrap"

	"github.com/spf13/cobra"
)

const publishTimeout = time.Minute

// InitPublishCommand registers the publish-scheduled command
func InitPublishCommand(rootCmd *cobra.Command) {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "publish-scheduled",
		Short: "Publish every scheduled post that is due",
		Long: `publish-scheduled publishes all posts whose status is scheduled and whose
scheduled_at lies in the past, then prints how many posts were published.
It is safe to run repeatedly, e.g. from a system cron job.`,
		Args: cobra.NoArgs,
		RunE: runPublishScheduled,
	})
}

func runPublishScheduled(cmd *cobra.Command, _ []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), publishTimeout)
	defer cancel()

	container, err := bootstrap.NewContainer(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer container.Close()

	count, err := container.Services.Posts.PublishScheduled(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to publish scheduled posts: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "published %d post(s)\n", count)
	return nil
}
