package cli

import (
	"fmt"

	"garage-backend/internal/repository"
	"garage-backend/internal/service"

	"github.com/spf13/cobra"
)

func logsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Activity log maintenance",
	}

	cmd.AddCommand(logsPruneCommand(opts))
	return cmd
}

func logsPruneCommand(opts *rootOptions) *cobra.Command {
	var (
		tenantID int64
		days     int
	)

	c := &cobra.Command{
		Use:   "prune",
		Short: "Delete a tenant's activity log entries older than --days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return fmt.Errorf("days must be positive, got %d", days)
			}

			db, _, err := opts.open()
			if err != nil {
				return err
			}
			defer closeDB(db)

			logs := service.NewActivityLogService(repository.NewActivityLogRepository(db), service.NewValidator())
			deleted, err := logs.Prune(cmd.Context(), tenantID, days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %d entries for tenant %d\n", deleted, tenantID)
			return nil
		},
	}
	c.Flags().Int64Var(&tenantID, "tenant", 0, "tenant id")
	c.Flags().IntVar(&days, "days", 90, "keep entries newer than this many days")
	_ = c.MarkFlagRequired("tenant")
	return c
}
