package cli

import (
	"fmt"

	"garage-backend/internal/database"
	"garage-backend/internal/seed"

	"github.com/spf13/cobra"
)

func migrateCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, _, err := opts.open()
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "schema up to date (%d tables)\n", len(database.Models()))
			return nil
		},
	}
}

func seedCommand(opts *rootOptions) *cobra.Command {
	var dir string

	c := &cobra.Command{
		Use:   "seed",
		Short: "Load users and stock from YAML files",
		Long:  "Reads users*.yaml and stock*.yaml from --dir and creates whatever is missing. Safe to run repeatedly.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Parse first so a bad file never touches the database.
			data, err := seed.LoadDir(dir)
			if err != nil {
				return err
			}

			db, _, err := opts.open()
			if err != nil {
				return err
			}
			defer closeDB(db)

			if err := database.Migrate(db); err != nil {
				return err
			}
			result, err := seed.Apply(db, data)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d users, %d stock items\n", result.UsersCreated, result.StockCreated)
			return nil
		},
	}
	c.Flags().StringVar(&dir, "dir", "scripts/data", "directory holding the seed YAML files")
	return c
}
