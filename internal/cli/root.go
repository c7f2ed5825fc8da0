// Package cli implements garagectl, the operator command line for the garage backend.
package cli

import (
	"fmt"
	"time"

	"garage-backend/internal/config"
	"garage-backend/internal/database"
	"garage-backend/internal/logger"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// connect opens the configured database without migrating it.
// Replaced in tests with a container-backed handle.
var connect = func(retries int) (*gorm.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	logger.Setup(cfg.LogLevel)

	opts := &database.Options{
		LogLevel:       database.LogLevelFor(cfg.LogLevel),
		SkipMigrations: true,
	}
	db, err := database.InitializeWithRetry(cfg.DatabaseURL, opts, retries, time.Second)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

type rootOptions struct {
	retries int
}

func (o *rootOptions) open() (*gorm.DB, *config.Config, error) {
	if o.retries < 1 {
		return nil, nil, fmt.Errorf("retries must be at least 1")
	}
	return connect(o.retries)
}

// NewRootCommand builds the garagectl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "garagectl",
		Short:         "Garage backend admin CLI",
		Long:          "Administrative utilities for the garage backend (schema migration, seeding, account and log maintenance).",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.PersistentFlags().IntVar(&opts.retries, "retries", 1, "connection attempts before giving up, one second apart")

	cmd.AddCommand(
		migrateCommand(opts),
		seedCommand(opts),
		userCommand(opts),
		logsCommand(opts),
	)
	return cmd
}

// Execute runs the CLI.
func Execute() error {
	return NewRootCommand().Execute()
}

// closeDB releases the handle returned by connect.
var closeDB = func(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
