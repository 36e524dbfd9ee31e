package main

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/mirak10/PeopleIQ/internal/app"
	"github.com/mirak10/PeopleIQ/internal/config"
	"github.com/mirak10/PeopleIQ/internal/shared/connection"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var rootCmd = &cobra.Command{
	Use:           "admin",
	Short:         "PeopleIQ administration",
	Long:          `Schema migrations and account bootstrap for the PeopleIQ HR analytics API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(createAdminCmd)
}

// openStore loads configuration and connects to the database.
func openStore() (*gorm.DB, *sql.DB, *zap.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	logger, err := app.NewLogger(cfg.App.Env)
	if err != nil {
		return nil, nil, nil, err
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database.DSN(), cfg.Database.MaxRetries, logger.Named("admin"))
	if err != nil {
		return nil, nil, nil, err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, nil, err
	}
	return gormDB, sqlDB, logger, nil
}
