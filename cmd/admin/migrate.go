package main

import (
	"github.com/mirak10/PeopleIQ/migrations"

	"github.com/spf13/cobra"
)

var (
	migrateCmd = &cobra.Command{
		RunE:  runMigration,
		Use:   "migrate",
		Short: "apply the embedded SQL migrations",
	}
	statusCmd = &cobra.Command{
		RunE:  runMigrationStatus,
		Use:   "status",
		Short: "print the applied state of every migration",
	}
	migrateRollback bool
)

func init() {
	migrateCmd.Flags().BoolVarP(&migrateRollback, "rollback", "r", false, "roll back the latest applied migration")
}

func runMigration(cmd *cobra.Command, _ []string) error {
	_, db, logger, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	if migrateRollback {
		if err := migrations.Down(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("rolled back latest migration")
		return nil
	}

	if err := migrations.Up(cmd.Context(), db); err != nil {
		return err
	}
	logger.Info("migrations applied")
	return nil
}

func runMigrationStatus(cmd *cobra.Command, _ []string) error {
	_, db, logger, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	return migrations.Status(cmd.Context(), db)
}
