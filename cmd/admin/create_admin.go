package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/mirak10/PeopleIQ/internal/user"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const adminPasswordEnv = "ADMIN_PASSWORD"

var (
	createAdminCmd = &cobra.Command{
		RunE:  runCreateAdmin,
		Use:   "create-admin",
		Short: "create the initial Admin identity if it does not exist",
	}
	adminName     string
	adminEmail    string
	adminPassword string
)

func init() {
	createAdminCmd.Flags().StringVar(&adminName, "name", "Admin User", "display name")
	createAdminCmd.Flags().StringVar(&adminEmail, "email", "admin@hranalysis.com", "login email")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "login password (defaults to $"+adminPasswordEnv+")")
}

func runCreateAdmin(cmd *cobra.Command, _ []string) error {
	password := adminPassword
	if password == "" {
		password = os.Getenv(adminPasswordEnv)
	}
	if password == "" {
		return errors.New("a password is required: pass --password or set " + adminPasswordEnv)
	}

	gormDB, db, logger, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()
	defer logger.Sync()

	account, created, err := user.EnsureAdmin(cmd.Context(), user.NewRepository(gormDB), adminName, adminEmail, password)
	if err != nil {
		return err
	}

	if !created {
		logger.Info("admin already exists", zap.String("email", account.Email))
		return nil
	}
	logger.Info("admin created", zap.String("email", account.Email), zap.String("id", account.ID.String()))
	fmt.Fprintf(cmd.OutOrStdout(), "created admin %s (%s)\n", account.Email, account.ID)
	return nil
}
