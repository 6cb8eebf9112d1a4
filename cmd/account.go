// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/canonical/lead-service/internal/config"
	"github.com/canonical/lead-service/internal/db"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/mail"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/pkg/accounts"
)

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Administer accounts directly in the database",
}

var createSuperuserCmd = &cobra.Command{
	Use:   "create-superuser [username]",
	Short: "Create a verified superuser account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dsn, _ := cmd.Flags().GetString("dsn")
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		cost, _ := cmd.Flags().GetInt("bcrypt-cost")

		logger := logging.NewLogger("info")
		defer logger.Sync()

		tracer := tracing.NewNoopTracer()
		monitor := monitoring.NewNoopMonitor("lead-service")

		dbClient, err := db.NewDBClient(
			db.Config{DSN: dsn, MaxConns: 2, MinConns: 1, MaxConnLifetime: time.Minute, MaxConnIdleTime: time.Minute},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to create database client: %w", err)
		}
		defer dbClient.Close()

		specs := &config.EnvSpec{BcryptCost: cost, DefaultPhoneRegion: "US"}
		services, _ := newServices(specs, dbClient, mail.NewLogNotifier(logger), tracer, monitor, logger)

		account, err := services.Accounts.CreateSuperuser(cmd.Context(), &accounts.NewAccount{
			Username: args[0],
			Email:    email,
			Password: password,
		})
		if err != nil {
			return fmt.Errorf("failed to create superuser: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Superuser created: %s (ID: %s)\n", account.Username, account.ID)
		return nil
	},
}

func init() {
	createSuperuserCmd.Flags().String("dsn", "", "PostgreSQL DSN connection string")
	createSuperuserCmd.Flags().String("email", "", "Email address of the superuser")
	createSuperuserCmd.Flags().String("password", "", "Password of the superuser")
	createSuperuserCmd.Flags().Int("bcrypt-cost", 12, "bcrypt cost used to hash the password")
	_ = createSuperuserCmd.MarkFlagRequired("dsn")
	_ = createSuperuserCmd.MarkFlagRequired("email")
	_ = createSuperuserCmd.MarkFlagRequired("password")

	accountCmd.AddCommand(createSuperuserCmd)
	rootCmd.AddCommand(accountCmd)
}
