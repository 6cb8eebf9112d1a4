// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/canonical/lead-service/pkg/authentication"
)

var loginCmd = &cobra.Command{
	Use:   "login [username or email]",
	Short: "Log in and print a session token",
	Long:  `Log in and print a session token, export it as LEAD_SERVICE_TOKEN to authenticate the other commands`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		password, _ := cmd.Flags().GetString("password")

		var resp authentication.LoginResponse

		err := newAPIClient(httpEndpoint, "").do(
			cmd.Context(),
			http.MethodPost,
			"/login/",
			authentication.LoginRequest{Identifier: args[0], Password: password},
			&resp,
		)
		if err != nil {
			return fmt.Errorf("failed to log in: %w", err)
		}

		cmd.PrintErrf("Logged in as %s until %s\n", resp.Account.Username, resp.ExpiresAt.Format("2006-01-02 15:04"))
		fmt.Fprintln(cmd.OutOrStdout(), resp.Token)

		return nil
	},
}

func init() {
	loginCmd.Flags().String("password", "", "Account password")
	_ = loginCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(loginCmd)
}
