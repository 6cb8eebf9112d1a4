// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/lead-service/internal/types"
	"github.com/canonical/lead-service/pkg/agents"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "Manage the agents of an organisation",
}

var listAgentsCmd = &cobra.Command{
	Use:   "list",
	Short: "List agents",
	RunE: func(cmd *cobra.Command, args []string) error {
		var resp []*types.Agent

		if err := newAPIClient(httpEndpoint, sessionToken).do(cmd.Context(), http.MethodGet, "/agents/", nil, &resp); err != nil {
			return fmt.Errorf("failed to list agents: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tORGANISATION\tCREATED_AT")
		for _, a := range resp {
			username, email := "", ""
			if a.Account != nil {
				username, email = a.Account.Username, a.Account.Email
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", a.ID, username, email, a.OrganisationID, a.CreatedAt.Format("2006-01-02"))
		}

		return w.Flush()
	},
}

var createAgentCmd = &cobra.Command{
	Use:   "create [username] [email]",
	Short: "Create an agent, a verification email is sent to the address",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := agents.CreateAgentRequest{Username: args[0], Email: args[1]}
		req.Password, _ = cmd.Flags().GetString("password")
		req.PhoneNumber, _ = cmd.Flags().GetString("phone")
		req.FirstName, _ = cmd.Flags().GetString("first-name")
		req.LastName, _ = cmd.Flags().GetString("last-name")
		req.OrganisationID, _ = cmd.Flags().GetString("organisation-id")

		var resp types.Agent

		if err := newAPIClient(httpEndpoint, sessionToken).do(cmd.Context(), http.MethodPost, "/agents/", req, &resp); err != nil {
			return fmt.Errorf("failed to create agent: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Agent created: %s (ID: %s)\n", args[0], resp.ID)
		return nil
	},
}

var deleteAgentCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete an agent and its account",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient(httpEndpoint, sessionToken).do(cmd.Context(), http.MethodDelete, "/agents/"+args[0]+"/", nil, nil); err != nil {
			return fmt.Errorf("failed to delete agent: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Agent deleted: %s\n", args[0])
		return nil
	},
}

func init() {
	createAgentCmd.Flags().String("password", "", "Initial password of the agent")
	createAgentCmd.Flags().String("phone", "", "Phone number")
	createAgentCmd.Flags().String("first-name", "", "First name")
	createAgentCmd.Flags().String("last-name", "", "Last name")
	createAgentCmd.Flags().String("organisation-id", "", "Organisation to create the agent in (superusers only)")
	_ = createAgentCmd.MarkFlagRequired("password")

	agentCmd.AddCommand(listAgentsCmd, createAgentCmd, deleteAgentCmd)
	rootCmd.AddCommand(agentCmd)
}
