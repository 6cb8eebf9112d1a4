// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"net/http"
	"net/url"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/lead-service/internal/types"
	"github.com/canonical/lead-service/pkg/leads"
)

var leadCmd = &cobra.Command{
	Use:   "lead",
	Short: "Manage leads",
}

var listLeadsCmd = &cobra.Command{
	Use:   "list",
	Short: "List the leads visible to the caller",
	RunE: func(cmd *cobra.Command, args []string) error {
		query := url.Values{}
		if category, _ := cmd.Flags().GetString("category"); category != "" {
			query.Set("category", category)
		}
		if unassigned, _ := cmd.Flags().GetBool("unassigned"); unassigned {
			query.Set("unassigned", "true")
		}

		path := "/leads/"
		if len(query) > 0 {
			path += "?" + query.Encode()
		}

		var resp []*types.Lead

		if err := newAPIClient(httpEndpoint, sessionToken).do(cmd.Context(), http.MethodGet, path, nil, &resp); err != nil {
			return fmt.Errorf("failed to list leads: %w", err)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE\tAGENT\tCATEGORY")
		for _, l := range resp {
			fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\t%s\n", l.ID, l.FirstName, l.LastName, l.Email, l.PhoneNumber, deref(l.AgentID), deref(l.CategoryID))
		}

		return w.Flush()
	},
}

var createLeadCmd = &cobra.Command{
	Use:   "create [first name] [last name] [email] [phone]",
	Short: "Create a lead",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := leads.CreateLeadRequest{FirstName: args[0], LastName: args[1], Email: args[2], PhoneNumber: args[3]}
		req.Age, _ = cmd.Flags().GetInt("age")
		req.Description, _ = cmd.Flags().GetString("description")
		req.OrganisationID, _ = cmd.Flags().GetString("organisation-id")

		if agentID, _ := cmd.Flags().GetString("agent-id"); agentID != "" {
			req.AgentID = &agentID
		}

		var resp types.Lead

		if err := newAPIClient(httpEndpoint, sessionToken).do(cmd.Context(), http.MethodPost, "/leads/", req, &resp); err != nil {
			return fmt.Errorf("failed to create lead: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Lead created: %s %s (ID: %s)\n", resp.FirstName, resp.LastName, resp.ID)
		return nil
	},
}

var assignLeadCmd = &cobra.Command{
	Use:   "assign [lead id] [agent id]",
	Short: "Assign a lead to an agent, omit the agent to unassign it",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		req := leads.AssignAgentRequest{}
		if len(args) == 2 {
			req.AgentID = &args[1]
		}

		var resp types.Lead

		if err := newAPIClient(httpEndpoint, sessionToken).do(cmd.Context(), http.MethodPut, "/leads/"+args[0]+"/agent/", req, &resp); err != nil {
			return fmt.Errorf("failed to assign lead: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Lead %s assigned to %s\n", resp.ID, deref(resp.AgentID))
		return nil
	},
}

var deleteLeadCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a lead",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newAPIClient(httpEndpoint, sessionToken).do(cmd.Context(), http.MethodDelete, "/leads/"+args[0]+"/", nil, nil); err != nil {
			return fmt.Errorf("failed to delete lead: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Lead deleted: %s\n", args[0])
		return nil
	},
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func init() {
	listLeadsCmd.Flags().String("category", "", "Only leads in this category")
	listLeadsCmd.Flags().Bool("unassigned", false, "Only leads without an agent")

	createLeadCmd.Flags().Int("age", 0, "Age of the lead")
	createLeadCmd.Flags().String("description", "", "Free text description")
	createLeadCmd.Flags().String("agent-id", "", "Agent to assign the lead to")
	createLeadCmd.Flags().String("organisation-id", "", "Organisation to create the lead in (superusers only)")

	leadCmd.AddCommand(listLeadsCmd, createLeadCmd, assignLeadCmd, deleteLeadCmd)
	rootCmd.AddCommand(leadCmd)
}
