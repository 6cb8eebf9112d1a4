// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/canonical/lead-service/internal/types"
)

// Predicate is a role requirement evaluated against the caller of a route.
type Predicate func(*Principal) bool

// IsAuthenticated accepts any resolved caller.
func IsAuthenticated(p *Principal) bool {
	return p != nil
}

// IsSuperuser accepts platform administrators only.
func IsSuperuser(p *Principal) bool {
	return p.IsSuperuser()
}

// ManagesTenant accepts organisors and superusers.
func ManagesTenant(p *Principal) bool {
	return p.IsSuperuser() || p.IsOrganisor()
}

// WorksLeads accepts every role that has a lead listing.
func WorksLeads(p *Principal) bool {
	return p.IsSuperuser() || p.IsOrganisor() || p.IsAgent()
}

// AgentScope is the set of agent records a caller can list. Agents cannot
// list agents.
func AgentScope(p *Principal) Scope {
	switch {
	case p.IsSuperuser():
		return AllRows()
	case p.IsOrganisor():
		return TenantRows(p.TenantID)
	default:
		return NoRows()
	}
}

// AgentDetailScope extends AgentScope with an agent's own record.
func AgentDetailScope(p *Principal) Scope {
	if p.IsAgent() {
		return AssignedRows(p.TenantID, p.AgentID)
	}
	return AgentScope(p)
}

// LeadScope is the set of leads a caller can see: everything for
// superusers, the tenant for organisors, and assigned leads for agents.
func LeadScope(p *Principal) Scope {
	switch {
	case p.IsSuperuser():
		return AllRows()
	case p.IsOrganisor():
		return TenantRows(p.TenantID)
	case p.IsAgent():
		return AssignedRows(p.TenantID, p.AgentID)
	default:
		return NoRows()
	}
}

// CategoryScope is the set of categories a caller can read. Agents read
// their organisation's categories.
func CategoryScope(p *Principal) Scope {
	switch {
	case p.IsSuperuser():
		return AllRows()
	case p.IsOrganisor(), p.IsAgent():
		return TenantRows(p.TenantID)
	default:
		return NoRows()
	}
}

// CreationTenant is the tenant new agents, leads and categories go to.
// Superusers only ever use the tenant they name, never their own profile;
// everybody else is pinned to their own tenant.
func CreationTenant(p *Principal, requested string) string {
	switch {
	case p == nil:
		return ""
	case p.IsSuperuser():
		return requested
	default:
		return p.TenantID
	}
}

// CanCreateAgent reports whether the caller may add agents to a tenant.
func CanCreateAgent(p *Principal) bool {
	return ManagesTenant(p)
}

// CanMutateAgent reports whether the caller may update or delete an agent
// record. An agent never passes, not even for its own record; see
// CanUpdateOwnProfile.
func CanMutateAgent(p *Principal, agent *types.Agent) bool {
	if agent == nil {
		return false
	}

	switch {
	case p.IsSuperuser():
		return true
	case p.IsOrganisor():
		return agent.OrganisationID == p.TenantID
	default:
		return false
	}
}

// CanCreateLead reports whether the caller may create leads.
func CanCreateLead(p *Principal) bool {
	return ManagesTenant(p)
}

// CanMutateLead reports whether the caller may update a lead's details.
func CanMutateLead(p *Principal, lead *types.Lead) bool {
	if lead == nil {
		return false
	}

	switch {
	case p.IsSuperuser():
		return true
	case p.IsOrganisor():
		return lead.OrganisationID == p.TenantID
	case p.IsAgent():
		return lead.OrganisationID == p.TenantID && lead.AgentID != nil && *lead.AgentID == p.AgentID
	default:
		return false
	}
}

// CanDeleteLead reports whether the caller may delete a lead. Agents never can.
func CanDeleteLead(p *Principal, lead *types.Lead) bool {
	if p.IsAgent() {
		return false
	}
	return CanMutateLead(p, lead)
}

// CanAssignLead reports whether the caller may (re)assign a lead to agent, or
// unassign it when agent is nil. The agent must belong to the lead's tenant.
func CanAssignLead(p *Principal, lead *types.Lead, agent *types.Agent) bool {
	if p.IsAgent() || !CanMutateLead(p, lead) {
		return false
	}

	return agent == nil || agent.OrganisationID == lead.OrganisationID
}

// CanSetLeadCategory reports whether the caller may categorise a lead with
// category, or clear its category when category is nil.
func CanSetLeadCategory(p *Principal, lead *types.Lead, category *types.Category) bool {
	if !CanMutateLead(p, lead) {
		return false
	}

	return category == nil || category.OrganisationID == lead.OrganisationID
}

// CanCreateCategory reports whether the caller may create categories.
func CanCreateCategory(p *Principal) bool {
	return ManagesTenant(p)
}

// CanMutateCategory reports whether the caller may update or delete a category.
func CanMutateCategory(p *Principal, category *types.Category) bool {
	if category == nil {
		return false
	}

	switch {
	case p.IsSuperuser():
		return true
	case p.IsOrganisor():
		return category.OrganisationID == p.TenantID
	default:
		return false
	}
}

// CanUpdateOwnProfile is the self-service rule: any caller may edit its own
// account and nobody else's through the profile view.
func CanUpdateOwnProfile(p *Principal, account *types.Account) bool {
	return p != nil && account != nil && p.AccountID != "" && p.AccountID == account.ID
}

// CanDeleteAccount reports whether the caller may delete an arbitrary account.
func CanDeleteAccount(p *Principal, account *types.Account) bool {
	return account != nil && p.IsSuperuser()
}
