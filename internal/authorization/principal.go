// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/lead-service/internal/types"
)

// Kind is the role a caller acts with for the duration of a request.
type Kind int

const (
	KindUnprivileged Kind = iota
	KindSuperuser
	KindOrganisor
	KindAgent
)

func (k Kind) String() string {
	switch k {
	case KindSuperuser:
		return "superuser"
	case KindOrganisor:
		return "organisor"
	case KindAgent:
		return "agent"
	default:
		return "unprivileged"
	}
}

// Principal is the caller's role, resolved once per request from the stored
// account flags, tenant profile and agent membership.
type Principal struct {
	AccountID string
	Kind      Kind
	// TenantID is the organisation profile the caller is scoped to: its own
	// profile for organisors, the owning organisor's profile for agents.
	TenantID string
	// AgentID is the caller's membership record, set only for agents.
	AgentID string
}

// NewPrincipal derives the caller's role. A superuser flag always wins; the
// organisor and agent roles need their backing records and are only granted
// when exactly one of the two flags is set. Anything else is unprivileged.
func NewPrincipal(account *types.Account, profile *types.Profile, membership *types.Agent) *Principal {
	if account == nil {
		return nil
	}

	p := &Principal{AccountID: account.ID, Kind: KindUnprivileged}

	switch {
	case account.IsSuperuser:
		p.Kind = KindSuperuser
		if profile != nil {
			p.TenantID = profile.ID
		}
	case account.IsOrganisor && !account.IsAgent && profile != nil:
		p.Kind = KindOrganisor
		p.TenantID = profile.ID
	case account.IsAgent && !account.IsOrganisor && membership != nil && membership.AccountID == account.ID:
		p.Kind = KindAgent
		p.TenantID = membership.OrganisationID
		p.AgentID = membership.ID
	}

	return p
}

func (p *Principal) IsSuperuser() bool {
	return p != nil && p.Kind == KindSuperuser
}

func (p *Principal) IsOrganisor() bool {
	return p != nil && p.Kind == KindOrganisor
}

func (p *Principal) IsAgent() bool {
	return p != nil && p.Kind == KindAgent
}

type principalContextKey struct{}

// WithPrincipal returns a new context carrying the caller's principal.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// PrincipalFromContext returns the principal resolved for this request, if any.
func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(*Principal)
	return p, ok && p != nil
}
