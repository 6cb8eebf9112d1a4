// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"

	"github.com/canonical/lead-service/internal/authorization"
	"github.com/canonical/lead-service/internal/types"
)

type ServiceInterface interface {
	ListLeads(ctx context.Context, p *authorization.Principal, filter types.LeadFilter, page, size int64) ([]*types.Lead, error)
	GetLead(ctx context.Context, p *authorization.Principal, id string) (*types.Lead, error)
	CreateLead(ctx context.Context, p *authorization.Principal, in *NewLead) (*types.Lead, error)
	UpdateLead(ctx context.Context, p *authorization.Principal, id string, update *LeadUpdate) (*types.Lead, error)
	DeleteLead(ctx context.Context, p *authorization.Principal, id string) error
	AssignAgent(ctx context.Context, p *authorization.Principal, id string, agentID *string) (*types.Lead, error)
	SetCategory(ctx context.Context, p *authorization.Principal, id string, categoryID *string) (*types.Lead, error)

	ListCategories(ctx context.Context, p *authorization.Principal) ([]*types.Category, error)
	GetCategory(ctx context.Context, p *authorization.Principal, id string, page, size int64) (*CategoryDetail, error)
	CreateCategory(ctx context.Context, p *authorization.Principal, in *NewCategory) (*types.Category, error)
	DeleteCategory(ctx context.Context, p *authorization.Principal, id string) error
}

type StorageInterface interface {
	GetAgent(ctx context.Context, id string, scope authorization.Scope) (*types.Agent, error)

	CreateLead(ctx context.Context, l *types.Lead) (*types.Lead, error)
	GetLead(ctx context.Context, id string, scope authorization.Scope) (*types.Lead, error)
	ListLeads(ctx context.Context, scope authorization.Scope, filter types.LeadFilter, page, size int64) ([]*types.Lead, error)
	UpdateLead(ctx context.Context, l *types.Lead, paths []string) (*types.Lead, error)
	DeleteLead(ctx context.Context, id string) error

	CreateCategory(ctx context.Context, c *types.Category) (*types.Category, error)
	GetCategory(ctx context.Context, id string, scope authorization.Scope) (*types.Category, error)
	ListCategories(ctx context.Context, scope authorization.Scope) ([]*types.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type PhoneNormalizerInterface interface {
	Normalize(raw string) (string, error)
}
