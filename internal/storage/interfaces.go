// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/lead-service/internal/authorization"
	"github.com/canonical/lead-service/internal/types"
)

type StorageInterface interface {
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	GetAccountByUsername(ctx context.Context, username string) (*types.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*types.Account, error)
	UpdateAccount(ctx context.Context, a *types.Account, paths []string) (*types.Account, error)
	SetEmailVerified(ctx context.Context, accountID string) error
	DeleteAccount(ctx context.Context, id string) error
	DeleteAgentAccountsByOrganisation(ctx context.Context, organisationID string) (int64, error)
	CreateProfile(ctx context.Context, accountID string) (*types.Profile, error)
	GetProfileByAccountID(ctx context.Context, accountID string) (*types.Profile, error)

	CreateVerificationToken(ctx context.Context, accountID, tokenHash string, createdAt time.Time) (*types.VerificationToken, error)
	GetVerificationTokenForUpdate(ctx context.Context, tokenHash string) (*types.VerificationToken, error)
	MarkVerificationTokenUsed(ctx context.Context, id string) error

	CreateAgent(ctx context.Context, accountID, organisationID string) (*types.Agent, error)
	GetAgentByAccountID(ctx context.Context, accountID string) (*types.Agent, error)
	GetAgent(ctx context.Context, id string, scope authorization.Scope) (*types.Agent, error)
	ListAgents(ctx context.Context, scope authorization.Scope, page, size int64) ([]*types.Agent, error)

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
