// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"context"

	"github.com/canonical/lead-service/internal/authorization"
	"github.com/canonical/lead-service/internal/types"
	"github.com/canonical/lead-service/pkg/accounts"
)

type ServiceInterface interface {
	ListAgents(ctx context.Context, p *authorization.Principal, page, size int64) ([]*types.Agent, error)
	GetAgent(ctx context.Context, p *authorization.Principal, id string) (*types.Agent, error)
	CreateAgent(ctx context.Context, p *authorization.Principal, in *NewAgent) (*types.Agent, error)
	UpdateAgent(ctx context.Context, p *authorization.Principal, id string, update *AgentUpdate) (*types.Agent, error)
	DeleteAgent(ctx context.Context, p *authorization.Principal, id string) error
}

type StorageInterface interface {
	CreateAgent(ctx context.Context, accountID, organisationID string) (*types.Agent, error)
	GetAgent(ctx context.Context, id string, scope authorization.Scope) (*types.Agent, error)
	ListAgents(ctx context.Context, scope authorization.Scope, page, size int64) ([]*types.Agent, error)
	UpdateAccount(ctx context.Context, a *types.Account, paths []string) (*types.Account, error)
	DeleteAccount(ctx context.Context, id string) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// AccountsInterface is the account creation use-case agents are built on.
type AccountsInterface interface {
	CreateAccount(ctx context.Context, in *accounts.NewAccount) (*accounts.Registration, error)
	NotifyRegistration(ctx context.Context, reg *accounts.Registration) error
}

type PhoneNormalizerInterface interface {
	Normalize(raw string) (string, error)
}
