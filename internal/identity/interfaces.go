// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"

	"github.com/canonical/lead-service/internal/types"
)

type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	GetProfileByAccountID(ctx context.Context, accountID string) (*types.Profile, error)
	GetAgentByAccountID(ctx context.Context, accountID string) (*types.Agent, error)
}
