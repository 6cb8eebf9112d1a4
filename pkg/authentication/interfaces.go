// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"time"

	"github.com/canonical/lead-service/internal/types"
)

type StorageInterface interface {
	GetAccountByUsername(ctx context.Context, username string) (*types.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*types.Account, error)
}

type AuthenticatorInterface interface {
	// Authenticate resolves credentials to a verified account
	Authenticate(ctx context.Context, identifier, password string) (*types.Account, error)
}

type TokenVerifierInterface interface {
	// VerifyToken validates a session token and returns the account ID it was issued for
	VerifyToken(ctx context.Context, rawToken string) (string, error)
}

type SessionManagerInterface interface {
	TokenVerifierInterface
	IssueToken(ctx context.Context, accountID string) (string, time.Time, error)
}
