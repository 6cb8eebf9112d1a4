// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"context"
	"time"

	"github.com/canonical/lead-service/internal/types"
)

type ServiceInterface interface {
	// IssueToken stores a fresh token for the account and returns the raw value
	IssueToken(ctx context.Context, account *types.Account) (string, error)
	ConsumeToken(ctx context.Context, rawToken string) (*types.Account, error)
	SendVerification(ctx context.Context, account *types.Account, rawToken string) error
	Resend(ctx context.Context, email string) error
}

type StorageInterface interface {
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*types.Account, error)
	SetEmailVerified(ctx context.Context, accountID string) error
	CreateVerificationToken(ctx context.Context, accountID, tokenHash string, createdAt time.Time) (*types.VerificationToken, error)
	GetVerificationTokenForUpdate(ctx context.Context, tokenHash string) (*types.VerificationToken, error)
	MarkVerificationTokenUsed(ctx context.Context, id string) error
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}
