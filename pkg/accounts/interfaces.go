// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"

	"github.com/canonical/lead-service/internal/authorization"
	"github.com/canonical/lead-service/internal/types"
)

type ServiceInterface interface {
	CreateAccount(ctx context.Context, in *NewAccount) (*Registration, error)
	NotifyRegistration(ctx context.Context, reg *Registration) error
	Signup(ctx context.Context, in *NewAccount) (*types.Account, error)
	CreateSuperuser(ctx context.Context, in *NewAccount) (*types.Account, error)
	GetProfile(ctx context.Context, accountID string) (*types.Account, error)
	UpdateProfile(ctx context.Context, p *authorization.Principal, update *ProfileUpdate) (*types.Account, error)
	DeleteAccount(ctx context.Context, p *authorization.Principal, id string) error
}

type StorageInterface interface {
	CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error)
	GetAccountByID(ctx context.Context, id string) (*types.Account, error)
	UpdateAccount(ctx context.Context, a *types.Account, paths []string) (*types.Account, error)
	SetEmailVerified(ctx context.Context, accountID string) error
	DeleteAccount(ctx context.Context, id string) error
	DeleteAgentAccountsByOrganisation(ctx context.Context, organisationID string) (int64, error)
	CreateProfile(ctx context.Context, accountID string) (*types.Profile, error)
	GetProfileByAccountID(ctx context.Context, accountID string) (*types.Profile, error)
}

type TxRunnerInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

// VerifierInterface is the part of the verification service used at registration.
type VerifierInterface interface {
	IssueToken(ctx context.Context, account *types.Account) (string, error)
	SendVerification(ctx context.Context, account *types.Account, rawToken string) error
}

type PasswordHasherInterface interface {
	HashPassword(password string) (string, error)
}

type PhoneNormalizerInterface interface {
	Normalize(raw string) (string, error)
}
