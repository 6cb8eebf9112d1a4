// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

// ErrAuthenticationFailed is the only error callers see for bad credentials,
// whatever the actual cause.
var ErrAuthenticationFailed = errors.New("invalid credentials")

var _ AuthenticatorInterface = (*Authenticator)(nil)

// Authenticator resolves a username or email plus password to an account.
type Authenticator struct {
	storage StorageInterface
	hasher  *PasswordHasher

	// dummyHash is compared against when no account matched, so that a miss
	// costs the same bcrypt work as a wrong password.
	dummyHash string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Authenticate trims the identifier, tries it as a username then as an email
// (both case-insensitive) and checks the password. Unverified accounts are
// rejected here so that no caller can forget to check.
func (a *Authenticator) Authenticate(ctx context.Context, identifier, password string) (*types.Account, error) {
	ctx, span := a.tracer.Start(ctx, "authentication.Authenticator.Authenticate")
	defer span.End()

	identifier = strings.TrimSpace(identifier)

	account, err := a.lookup(ctx, identifier)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	hash := a.dummyHash
	if account != nil {
		hash = account.PasswordHash
	}

	match := a.hasher.ComparePasswordAndHash(password, hash)

	var reason string
	switch {
	case account == nil:
		reason = "unknown identifier"
	case !match:
		reason = "wrong password"
	case !account.EmailVerified:
		reason = "email not verified"
	}

	if reason != "" {
		a.logger.Security().AuthnLoginFail(identifier, reason)
		a.countAttempt("failure")
		return nil, ErrAuthenticationFailed
	}

	a.logger.Security().AuthnLoginSuccess(account.ID)
	a.countAttempt("success")

	return account, nil
}

func (a *Authenticator) lookup(ctx context.Context, identifier string) (*types.Account, error) {
	if identifier == "" {
		return nil, storage.ErrNotFound
	}

	account, err := a.storage.GetAccountByUsername(ctx, identifier)
	if err == nil {
		return account, nil
	}

	if !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	return a.storage.GetAccountByEmail(ctx, identifier)
}

func (a *Authenticator) countAttempt(outcome string) {
	if err := a.monitor.IncAuthEvent(map[string]string{"event": "login", "outcome": outcome}); err != nil {
		a.logger.Debugf("failed to record login attempt: %v", err)
	}
}

func NewAuthenticator(
	storage StorageInterface,
	hasher *PasswordHasher,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authenticator {
	a := new(Authenticator)

	a.storage = storage
	a.hasher = hasher

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	seed := make([]byte, 16)
	_, _ = rand.Read(seed)

	dummy, err := hasher.HashPassword(hex.EncodeToString(seed))
	if err != nil {
		logger.Errorf("failed to prepare dummy password hash: %v", err)
	}
	a.dummyHash = dummy

	return a
}
