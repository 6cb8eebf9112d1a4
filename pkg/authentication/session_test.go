// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
)

func newTestSessionManager(secret string, now time.Time) *SessionManager {
	m := NewSessionManager(secret, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	m.now = func() time.Time { return now }
	return m
}

func TestSessionManager_RoundTrip(t *testing.T) {
	now := time.Now()
	m := newTestSessionManager("secret", now)

	token, expiresAt, err := m.IssueToken(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !expiresAt.Equal(now.Add(time.Hour)) {
		t.Fatalf("unexpected expiry %v", expiresAt)
	}

	accountID, err := m.VerifyToken(context.Background(), token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if accountID != "acc-1" {
		t.Fatalf("expected acc-1, got %s", accountID)
	}
}

func TestSessionManager_VerifyToken(t *testing.T) {
	now := time.Now()
	issuer := newTestSessionManager("secret", now)

	valid, _, err := issuer.IssueToken(context.Background(), "acc-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	noneToken, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "acc-1",
		Issuer:    sessionIssuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("failed to build unsigned token: %v", err)
	}

	foreignIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "acc-1",
		Issuer:    "someone-else",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject: "acc-1",
		Issuer:  sessionIssuer,
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("failed to build token: %v", err)
	}

	tests := []struct {
		name     string
		verifier *SessionManager
		token    string
	}{
		{"expired", newTestSessionManager("secret", now.Add(2*time.Hour)), valid},
		{"wrong secret", newTestSessionManager("other", now), valid},
		{"unsigned", issuer, noneToken},
		{"foreign issuer", issuer, foreignIssuer},
		{"missing expiry", issuer, noExpiry},
		{"garbage", issuer, "not-a-jwt"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := test.verifier.VerifyToken(context.Background(), test.token)

			if !errors.Is(err, ErrInvalidSession) {
				t.Fatalf("expected ErrInvalidSession, got %v", err)
			}
		})
	}
}
