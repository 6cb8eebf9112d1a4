// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
)

const sessionIssuer = "lead-service"

var ErrInvalidSession = errors.New("invalid session token")

var _ SessionManagerInterface = (*SessionManager)(nil)

// SessionManager issues and verifies HS256 signed session tokens whose
// subject is the account ID.
type SessionManager struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (m *SessionManager) IssueToken(ctx context.Context, accountID string) (string, time.Time, error) {
	_, span := m.tracer.Start(ctx, "authentication.SessionManager.IssueToken")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := m.now()
	expiresAt := now.Add(m.lifetime)

	claims := jwt.RegisteredClaims{
		ID:        id.String(),
		Issuer:    sessionIssuer,
		Subject:   accountID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, expiresAt, nil
}

func (m *SessionManager) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	_, span := m.tracer.Start(ctx, "authentication.SessionManager.VerifyToken")
	defer span.End()

	claims := new(jwt.RegisteredClaims)

	_, err := jwt.ParseWithClaims(
		rawToken,
		claims,
		func(*jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(sessionIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidSession)
	}

	return claims.Subject, nil
}

func NewSessionManager(secret string, lifetime time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SessionManager {
	m := new(SessionManager)

	m.secret = []byte(secret)
	m.lifetime = lifetime
	m.now = time.Now

	m.tracer = tracer
	m.monitor = monitor
	m.logger = logger

	return m
}
