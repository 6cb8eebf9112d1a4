// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"errors"
	"net/http"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
	"github.com/canonical/lead-service/pkg/authentication"
)

type Middleware struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// ResolvePrincipal loads the authenticated account with its tenant profile
// and agent membership once per request and stores the resulting principal
// in the context. Requests without an account, or whose account no longer
// exists, continue anonymously.
func (m *Middleware) ResolvePrincipal() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.ResolvePrincipal")
			defer span.End()

			accountID, ok := authentication.GetAccountID(ctx)
			if !ok {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			p, err := m.principal(ctx, accountID)
			if err != nil {
				m.logger.Errorf("failed to resolve principal: %v", err)
				httptypes.WriteError(w, http.StatusInternalServerError, "failed to resolve caller")
				return
			}

			if p != nil {
				ctx = authorization.WithPrincipal(ctx, p)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func (m *Middleware) principal(ctx context.Context, accountID string) (*authorization.Principal, error) {
	account, err := m.storage.GetAccountByID(ctx, accountID)
	if errors.Is(err, storage.ErrNotFound) {
		m.logger.Debugf("session refers to missing account %s", accountID)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	profile, err := m.storage.GetProfileByAccountID(ctx, accountID)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, err
	}

	var membership *types.Agent
	if account.IsAgent {
		membership, err = m.storage.GetAgentByAccountID(ctx, accountID)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	return authorization.NewPrincipal(account, profile, membership), nil
}

func NewMiddleware(storage StorageInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}
