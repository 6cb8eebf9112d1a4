// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/lead-service/internal/authorization"
	"github.com/canonical/lead-service/internal/db"
	"github.com/canonical/lead-service/internal/identity"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/pkg/accounts"
	"github.com/canonical/lead-service/pkg/agents"
	"github.com/canonical/lead-service/pkg/authentication"
	"github.com/canonical/lead-service/pkg/leads"
	"github.com/canonical/lead-service/pkg/metrics"
	"github.com/canonical/lead-service/pkg/status"
	"github.com/canonical/lead-service/pkg/verification"
)

// Services groups the domain services exposed over HTTP
type Services struct {
	Authenticator authentication.AuthenticatorInterface
	Sessions      authentication.SessionManagerInterface
	Accounts      accounts.ServiceInterface
	Agents        agents.ServiceInterface
	Leads         leads.ServiceInterface
	Verification  verification.ServiceInterface
}

type Config struct {
	CORSAllowedOrigins []string
	CookieSecure       bool
}

func NewRouter(
	cfg Config,
	services Services,
	identityMiddleware *identity.Middleware,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.CORSAllowedOrigins),
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	guard := authorization.NewGuard(tracer, monitor, logger)

	router.Group(func(r chi.Router) {
		r.Use(
			authentication.NewMiddleware(services.Sessions, tracer, monitor, logger).Authenticate(),
			identityMiddleware.ResolvePrincipal(),
		)

		authentication.NewAPI(services.Authenticator, services.Sessions, cfg.CookieSecure, tracer, monitor, logger).RegisterEndpoints(r)
		verification.NewAPI(services.Verification, tracer, monitor, logger).RegisterEndpoints(r)
		accounts.NewAPI(services.Accounts, guard, tracer, monitor, logger).RegisterEndpoints(r)
		agents.NewAPI(services.Agents, guard, tracer, monitor, logger).RegisterEndpoints(r)

		// lead and category writes share one transaction per request
		r.Group(func(r chi.Router) {
			r.Use(db.TransactionMiddleware(dbClient, logger))

			leads.NewAPI(services.Leads, guard, tracer, monitor, logger).RegisterEndpoints(r)
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
