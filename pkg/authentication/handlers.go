// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

type LoginRequest struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string         `json:"token"`
	ExpiresAt time.Time      `json:"expires_at"`
	Account   *types.Account `json:"account"`
}

type API struct {
	authenticator AuthenticatorInterface
	sessions      SessionManagerInterface
	cookieSecure  bool
	validate      *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Post("/login/", a.login)
	mux.Post("/logout/", a.logout)
}

func (a *API) login(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "authentication.API.login")
	defer span.End()

	var req LoginRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	account, err := a.authenticator.Authenticate(ctx, req.Identifier, req.Password)
	if errors.Is(err, ErrAuthenticationFailed) {
		httptypes.WriteError(w, http.StatusUnauthorized, ErrAuthenticationFailed.Error())
		return
	}

	if err != nil {
		a.logger.Errorf("failed to authenticate: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	token, expiresAt, err := a.sessions.IssueToken(ctx, account.ID)
	if err != nil {
		a.logger.Errorf("failed to issue session: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	httptypes.WriteResponse(w, http.StatusOK, LoginResponse{Token: token, ExpiresAt: expiresAt, Account: account}, nil)
}

func (a *API) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	httptypes.WriteResponse(w, http.StatusOK, map[string]string{"status": "logged out"}, nil)
}

func NewAPI(
	authenticator AuthenticatorInterface,
	sessions SessionManagerInterface,
	cookieSecure bool,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.authenticator = authenticator
	a.sessions = sessions
	a.cookieSecure = cookieSecure
	a.validate = httptypes.NewValidator()

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
