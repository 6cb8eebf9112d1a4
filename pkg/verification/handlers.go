// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
)

type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/verify-email/{token}/", a.verify)
	mux.Post("/verify-email/resend/", a.resend)
}

func (a *API) verify(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "verification.API.verify")
	defer span.End()

	_, err := a.service.ConsumeToken(ctx, chi.URLParam(r, "token"))
	if errors.Is(err, ErrVerificationFailed) {
		httptypes.WriteError(w, http.StatusBadRequest, ErrVerificationFailed.Error())
		return
	}

	if err != nil {
		a.logger.Errorf("failed to verify email: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to verify email")
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, map[string]string{"status": "verified"})
}

// resend answers the same way whether or not a message went out, so the
// endpoint cannot be used to probe for registered addresses.
func (a *API) resend(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "verification.API.resend")
	defer span.End()

	var req ResendRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	if err := a.service.Resend(ctx, req.Email); err != nil {
		a.logger.Errorf("failed to resend verification email: %v", err)
	}

	httptypes.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

func NewAPI(service ServiceInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.service = service
	a.validate = httptypes.NewValidator()

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
