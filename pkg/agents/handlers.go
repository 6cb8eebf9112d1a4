// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/pkg/accounts"
)

type CreateAgentRequest struct {
	Username       string `json:"username" validate:"required,min=3,max=150"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8,max=72"`
	PhoneNumber    string `json:"phone_number,omitempty"`
	FirstName      string `json:"first_name,omitempty" validate:"max=150"`
	LastName       string `json:"last_name,omitempty" validate:"max=150"`
	OrganisationID string `json:"organisation_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateAgentRequest struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=150"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
}

type API struct {
	service  ServiceInterface
	guard    authorization.GuardInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Route("/agents", func(r chi.Router) {
		r.With(a.guard.Require(authorization.ManagesTenant)).Get("/", a.listAgents)
		r.With(a.guard.Require(authorization.CanCreateAgent)).Post("/", a.createAgent)
		r.With(a.guard.Require(authorization.WorksLeads)).Get("/{id}/", a.getAgent)
		r.With(a.guard.Require(authorization.ManagesTenant)).Patch("/{id}/", a.updateAgent)
		r.With(a.guard.Require(authorization.ManagesTenant)).Delete("/{id}/", a.deleteAgent)
	})
}

func (a *API) listAgents(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.listAgents")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)
	page, size := httptypes.PageParams(r)

	agents, err := a.service.ListAgents(ctx, p, page, size)
	if err != nil {
		a.logger.Errorf("failed to list agents: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list agents")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, agents, &httptypes.Pagination{Page: page, Size: size})
}

func (a *API) createAgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.createAgent")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	var req CreateAgentRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	agent, err := a.service.CreateAgent(ctx, p, &NewAgent{
		Username:       req.Username,
		Email:          req.Email,
		Password:       req.Password,
		PhoneNumber:    req.PhoneNumber,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		OrganisationID: req.OrganisationID,
	})

	var verr *httptypes.ValidationError
	switch {
	case err == nil:
		httptypes.WriteResponse(w, http.StatusCreated, agent, nil)
	case errors.As(err, &verr):
		httptypes.WriteValidationError(w, verr)
	case errors.Is(err, accounts.ErrNotificationFailed):
		httptypes.WriteError(w, http.StatusBadGateway, accounts.ErrNotificationFailed.Error())
	case errors.Is(err, storage.ErrNotFound):
		authorization.Respond(w, r, authorization.NotFound())
	default:
		a.logger.Errorf("failed to create agent: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create agent")
	}
}

func (a *API) getAgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.getAgent")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	agent, err := a.service.GetAgent(ctx, p, chi.URLParam(r, "id"))
	if errors.Is(err, storage.ErrNotFound) {
		authorization.Respond(w, r, authorization.NotFound())
		return
	}

	if err != nil {
		a.logger.Errorf("failed to get agent: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to get agent")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, agent, nil)
}

func (a *API) updateAgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.updateAgent")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	var req UpdateAgentRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	agent, err := a.service.UpdateAgent(ctx, p, chi.URLParam(r, "id"), &AgentUpdate{
		Username:    req.Username,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
	})

	var verr *httptypes.ValidationError
	switch {
	case err == nil:
		httptypes.WriteResponse(w, http.StatusOK, agent, nil)
	case errors.As(err, &verr):
		httptypes.WriteValidationError(w, verr)
	case errors.Is(err, storage.ErrNotFound):
		authorization.Respond(w, r, authorization.NotFound())
	default:
		a.logger.Errorf("failed to update agent: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to update agent")
	}
}

func (a *API) deleteAgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "agents.API.deleteAgent")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	err := a.service.DeleteAgent(ctx, p, chi.URLParam(r, "id"))

	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, storage.ErrNotFound):
		authorization.Respond(w, r, authorization.NotFound())
	default:
		a.logger.Errorf("failed to delete agent: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to delete agent")
	}
}

func NewAPI(
	service ServiceInterface,
	guard authorization.GuardInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	a := new(API)

	a.service = service
	a.guard = guard
	a.validate = httptypes.NewValidator()

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
