// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

type CreateLeadRequest struct {
	FirstName      string  `json:"first_name" validate:"required,max=20"`
	LastName       string  `json:"last_name" validate:"required,max=20"`
	Age            int     `json:"age" validate:"gte=0,lte=150"`
	Description    string  `json:"description"`
	PhoneNumber    string  `json:"phone_number" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	AgentID        *string `json:"agent_id,omitempty" validate:"omitempty,uuid"`
	CategoryID     *string `json:"category_id,omitempty" validate:"omitempty,uuid"`
	OrganisationID string  `json:"organisation_id,omitempty" validate:"omitempty,uuid"`
}

type UpdateLeadRequest struct {
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=20"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=20"`
	Age         *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=150"`
	Description *string `json:"description,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
}

// AssignAgentRequest unassigns the lead when AgentID is null.
type AssignAgentRequest struct {
	AgentID *string `json:"agent_id" validate:"omitempty,uuid"`
}

// SetCategoryRequest clears the category when CategoryID is null.
type SetCategoryRequest struct {
	CategoryID *string `json:"category_id" validate:"omitempty,uuid"`
}

type CreateCategoryRequest struct {
	Name           string `json:"name" validate:"required,max=30"`
	OrganisationID string `json:"organisation_id,omitempty" validate:"omitempty,uuid"`
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
	mux.Route("/leads", func(r chi.Router) {
		r.With(a.guard.Require(authorization.WorksLeads)).Get("/", a.listLeads)
		r.With(a.guard.Require(authorization.CanCreateLead)).Post("/", a.createLead)
		r.With(a.guard.Require(authorization.WorksLeads)).Get("/{id}/", a.getLead)
		r.With(a.guard.Require(authorization.WorksLeads)).Patch("/{id}/", a.updateLead)
		r.With(a.guard.Require(authorization.ManagesTenant)).Delete("/{id}/", a.deleteLead)
		r.With(a.guard.Require(authorization.ManagesTenant)).Put("/{id}/agent/", a.assignAgent)
		r.With(a.guard.Require(authorization.WorksLeads)).Put("/{id}/category/", a.setCategory)
	})

	mux.Route("/categories", func(r chi.Router) {
		r.With(a.guard.Require(authorization.WorksLeads)).Get("/", a.listCategories)
		r.With(a.guard.Require(authorization.CanCreateCategory)).Post("/", a.createCategory)
		r.With(a.guard.Require(authorization.WorksLeads)).Get("/{id}/", a.getCategory)
		r.With(a.guard.Require(authorization.ManagesTenant)).Delete("/{id}/", a.deleteCategory)
	})
}

// writeResult renders the outcome of a service call on a single resource.
func (a *API) writeResult(w http.ResponseWriter, r *http.Request, status int, data any, err error, action string) {
	var verr *httptypes.ValidationError

	switch {
	case err == nil && data == nil:
		w.WriteHeader(status)
	case err == nil:
		httptypes.WriteResponse(w, status, data, nil)
	case errors.As(err, &verr):
		httptypes.WriteValidationError(w, verr)
	case errors.Is(err, storage.ErrNotFound):
		authorization.Respond(w, r, authorization.NotFound())
	default:
		a.logger.Errorf("failed to %s: %v", action, err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to "+action)
	}
}

func (a *API) listLeads(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.listLeads")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)
	page, size := httptypes.PageParams(r)

	filter := types.LeadFilter{CategoryID: r.URL.Query().Get("category")}
	filter.Unassigned, _ = strconv.ParseBool(r.URL.Query().Get("unassigned"))

	leads, err := a.service.ListLeads(ctx, p, filter, page, size)
	if err != nil {
		a.logger.Errorf("failed to list leads: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, leads, &httptypes.Pagination{Page: page, Size: size})
}

func (a *API) createLead(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.createLead")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	var req CreateLeadRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	lead, err := a.service.CreateLead(ctx, p, &NewLead{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Age:            req.Age,
		Description:    req.Description,
		PhoneNumber:    req.PhoneNumber,
		Email:          req.Email,
		AgentID:        req.AgentID,
		CategoryID:     req.CategoryID,
		OrganisationID: req.OrganisationID,
	})

	a.writeResult(w, r, http.StatusCreated, lead, err, "create lead")
}

func (a *API) getLead(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.getLead")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	lead, err := a.service.GetLead(ctx, p, chi.URLParam(r, "id"))

	a.writeResult(w, r, http.StatusOK, lead, err, "get lead")
}

func (a *API) updateLead(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.updateLead")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	var req UpdateLeadRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	lead, err := a.service.UpdateLead(ctx, p, chi.URLParam(r, "id"), &LeadUpdate{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Age:         req.Age,
		Description: req.Description,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	})

	a.writeResult(w, r, http.StatusOK, lead, err, "update lead")
}

func (a *API) deleteLead(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.deleteLead")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	err := a.service.DeleteLead(ctx, p, chi.URLParam(r, "id"))

	a.writeResult(w, r, http.StatusNoContent, nil, err, "delete lead")
}

func (a *API) assignAgent(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.assignAgent")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	var req AssignAgentRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	lead, err := a.service.AssignAgent(ctx, p, chi.URLParam(r, "id"), req.AgentID)

	a.writeResult(w, r, http.StatusOK, lead, err, "assign lead")
}

func (a *API) setCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.setCategory")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	var req SetCategoryRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	lead, err := a.service.SetCategory(ctx, p, chi.URLParam(r, "id"), req.CategoryID)

	a.writeResult(w, r, http.StatusOK, lead, err, "categorise lead")
}

func (a *API) listCategories(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.listCategories")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	categories, err := a.service.ListCategories(ctx, p)
	if err != nil {
		a.logger.Errorf("failed to list categories: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to list categories")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, categories, nil)
}

func (a *API) createCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.createCategory")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	var req CreateCategoryRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	category, err := a.service.CreateCategory(ctx, p, &NewCategory{Name: req.Name, OrganisationID: req.OrganisationID})

	a.writeResult(w, r, http.StatusCreated, category, err, "create category")
}

func (a *API) getCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.getCategory")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	page, size := httptypes.PageParams(r)

	category, err := a.service.GetCategory(ctx, p, chi.URLParam(r, "id"), page, size)
	if err != nil {
		a.writeResult(w, r, http.StatusOK, nil, err, "get category")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, category, &httptypes.Pagination{Page: page, Size: size})
}

func (a *API) deleteCategory(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "leads.API.deleteCategory")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	err := a.service.DeleteCategory(ctx, p, chi.URLParam(r, "id"))

	a.writeResult(w, r, http.StatusNoContent, nil, err, "delete category")
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
