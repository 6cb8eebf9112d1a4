// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
)

type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=150"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	PhoneNumber     string `json:"phone_number,omitempty"`
	FirstName       string `json:"first_name,omitempty" validate:"max=150"`
	LastName        string `json:"last_name,omitempty" validate:"max=150"`
	DateOfBirth     string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender          string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
}

type ProfileRequest struct {
	Username    *string `json:"username,omitempty" validate:"omitempty,min=3,max=150"`
	Password    *string `json:"password,omitempty" validate:"omitempty,min=8,max=72"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	FirstName   *string `json:"first_name,omitempty" validate:"omitempty,max=150"`
	LastName    *string `json:"last_name,omitempty" validate:"omitempty,max=150"`
	DateOfBirth *string `json:"date_of_birth,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,url"`
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
	mux.Post("/signup/", a.signup)

	mux.Group(func(r chi.Router) {
		r.Use(a.guard.Require(authorization.IsAuthenticated))
		r.Get("/profile/", a.getProfile)
		r.Patch("/profile/", a.updateProfile)
	})

	mux.With(a.guard.Require(authorization.IsSuperuser)).Delete("/accounts/{id}/", a.deleteAccount)
}

func (a *API) signup(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.signup")
	defer span.End()

	var req SignupRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	in := &NewAccount{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
	}

	if req.DateOfBirth != "" {
		dob, _ := time.Parse(dateLayout, req.DateOfBirth)
		in.DateOfBirth = &dob
	}

	account, err := a.service.Signup(ctx, in)

	var verr *httptypes.ValidationError
	switch {
	case err == nil:
		httptypes.WriteJSON(w, http.StatusCreated, httptypes.Response{
			Data:    account,
			Message: "check your inbox to verify your email address",
			Status:  http.StatusCreated,
		})
	case errors.As(err, &verr):
		httptypes.WriteValidationError(w, verr)
	case errors.Is(err, ErrNotificationFailed):
		httptypes.WriteError(w, http.StatusBadGateway, ErrNotificationFailed.Error())
	default:
		a.logger.Errorf("failed to sign up: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to create account")
	}
}

func (a *API) getProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.getProfile")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	account, err := a.service.GetProfile(ctx, p.AccountID)
	if err != nil {
		a.logger.Errorf("failed to get profile: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	httptypes.WriteResponse(w, http.StatusOK, account, nil)
}

func (a *API) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.updateProfile")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	var req ProfileRequest
	if verr := httptypes.DecodeAndValidate(r, &req, a.validate); verr != nil {
		httptypes.WriteValidationError(w, verr)
		return
	}

	update := &ProfileUpdate{
		Username:    req.Username,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Gender:      req.Gender,
		AvatarURL:   req.AvatarURL,
	}

	if req.DateOfBirth != nil {
		dob, _ := time.Parse(dateLayout, *req.DateOfBirth)
		update.DateOfBirth = &dob
	}

	account, err := a.service.UpdateProfile(ctx, p, update)

	var verr *httptypes.ValidationError
	switch {
	case err == nil:
		httptypes.WriteResponse(w, http.StatusOK, account, nil)
	case errors.As(err, &verr):
		httptypes.WriteValidationError(w, verr)
	case errors.Is(err, storage.ErrNotFound):
		authorization.Respond(w, r, authorization.NotFound())
	default:
		a.logger.Errorf("failed to update profile: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to update profile")
	}
}

func (a *API) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "accounts.API.deleteAccount")
	defer span.End()

	p, _ := authorization.PrincipalFromContext(ctx)

	err := a.service.DeleteAccount(ctx, p, chi.URLParam(r, "id"))

	switch {
	case err == nil:
		w.WriteHeader(http.StatusNoContent)
	case errors.Is(err, storage.ErrNotFound):
		authorization.Respond(w, r, authorization.NotFound())
	default:
		a.logger.Errorf("failed to delete account: %v", err)
		httptypes.WriteError(w, http.StatusInternalServerError, "failed to delete account")
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
