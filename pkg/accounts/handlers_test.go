// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

func newTestRouter(svc ServiceInterface) *chi.Mux {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	mux := chi.NewMux()
	NewAPI(svc, authorization.NewGuard(tracer, monitor, logger), tracer, monitor, logger).RegisterEndpoints(mux)

	return mux
}

func asPrincipal(r *http.Request, p *authorization.Principal) *http.Request {
	if p == nil {
		return r
	}
	return r.WithContext(authorization.WithPrincipal(r.Context(), p))
}

func TestAPI_Signup(t *testing.T) {
	valid := `{"username":"alice","email":"alice@example.com","password":"s3cret-pass","password_confirm":"s3cret-pass","date_of_birth":"1990-04-01"}`

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "created",
			body: valid,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Signup(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in *NewAccount) (*types.Account, error) {
						if in.DateOfBirth == nil || in.DateOfBirth.Year() != 1990 {
							return nil, fmt.Errorf("unexpected date of birth %v", in.DateOfBirth)
						}
						return &types.Account{ID: "acc-1", Username: in.Username}, nil
					},
				)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "passwords differ",
			body:           `{"username":"alice","email":"alice@example.com","password":"s3cret-pass","password_confirm":"other-pass"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate username",
			body: valid,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, httptypes.NewValidationError("username", "is already in use"))
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "email could not be sent",
			body: valid,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(&types.Account{ID: "acc-1"}, fmt.Errorf("%w: relay down", ErrNotificationFailed))
			},
			expectedStatus: http.StatusBadGateway,
		},
		{
			name: "storage failure",
			body: valid,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Signup(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			test.setupMocks(svc)

			req := httptest.NewRequest(http.MethodPost, "/signup/", strings.NewReader(test.body))
			rr := httptest.NewRecorder()

			newTestRouter(svc).ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAPI_Profile(t *testing.T) {
	agent := &authorization.Principal{AccountID: "acc-2", Kind: authorization.KindAgent, TenantID: "profile-1", AgentID: "agent-1"}

	tests := []struct {
		name             string
		method           string
		body             string
		principal        *authorization.Principal
		setupMocks       func(*MockServiceInterface)
		expectedStatus   int
		expectedLocation string
	}{
		{
			name:             "anonymous is sent to login",
			method:           http.MethodGet,
			setupMocks:       func(*MockServiceInterface) {},
			expectedStatus:   http.StatusFound,
			expectedLocation: "/login/?next=%2Fprofile%2F",
		},
		{
			name:      "own profile",
			method:    http.MethodGet,
			principal: agent,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().GetProfile(gomock.Any(), "acc-2").Return(&types.Account{ID: "acc-2"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:      "agent updates own profile",
			method:    http.MethodPatch,
			body:      `{"first_name":"Bob","gender":"male"}`,
			principal: agent,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().UpdateProfile(gomock.Any(), agent, gomock.Any()).DoAndReturn(
					func(_ context.Context, _ *authorization.Principal, u *ProfileUpdate) (*types.Account, error) {
						if u.FirstName == nil || *u.FirstName != "Bob" || u.LastName != nil {
							return nil, errors.New("unexpected update")
						}
						return &types.Account{ID: "acc-2", FirstName: "Bob"}, nil
					},
				)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid gender",
			method:         http.MethodPatch,
			body:           `{"gender":"unknown"}`,
			principal:      agent,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "flags cannot be changed",
			method:         http.MethodPatch,
			body:           `{"is_superuser":true}`,
			principal:      agent,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			test.setupMocks(svc)

			req := asPrincipal(httptest.NewRequest(test.method, "/profile/", strings.NewReader(test.body)), test.principal)
			rr := httptest.NewRecorder()

			newTestRouter(svc).ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d: %s", test.expectedStatus, rr.Code, rr.Body.String())
			}

			if loc := rr.Header().Get("Location"); loc != test.expectedLocation {
				t.Fatalf("expected location %q, got %q", test.expectedLocation, loc)
			}
		})
	}
}

func TestAPI_DeleteAccount(t *testing.T) {
	superuser := &authorization.Principal{AccountID: "root", Kind: authorization.KindSuperuser}
	organisor := &authorization.Principal{AccountID: "acc-1", Kind: authorization.KindOrganisor, TenantID: "profile-1"}

	tests := []struct {
		name           string
		principal      *authorization.Principal
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name:      "superuser deletes",
			principal: superuser,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteAccount(gomock.Any(), superuser, "acc-9").Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:      "missing account",
			principal: superuser,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().DeleteAccount(gomock.Any(), superuser, "acc-9").Return(storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "organisor is redirected",
			principal:      organisor,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			test.setupMocks(svc)

			req := asPrincipal(httptest.NewRequest(http.MethodDelete, "/accounts/acc-9/", nil), test.principal)
			rr := httptest.NewRecorder()

			newTestRouter(svc).ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}
