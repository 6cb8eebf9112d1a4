// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

func newTestRouter(svc ServiceInterface) *chi.Mux {
	mux := chi.NewMux()
	NewAPI(svc, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)
	return mux
}

func TestAPI_Verify(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedStatus  int
		expectedMessage string
	}{
		{name: "verified", expectedStatus: http.StatusOK},
		{name: "unknown token", err: ErrTokenNotFound, expectedStatus: http.StatusBadRequest, expectedMessage: ErrVerificationFailed.Error()},
		{name: "used token", err: ErrTokenAlreadyUsed, expectedStatus: http.StatusBadRequest, expectedMessage: ErrVerificationFailed.Error()},
		{name: "expired token", err: ErrTokenExpired, expectedStatus: http.StatusBadRequest, expectedMessage: ErrVerificationFailed.Error()},
		{name: "storage failure", err: errors.New("db down"), expectedStatus: http.StatusInternalServerError, expectedMessage: "failed to verify email"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc := NewMockServiceInterface(ctrl)
			if test.err != nil {
				svc.EXPECT().ConsumeToken(gomock.Any(), rawToken).Return(nil, test.err)
			} else {
				svc.EXPECT().ConsumeToken(gomock.Any(), rawToken).Return(&types.Account{ID: "acc-1"}, nil)
			}

			req := httptest.NewRequest(http.MethodGet, "/verify-email/"+rawToken+"/", nil)
			rr := httptest.NewRecorder()

			newTestRouter(svc).ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			body := map[string]any{}
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if test.expectedMessage == "" {
				if body["status"] != "verified" {
					t.Fatalf("expected verified status, got %v", body)
				}
				return
			}

			if body["message"] != test.expectedMessage {
				t.Fatalf("expected message %q, got %v", test.expectedMessage, body["message"])
			}
		})
	}
}

func TestAPI_Resend(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "accepted",
			body: `{"email":"alice@example.com"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Resend(gomock.Any(), "alice@example.com").Return(nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "failure is not revealed",
			body: `{"email":"alice@example.com"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().Resend(gomock.Any(), "alice@example.com").Return(errors.New("relay down"))
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "malformed email",
			body:           `{"email":"alice"}`,
			setupMocks:     func(*MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "malformed body",
			body:           `{"email":`,
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

			req := httptest.NewRequest(http.MethodPost, "/verify-email/resend/", strings.NewReader(test.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			newTestRouter(svc).ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}
		})
	}
}
