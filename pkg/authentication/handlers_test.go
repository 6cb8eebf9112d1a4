// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

func TestAPI_Login(t *testing.T) {
	expiresAt := time.Now().Add(time.Hour)

	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockAuthenticatorInterface, *MockSessionManagerInterface)
		expectedStatus int
		expectCookie   bool
		expectedMsg    string
	}{
		{
			name: "success",
			body: `{"identifier":"alice","password":"correct-horse"}`,
			setupMocks: func(a *MockAuthenticatorInterface, s *MockSessionManagerInterface) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "correct-horse").Return(&types.Account{ID: "acc-1"}, nil)
				s.EXPECT().IssueToken(gomock.Any(), "acc-1").Return("signed-token", expiresAt, nil)
			},
			expectedStatus: http.StatusOK,
			expectCookie:   true,
		},
		{
			name: "bad credentials are uniform",
			body: `{"identifier":"alice","password":"nope"}`,
			setupMocks: func(a *MockAuthenticatorInterface, _ *MockSessionManagerInterface) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "nope").Return(nil, ErrAuthenticationFailed)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedMsg:    "invalid credentials",
		},
		{
			name:           "missing password",
			body:           `{"identifier":"alice"}`,
			setupMocks:     func(*MockAuthenticatorInterface, *MockSessionManagerInterface) {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request",
		},
		{
			name: "backend failure",
			body: `{"identifier":"alice","password":"x"}`,
			setupMocks: func(a *MockAuthenticatorInterface, _ *MockSessionManagerInterface) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "x").Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "failed to authenticate",
		},
		{
			name: "session signing failure",
			body: `{"identifier":"alice","password":"correct-horse"}`,
			setupMocks: func(a *MockAuthenticatorInterface, s *MockSessionManagerInterface) {
				a.EXPECT().Authenticate(gomock.Any(), "alice", "correct-horse").Return(&types.Account{ID: "acc-1"}, nil)
				s.EXPECT().IssueToken(gomock.Any(), "acc-1").Return("", time.Time{}, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "failed to authenticate",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAuthenticator := NewMockAuthenticatorInterface(ctrl)
			mockSessions := NewMockSessionManagerInterface(ctrl)
			test.setupMocks(mockAuthenticator, mockSessions)

			mux := chi.NewMux()
			NewAPI(mockAuthenticator, mockSessions, true, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/login/", strings.NewReader(test.body))
			rr := httptest.NewRecorder()

			mux.ServeHTTP(rr, req)

			if rr.Code != test.expectedStatus {
				t.Fatalf("expected status %d, got %d", test.expectedStatus, rr.Code)
			}

			var cookie *http.Cookie
			for _, c := range rr.Result().Cookies() {
				if c.Name == SessionCookieName {
					cookie = c
				}
			}

			if test.expectCookie {
				if cookie == nil || cookie.Value != "signed-token" || !cookie.HttpOnly || !cookie.Secure {
					t.Fatalf("expected secure http-only session cookie, got %+v", cookie)
				}
				return
			}

			if cookie != nil {
				t.Fatalf("unexpected session cookie %+v", cookie)
			}

			var body map[string]any
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("failed to decode body: %v", err)
			}

			if body["message"] != test.expectedMsg {
				t.Fatalf("expected message %q, got %v", test.expectedMsg, body["message"])
			}
		})
	}
}

func TestAPI_Logout(t *testing.T) {
	mux := chi.NewMux()
	NewAPI(nil, nil, false, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	req := httptest.NewRequest(http.MethodPost, "/logout/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "signed-token"})
	rr := httptest.NewRecorder()

	mux.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != SessionCookieName || cookies[0].MaxAge >= 0 || cookies[0].Value != "" {
		t.Fatalf("expected session cookie to be cleared, got %+v", cookies)
	}
}
