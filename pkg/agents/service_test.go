// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/phone"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
	"github.com/canonical/lead-service/pkg/accounts"
)

//go:generate mockgen -build_flags=--mod=mod -package agents -destination ./mock_interfaces.go -source=./interfaces.go

var (
	superuser = authorization.NewPrincipal(&types.Account{ID: "root", IsSuperuser: true}, &types.Profile{ID: "root-profile", AccountID: "root"}, nil)
	organisor = &authorization.Principal{AccountID: "acc-1", Kind: authorization.KindOrganisor, TenantID: "org-1"}
	otherOrg  = &authorization.Principal{AccountID: "acc-9", Kind: authorization.KindOrganisor, TenantID: "org-9"}
	agent     = &authorization.Principal{AccountID: "acc-2", Kind: authorization.KindAgent, TenantID: "org-1", AgentID: "agent-1"}
)

type testMocks struct {
	storage  *MockStorageInterface
	tx       *MockTxRunnerInterface
	accounts *MockAccountsInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, testMocks) {
	m := testMocks{
		storage:  NewMockStorageInterface(ctrl),
		tx:       NewMockTxRunnerInterface(ctrl),
		accounts: NewMockAccountsInterface(ctrl),
	}

	s := NewService(m.storage, m.tx, m.accounts, phone.NewNormalizer("US"), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	return s, m
}

func runInTx(tx *MockTxRunnerInterface) {
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func strPtr(s string) *string {
	return &s
}

func TestService_ListAgentsUsesCallerScope(t *testing.T) {
	tests := []struct {
		name      string
		principal *authorization.Principal
		expected  authorization.Scope
	}{
		{name: "superuser", principal: superuser, expected: authorization.AllRows()},
		{name: "organisor", principal: organisor, expected: authorization.TenantRows("org-1")},
		{name: "agent", principal: agent, expected: authorization.NoRows()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			m.storage.EXPECT().ListAgents(gomock.Any(), test.expected, int64(1), int64(20)).Return([]*types.Agent{}, nil)

			if _, err := s.ListAgents(context.Background(), test.principal, 1, 20); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_GetAgentLetsAgentSeeItself(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)
	m.storage.EXPECT().GetAgent(gomock.Any(), "agent-1", authorization.AssignedRows("org-1", "agent-1")).Return(&types.Agent{ID: "agent-1"}, nil)

	got, err := s.GetAgent(context.Background(), agent, "agent-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.ID != "agent-1" {
		t.Fatalf("expected agent-1, got %s", got.ID)
	}
}

func TestService_CreateAgent(t *testing.T) {
	registration := &accounts.Registration{
		Account:  &types.Account{ID: "acc-5", Username: "bob", IsAgent: true},
		Profile:  &types.Profile{ID: "profile-5", AccountID: "acc-5"},
		RawToken: "raw-token",
	}

	tests := []struct {
		name          string
		principal     *authorization.Principal
		input         NewAgent
		setupMocks    func(testMocks)
		expectedOrg   string
		expectedErr   error
		expectedField string
	}{
		{
			name:      "organisor adds to own tenant",
			principal: organisor,
			input:     NewAgent{Username: "bob", Email: "bob@example.com", Password: "s3cret-pass", OrganisationID: "org-9"},
			setupMocks: func(m testMocks) {
				runInTx(m.tx)
				m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, in *accounts.NewAccount) (*accounts.Registration, error) {
						if !in.IsAgent || in.IsOrganisor {
							return nil, fmt.Errorf("unexpected role flags %+v", in)
						}
						return registration, nil
					},
				)
				m.storage.EXPECT().CreateAgent(gomock.Any(), "acc-5", "org-1").Return(&types.Agent{ID: "agent-5", AccountID: "acc-5", OrganisationID: "org-1"}, nil)
				m.accounts.EXPECT().NotifyRegistration(gomock.Any(), registration).Return(nil)
			},
			expectedOrg: "org-1",
		},
		{
			name:      "superuser picks the tenant",
			principal: superuser,
			input:     NewAgent{Username: "bob", Email: "bob@example.com", Password: "s3cret-pass", OrganisationID: "org-9"},
			setupMocks: func(m testMocks) {
				runInTx(m.tx)
				m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(registration, nil)
				m.storage.EXPECT().CreateAgent(gomock.Any(), "acc-5", "org-9").Return(&types.Agent{ID: "agent-5", AccountID: "acc-5", OrganisationID: "org-9"}, nil)
				m.accounts.EXPECT().NotifyRegistration(gomock.Any(), registration).Return(nil)
			},
			expectedOrg: "org-9",
		},
		{
			name:          "superuser without tenant",
			principal:     superuser,
			input:         NewAgent{Username: "bob", Email: "bob@example.com", Password: "s3cret-pass"},
			setupMocks:    func(testMocks) {},
			expectedField: "organisation_id",
		},
		{
			name:      "unknown tenant",
			principal: superuser,
			input:     NewAgent{Username: "bob", Email: "bob@example.com", Password: "s3cret-pass", OrganisationID: "org-404"},
			setupMocks: func(m testMocks) {
				runInTx(m.tx)
				m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(registration, nil)
				m.storage.EXPECT().CreateAgent(gomock.Any(), "acc-5", "org-404").Return(nil, fmt.Errorf("failed to insert agent: %w", storage.ErrForeignKeyViolation))
			},
			expectedField: "organisation_id",
		},
		{
			name:        "agents cannot create agents",
			principal:   agent,
			input:       NewAgent{Username: "bob", Email: "bob@example.com", Password: "s3cret-pass"},
			setupMocks:  func(testMocks) {},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:      "notification failure keeps the agent",
			principal: organisor,
			input:     NewAgent{Username: "bob", Email: "bob@example.com", Password: "s3cret-pass"},
			setupMocks: func(m testMocks) {
				runInTx(m.tx)
				m.accounts.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(registration, nil)
				m.storage.EXPECT().CreateAgent(gomock.Any(), "acc-5", "org-1").Return(&types.Agent{ID: "agent-5", AccountID: "acc-5", OrganisationID: "org-1"}, nil)
				m.accounts.EXPECT().NotifyRegistration(gomock.Any(), registration).Return(fmt.Errorf("%w: relay down", accounts.ErrNotificationFailed))
			},
			expectedOrg: "org-1",
			expectedErr: accounts.ErrNotificationFailed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(m)

			in := test.input
			got, err := s.CreateAgent(context.Background(), test.principal, &in)

			if test.expectedField != "" {
				var verr *httptypes.ValidationError
				if !errors.As(err, &verr) || verr.Fields[test.expectedField] == "" {
					t.Fatalf("expected validation error on %s, got %v", test.expectedField, err)
				}
				return
			}

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}

			if test.expectedOrg == "" {
				return
			}

			if got.OrganisationID != test.expectedOrg {
				t.Fatalf("expected organisation %s, got %s", test.expectedOrg, got.OrganisationID)
			}

			if got.Account == nil || got.Account.ID != "acc-5" {
				t.Fatalf("expected agent account to be attached, got %+v", got.Account)
			}
		})
	}
}

func TestService_UpdateAgent(t *testing.T) {
	tests := []struct {
		name        string
		principal   *authorization.Principal
		setupMocks  func(testMocks)
		expectedErr error
	}{
		{
			name:      "organisor renames own agent",
			principal: organisor,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAgent(gomock.Any(), "agent-1", authorization.TenantRows("org-1")).Return(&types.Agent{ID: "agent-1", AccountID: "acc-2", OrganisationID: "org-1", Account: &types.Account{ID: "acc-2"}}, nil)
				m.storage.EXPECT().UpdateAccount(gomock.Any(), gomock.Any(), []string{"phone_number", "first_name"}).DoAndReturn(
					func(_ context.Context, a *types.Account, _ []string) (*types.Account, error) {
						if a.PhoneNumber == nil || *a.PhoneNumber != "+16502530000" {
							return nil, fmt.Errorf("expected normalized phone, got %v", a.PhoneNumber)
						}
						return a, nil
					},
				)
			},
		},
		{
			name:      "other tenant sees nothing",
			principal: otherOrg,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAgent(gomock.Any(), "agent-1", authorization.TenantRows("org-9")).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:      "agent cannot edit own agent record",
			principal: agent,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAgent(gomock.Any(), "agent-1", authorization.NoRows()).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(m)

			_, err := s.UpdateAgent(context.Background(), test.principal, "agent-1", &AgentUpdate{FirstName: strPtr("Bob"), PhoneNumber: strPtr("(650) 253-0000")})

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestService_DeleteAgentRemovesAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.storage.EXPECT().GetAgent(gomock.Any(), "agent-1", authorization.TenantRows("org-1")).Return(&types.Agent{ID: "agent-1", AccountID: "acc-2", OrganisationID: "org-1"}, nil)
	m.storage.EXPECT().DeleteAccount(gomock.Any(), "acc-2").Return(nil)

	if err := s.DeleteAgent(context.Background(), organisor, "agent-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
