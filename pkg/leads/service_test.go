// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"
	"errors"
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
)

//go:generate mockgen -build_flags=--mod=mod -package leads -destination ./mock_interfaces.go -source=./interfaces.go

var (
	superuser  = authorization.NewPrincipal(&types.Account{ID: "root", IsSuperuser: true}, &types.Profile{ID: "root-profile", AccountID: "root"}, nil)
	organisor  = &authorization.Principal{AccountID: "acc-1", Kind: authorization.KindOrganisor, TenantID: "org-1"}
	otherOrg   = &authorization.Principal{AccountID: "acc-9", Kind: authorization.KindOrganisor, TenantID: "org-9"}
	agent      = &authorization.Principal{AccountID: "acc-2", Kind: authorization.KindAgent, TenantID: "org-1", AgentID: "agent-1"}
	otherAgent = &authorization.Principal{AccountID: "acc-3", Kind: authorization.KindAgent, TenantID: "org-1", AgentID: "agent-2"}
	nobody     = &authorization.Principal{AccountID: "acc-4", Kind: authorization.KindUnprivileged}

	agentOneID = "agent-1"
	categoryID = "cat-1"
	unknownID  = "missing"
)

func unassignedLead() *types.Lead {
	return &types.Lead{ID: "lead-1", OrganisationID: "org-1", FirstName: "Jane"}
}

func assignedLead() *types.Lead {
	id := agentOneID
	return &types.Lead{ID: "lead-1", OrganisationID: "org-1", AgentID: &id, FirstName: "Jane"}
}

func newTestService(ctrl *gomock.Controller) (*Service, *MockStorageInterface) {
	st := NewMockStorageInterface(ctrl)
	return NewService(st, phone.NewNormalizer("US"), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()), st
}

func echoLead(_ context.Context, l *types.Lead, _ []string) (*types.Lead, error) {
	return l, nil
}

func expectField(t *testing.T, err error, field string) {
	t.Helper()

	var verr *httptypes.ValidationError
	if !errors.As(err, &verr) || verr.Fields[field] == "" {
		t.Fatalf("expected validation error on %s, got %v", field, err)
	}
}

func TestService_ListLeadsUsesCallerScope(t *testing.T) {
	tests := []struct {
		name      string
		principal *authorization.Principal
		expected  authorization.Scope
	}{
		{name: "superuser sees everything", principal: superuser, expected: authorization.AllRows()},
		{name: "organisor sees tenant", principal: organisor, expected: authorization.TenantRows("org-1")},
		{name: "agent sees assigned", principal: agent, expected: authorization.AssignedRows("org-1", "agent-1")},
		{name: "unprivileged sees nothing", principal: nobody, expected: authorization.NoRows()},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, st := newTestService(ctrl)
			filter := types.LeadFilter{Unassigned: true}
			st.EXPECT().ListLeads(gomock.Any(), test.expected, filter, int64(0), int64(0)).Return([]*types.Lead{}, nil)

			if _, err := s.ListLeads(context.Background(), test.principal, filter, 0, 0); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_CreateLead(t *testing.T) {
	tests := []struct {
		name          string
		principal     *authorization.Principal
		input         NewLead
		setupMocks    func(*MockStorageInterface)
		expectedErr   error
		expectedField string
	}{
		{
			name:      "organisor creates in own tenant with agent and category",
			principal: organisor,
			input:     NewLead{FirstName: "Jane", LastName: "Doe", PhoneNumber: "(650) 253-0000", Email: "jane@example.com", AgentID: &agentOneID, CategoryID: &categoryID, OrganisationID: "org-9"},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetAgent(gomock.Any(), "agent-1", authorization.TenantRows("org-1")).Return(&types.Agent{ID: "agent-1", OrganisationID: "org-1"}, nil)
				st.EXPECT().GetCategory(gomock.Any(), "cat-1", authorization.TenantRows("org-1")).Return(&types.Category{ID: "cat-1", OrganisationID: "org-1"}, nil)
				st.EXPECT().CreateLead(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, l *types.Lead) (*types.Lead, error) {
						if l.OrganisationID != "org-1" || l.PhoneNumber != "+16502530000" || *l.AgentID != "agent-1" || *l.CategoryID != "cat-1" {
							return nil, errors.New("unexpected lead")
						}
						return l, nil
					},
				)
			},
		},
		{
			name:      "agent of another tenant",
			principal: organisor,
			input:     NewLead{FirstName: "Jane", LastName: "Doe", PhoneNumber: "(650) 253-0000", Email: "jane@example.com", AgentID: &unknownID},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetAgent(gomock.Any(), "missing", authorization.TenantRows("org-1")).Return(nil, storage.ErrNotFound)
			},
			expectedField: "agent_id",
		},
		{
			name:      "category of another tenant",
			principal: organisor,
			input:     NewLead{FirstName: "Jane", LastName: "Doe", PhoneNumber: "(650) 253-0000", Email: "jane@example.com", CategoryID: &unknownID},
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetCategory(gomock.Any(), "missing", authorization.TenantRows("org-1")).Return(nil, storage.ErrNotFound)
			},
			expectedField: "category_id",
		},
		{
			name:          "invalid phone",
			principal:     organisor,
			input:         NewLead{FirstName: "Jane", LastName: "Doe", PhoneNumber: "12", Email: "jane@example.com"},
			setupMocks:    func(*MockStorageInterface) {},
			expectedField: "phone_number",
		},
		{
			name:          "superuser must name a tenant",
			principal:     superuser,
			input:         NewLead{FirstName: "Jane", LastName: "Doe", PhoneNumber: "(650) 253-0000", Email: "jane@example.com"},
			setupMocks:    func(*MockStorageInterface) {},
			expectedField: "organisation_id",
		},
		{
			name:        "agents cannot create leads",
			principal:   agent,
			input:       NewLead{FirstName: "Jane", LastName: "Doe", PhoneNumber: "(650) 253-0000", Email: "jane@example.com"},
			setupMocks:  func(*MockStorageInterface) {},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, st := newTestService(ctrl)
			test.setupMocks(st)

			in := test.input
			_, err := s.CreateLead(context.Background(), test.principal, &in)

			if test.expectedField != "" {
				expectField(t, err, test.expectedField)
				return
			}

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestService_UpdateLead(t *testing.T) {
	name := "Janet"

	tests := []struct {
		name        string
		principal   *authorization.Principal
		lead        *types.Lead
		scope       authorization.Scope
		expectedErr error
	}{
		{name: "organisor", principal: organisor, lead: unassignedLead(), scope: authorization.TenantRows("org-1")},
		{name: "assigned agent", principal: agent, lead: assignedLead(), scope: authorization.AssignedRows("org-1", "agent-1")},
		{name: "superuser", principal: superuser, lead: unassignedLead(), scope: authorization.AllRows()},
		{name: "other agent", principal: otherAgent, scope: authorization.AssignedRows("org-1", "agent-2"), expectedErr: storage.ErrNotFound},
		{name: "other tenant", principal: otherOrg, scope: authorization.TenantRows("org-9"), expectedErr: storage.ErrNotFound},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, st := newTestService(ctrl)

			if test.lead != nil {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", test.scope).Return(test.lead, nil)
				st.EXPECT().UpdateLead(gomock.Any(), gomock.Any(), []string{"first_name"}).DoAndReturn(echoLead)
			} else {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", test.scope).Return(nil, storage.ErrNotFound)
			}

			got, err := s.UpdateLead(context.Background(), test.principal, "lead-1", &LeadUpdate{FirstName: &name})

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}

			if err == nil && got.FirstName != "Janet" {
				t.Fatalf("expected updated name, got %s", got.FirstName)
			}
		})
	}
}

func TestService_DeleteLeadDeniedToAgents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, st := newTestService(ctrl)
	st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.AssignedRows("org-1", "agent-1")).Return(assignedLead(), nil)

	if err := s.DeleteLead(context.Background(), agent, "lead-1"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestService_DeleteLead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, st := newTestService(ctrl)
	st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.TenantRows("org-1")).Return(unassignedLead(), nil)
	st.EXPECT().DeleteLead(gomock.Any(), "lead-1").Return(nil)

	if err := s.DeleteLead(context.Background(), organisor, "lead-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestService_AssignAgent(t *testing.T) {
	tests := []struct {
		name          string
		principal     *authorization.Principal
		agentID       *string
		setupMocks    func(*MockStorageInterface)
		expectedAgent *string
		expectedErr   error
		expectedField string
	}{
		{
			name:      "assign within tenant",
			principal: organisor,
			agentID:   &agentOneID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.TenantRows("org-1")).Return(unassignedLead(), nil)
				st.EXPECT().GetAgent(gomock.Any(), "agent-1", authorization.TenantRows("org-1")).Return(&types.Agent{ID: "agent-1", OrganisationID: "org-1"}, nil)
				st.EXPECT().UpdateLead(gomock.Any(), gomock.Any(), []string{"agent_id"}).DoAndReturn(echoLead)
			},
			expectedAgent: &agentOneID,
		},
		{
			name:      "unassign",
			principal: organisor,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.TenantRows("org-1")).Return(assignedLead(), nil)
				st.EXPECT().UpdateLead(gomock.Any(), gomock.Any(), []string{"agent_id"}).DoAndReturn(echoLead)
			},
		},
		{
			name:      "superuser cannot cross tenants",
			principal: superuser,
			agentID:   &unknownID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.AllRows()).Return(unassignedLead(), nil)
				st.EXPECT().GetAgent(gomock.Any(), "missing", authorization.TenantRows("org-1")).Return(nil, storage.ErrNotFound)
			},
			expectedField: "agent_id",
		},
		{
			name:      "assigned agent cannot reassign",
			principal: agent,
			agentID:   &agentOneID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.AssignedRows("org-1", "agent-1")).Return(assignedLead(), nil)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, st := newTestService(ctrl)
			test.setupMocks(st)

			got, err := s.AssignAgent(context.Background(), test.principal, "lead-1", test.agentID)

			if test.expectedField != "" {
				expectField(t, err, test.expectedField)
				return
			}

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}

			if err != nil {
				return
			}

			if (got.AgentID == nil) != (test.expectedAgent == nil) {
				t.Fatalf("expected agent %v, got %v", test.expectedAgent, got.AgentID)
			}

			if got.AgentID != nil && *got.AgentID != *test.expectedAgent {
				t.Fatalf("expected agent %s, got %s", *test.expectedAgent, *got.AgentID)
			}
		})
	}
}

func TestService_SetCategory(t *testing.T) {
	tests := []struct {
		name          string
		principal     *authorization.Principal
		categoryID    *string
		setupMocks    func(*MockStorageInterface)
		expectedErr   error
		expectedField string
	}{
		{
			name:       "assigned agent categorises",
			principal:  agent,
			categoryID: &categoryID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.AssignedRows("org-1", "agent-1")).Return(assignedLead(), nil)
				st.EXPECT().GetCategory(gomock.Any(), "cat-1", authorization.TenantRows("org-1")).Return(&types.Category{ID: "cat-1", OrganisationID: "org-1"}, nil)
				st.EXPECT().UpdateLead(gomock.Any(), gomock.Any(), []string{"category_id"}).DoAndReturn(echoLead)
			},
		},
		{
			name:      "clear category",
			principal: organisor,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.TenantRows("org-1")).Return(unassignedLead(), nil)
				st.EXPECT().UpdateLead(gomock.Any(), gomock.Any(), []string{"category_id"}).DoAndReturn(echoLead)
			},
		},
		{
			name:       "category of another tenant",
			principal:  organisor,
			categoryID: &unknownID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.TenantRows("org-1")).Return(unassignedLead(), nil)
				st.EXPECT().GetCategory(gomock.Any(), "missing", authorization.TenantRows("org-1")).Return(nil, storage.ErrNotFound)
			},
			expectedField: "category_id",
		},
		{
			name:       "unassigned lead is invisible to agents",
			principal:  otherAgent,
			categoryID: &categoryID,
			setupMocks: func(st *MockStorageInterface) {
				st.EXPECT().GetLead(gomock.Any(), "lead-1", authorization.AssignedRows("org-1", "agent-2")).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, st := newTestService(ctrl)
			test.setupMocks(st)

			_, err := s.SetCategory(context.Background(), test.principal, "lead-1", test.categoryID)

			if test.expectedField != "" {
				expectField(t, err, test.expectedField)
				return
			}

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}

func TestService_Categories(t *testing.T) {
	t.Run("detail lists visible leads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, st := newTestService(ctrl)
		st.EXPECT().GetCategory(gomock.Any(), "cat-1", authorization.TenantRows("org-1")).Return(&types.Category{ID: "cat-1", OrganisationID: "org-1"}, nil)
		st.EXPECT().ListLeads(gomock.Any(), authorization.AssignedRows("org-1", "agent-1"), types.LeadFilter{CategoryID: "cat-1"}, int64(2), int64(25)).Return([]*types.Lead{assignedLead()}, nil)

		detail, err := s.GetCategory(context.Background(), agent, "cat-1", 2, 25)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if detail.ID != "cat-1" || len(detail.Leads) != 1 {
			t.Fatalf("unexpected detail %+v", detail)
		}
	})

	t.Run("superuser must name a tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, _ := newTestService(ctrl)

		_, err := s.CreateCategory(context.Background(), superuser, &NewCategory{Name: "Contacted"})
		expectField(t, err, "organisation_id")
	})

	t.Run("superuser creates in the named tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, st := newTestService(ctrl)
		st.EXPECT().CreateCategory(gomock.Any(), &types.Category{OrganisationID: "org-9", Name: "Contacted"}).Return(&types.Category{ID: "cat-2", OrganisationID: "org-9", Name: "Contacted"}, nil)

		if _, err := s.CreateCategory(context.Background(), superuser, &NewCategory{Name: "Contacted", OrganisationID: "org-9"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, st := newTestService(ctrl)
		st.EXPECT().CreateCategory(gomock.Any(), &types.Category{OrganisationID: "org-1", Name: "Contacted"}).Return(nil, &storage.DuplicateKeyError{Field: "name"})

		_, err := s.CreateCategory(context.Background(), organisor, &NewCategory{Name: " Contacted "})
		expectField(t, err, "name")
	})

	t.Run("agents cannot delete categories", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, st := newTestService(ctrl)
		st.EXPECT().GetCategory(gomock.Any(), "cat-1", authorization.TenantRows("org-1")).Return(&types.Category{ID: "cat-1", OrganisationID: "org-1"}, nil)

		if err := s.DeleteCategory(context.Background(), agent, "cat-1"); !errors.Is(err, storage.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("organisor deletes own category", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		s, st := newTestService(ctrl)
		st.EXPECT().GetCategory(gomock.Any(), "cat-1", authorization.TenantRows("org-1")).Return(&types.Category{ID: "cat-1", OrganisationID: "org-1"}, nil)
		st.EXPECT().DeleteCategory(gomock.Any(), "cat-1").Return(nil)

		if err := s.DeleteCategory(context.Background(), organisor, "cat-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
