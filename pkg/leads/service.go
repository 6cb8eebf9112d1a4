// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

type NewLead struct {
	FirstName   string
	LastName    string
	Age         int
	Description string
	PhoneNumber string
	Email       string
	AgentID     *string
	CategoryID  *string

	// OrganisationID is only honoured for superusers.
	OrganisationID string
}

// LeadUpdate holds the detail fields of a lead, nil means unchanged.
// Assignment and categorisation have their own operations.
type LeadUpdate struct {
	FirstName   *string
	LastName    *string
	Age         *int
	Description *string
	PhoneNumber *string
	Email       *string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage StorageInterface
	phones  PhoneNormalizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func tenantFor(p *authorization.Principal, requested string) (string, error) {
	organisationID := authorization.CreationTenant(p, requested)
	if organisationID == "" {
		return "", httptypes.NewValidationError("organisation_id", "this field is required")
	}

	return organisationID, nil
}

func (s *Service) ListLeads(ctx context.Context, p *authorization.Principal, filter types.LeadFilter, page, size int64) ([]*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.ListLeads")
	defer span.End()

	return s.storage.ListLeads(ctx, authorization.LeadScope(p), filter, page, size)
}

func (s *Service) GetLead(ctx context.Context, p *authorization.Principal, id string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.GetLead")
	defer span.End()

	return s.storage.GetLead(ctx, id, authorization.LeadScope(p))
}

func (s *Service) CreateLead(ctx context.Context, p *authorization.Principal, in *NewLead) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.CreateLead")
	defer span.End()

	if !authorization.CanCreateLead(p) {
		return nil, storage.ErrNotFound
	}

	organisationID, err := tenantFor(p, in.OrganisationID)
	if err != nil {
		return nil, err
	}

	phone, err := s.phones.Normalize(in.PhoneNumber)
	if err != nil {
		return nil, httptypes.NewValidationError("phone_number", "must be a valid phone number")
	}

	lead := &types.Lead{
		OrganisationID: organisationID,
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		Age:            in.Age,
		Description:    in.Description,
		PhoneNumber:    phone,
		Email:          in.Email,
	}

	if in.AgentID != nil {
		agent, err := s.agentInTenant(ctx, *in.AgentID, organisationID)
		if err != nil {
			return nil, err
		}
		if !authorization.CanAssignLead(p, lead, agent) {
			return nil, httptypes.NewValidationError("agent_id", "does not exist")
		}
		lead.AgentID = &agent.ID
	}

	if in.CategoryID != nil {
		category, err := s.categoryInTenant(ctx, *in.CategoryID, organisationID)
		if err != nil {
			return nil, err
		}
		lead.CategoryID = &category.ID
	}

	created, err := s.storage.CreateLead(ctx, lead)
	if errors.Is(err, storage.ErrForeignKeyViolation) {
		return nil, httptypes.NewValidationError("organisation_id", "does not exist")
	}

	if err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	return created, nil
}

func (s *Service) agentInTenant(ctx context.Context, agentID, organisationID string) (*types.Agent, error) {
	agent, err := s.storage.GetAgent(ctx, agentID, authorization.TenantRows(organisationID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, httptypes.NewValidationError("agent_id", "does not exist")
	}
	return agent, err
}

func (s *Service) categoryInTenant(ctx context.Context, categoryID, organisationID string) (*types.Category, error) {
	category, err := s.storage.GetCategory(ctx, categoryID, authorization.TenantRows(organisationID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, httptypes.NewValidationError("category_id", "does not exist")
	}
	return category, err
}

// mutableLead fetches a lead through the caller's scope and applies allowed.
// Anything the caller may not touch is reported as not found.
func (s *Service) mutableLead(ctx context.Context, p *authorization.Principal, id string, allowed func(*authorization.Principal, *types.Lead) bool) (*types.Lead, error) {
	lead, err := s.storage.GetLead(ctx, id, authorization.LeadScope(p))
	if err != nil {
		return nil, err
	}

	if !allowed(p, lead) {
		return nil, storage.ErrNotFound
	}

	return lead, nil
}

func (s *Service) UpdateLead(ctx context.Context, p *authorization.Principal, id string, update *LeadUpdate) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.UpdateLead")
	defer span.End()

	lead, err := s.mutableLead(ctx, p, id, authorization.CanMutateLead)
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0)

	if update.FirstName != nil {
		lead.FirstName = *update.FirstName
		paths = append(paths, "first_name")
	}

	if update.LastName != nil {
		lead.LastName = *update.LastName
		paths = append(paths, "last_name")
	}

	if update.Age != nil {
		lead.Age = *update.Age
		paths = append(paths, "age")
	}

	if update.Description != nil {
		lead.Description = *update.Description
		paths = append(paths, "description")
	}

	if update.PhoneNumber != nil {
		phone, err := s.phones.Normalize(*update.PhoneNumber)
		if err != nil {
			return nil, httptypes.NewValidationError("phone_number", "must be a valid phone number")
		}
		lead.PhoneNumber = phone
		paths = append(paths, "phone_number")
	}

	if update.Email != nil {
		lead.Email = *update.Email
		paths = append(paths, "email")
	}

	updated, err := s.storage.UpdateLead(ctx, lead, paths)
	if err != nil {
		return nil, fmt.Errorf("failed to update lead: %w", err)
	}

	return updated, nil
}

func (s *Service) DeleteLead(ctx context.Context, p *authorization.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "leads.Service.DeleteLead")
	defer span.End()

	lead, err := s.mutableLead(ctx, p, id, authorization.CanDeleteLead)
	if err != nil {
		return err
	}

	if err := s.storage.DeleteLead(ctx, lead.ID); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	return nil
}

// AssignAgent assigns the lead to an agent of its own tenant, or unassigns it
// when agentID is nil.
func (s *Service) AssignAgent(ctx context.Context, p *authorization.Principal, id string, agentID *string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.AssignAgent")
	defer span.End()

	lead, err := s.mutableLead(ctx, p, id, func(p *authorization.Principal, l *types.Lead) bool {
		return authorization.CanAssignLead(p, l, nil)
	})
	if err != nil {
		return nil, err
	}

	var agent *types.Agent
	if agentID != nil {
		if agent, err = s.agentInTenant(ctx, *agentID, lead.OrganisationID); err != nil {
			return nil, err
		}
	}

	if !authorization.CanAssignLead(p, lead, agent) {
		return nil, httptypes.NewValidationError("agent_id", "does not exist")
	}

	lead.AgentID = nil
	if agent != nil {
		lead.AgentID = &agent.ID
	}

	updated, err := s.storage.UpdateLead(ctx, lead, []string{"agent_id"})
	if err != nil {
		return nil, fmt.Errorf("failed to assign lead: %w", err)
	}

	return updated, nil
}

// SetCategory files the lead under a category of its own tenant, or clears
// the category when categoryID is nil. Assigned agents may categorise their
// leads.
func (s *Service) SetCategory(ctx context.Context, p *authorization.Principal, id string, categoryID *string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.SetCategory")
	defer span.End()

	lead, err := s.mutableLead(ctx, p, id, authorization.CanMutateLead)
	if err != nil {
		return nil, err
	}

	var category *types.Category
	if categoryID != nil {
		if category, err = s.categoryInTenant(ctx, *categoryID, lead.OrganisationID); err != nil {
			return nil, err
		}
	}

	if !authorization.CanSetLeadCategory(p, lead, category) {
		return nil, httptypes.NewValidationError("category_id", "does not exist")
	}

	lead.CategoryID = nil
	if category != nil {
		lead.CategoryID = &category.ID
	}

	updated, err := s.storage.UpdateLead(ctx, lead, []string{"category_id"})
	if err != nil {
		return nil, fmt.Errorf("failed to categorise lead: %w", err)
	}

	return updated, nil
}

func NewService(
	storage StorageInterface,
	phones PhoneNormalizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.phones = phones

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
