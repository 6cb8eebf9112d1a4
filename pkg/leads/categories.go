// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package leads

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/types"
)

type NewCategory struct {
	Name string

	// OrganisationID is only honoured for superusers.
	OrganisationID string
}

// CategoryDetail is a category with the leads filed under it that the
// caller can see.
type CategoryDetail struct {
	*types.Category
	Leads []*types.Lead `json:"leads"`
}

func (s *Service) ListCategories(ctx context.Context, p *authorization.Principal) ([]*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.ListCategories")
	defer span.End()

	return s.storage.ListCategories(ctx, authorization.CategoryScope(p))
}

// GetCategory returns the category with one page of its visible leads.
func (s *Service) GetCategory(ctx context.Context, p *authorization.Principal, id string, page, size int64) (*CategoryDetail, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.GetCategory")
	defer span.End()

	category, err := s.storage.GetCategory(ctx, id, authorization.CategoryScope(p))
	if err != nil {
		return nil, err
	}

	leads, err := s.storage.ListLeads(ctx, authorization.LeadScope(p), types.LeadFilter{CategoryID: category.ID}, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to list category leads: %w", err)
	}

	return &CategoryDetail{Category: category, Leads: leads}, nil
}

func (s *Service) CreateCategory(ctx context.Context, p *authorization.Principal, in *NewCategory) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "leads.Service.CreateCategory")
	defer span.End()

	if !authorization.CanCreateCategory(p) {
		return nil, storage.ErrNotFound
	}

	organisationID, err := tenantFor(p, in.OrganisationID)
	if err != nil {
		return nil, err
	}

	created, err := s.storage.CreateCategory(ctx, &types.Category{
		OrganisationID: organisationID,
		Name:           strings.TrimSpace(in.Name),
	})

	switch {
	case err == nil:
		return created, nil
	case errors.Is(err, storage.ErrDuplicateKey):
		return nil, httptypes.NewValidationError("name", "is already in use")
	case errors.Is(err, storage.ErrForeignKeyViolation):
		return nil, httptypes.NewValidationError("organisation_id", "does not exist")
	default:
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
}

// DeleteCategory removes a category; its leads become uncategorised.
func (s *Service) DeleteCategory(ctx context.Context, p *authorization.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "leads.Service.DeleteCategory")
	defer span.End()

	category, err := s.storage.GetCategory(ctx, id, authorization.CategoryScope(p))
	if err != nil {
		return err
	}

	if !authorization.CanMutateCategory(p, category) {
		return storage.ErrNotFound
	}

	if err := s.storage.DeleteCategory(ctx, category.ID); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}
