// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/lead-service/internal/authorization"
	"github.com/canonical/lead-service/internal/types"
)

func (s *Storage) CreateCategory(ctx context.Context, c *types.Category) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateCategory")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate category ID: %w", err)
	}

	var created types.Category
	err = s.db.Statement(ctx).
		Insert("categories").
		Columns("id", "organisation_id", "name").
		Values(id.String(), c.OrganisationID, c.Name).
		Suffix("RETURNING id, organisation_id, name, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.OrganisationID, &created.Name, &created.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert category")
	}

	return &created, nil
}

// GetCategory fetches a category through the caller's scope. Categories have
// no agent column, an agent restriction never applies to them.
func (s *Storage) GetCategory(ctx context.Context, id string, scope authorization.Scope) (*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetCategory")
	defer span.End()

	pred, ok := scopePredicate(authorization.TenantRowsOf(scope), "organisation_id", "")
	if !ok {
		return nil, ErrNotFound
	}

	var c types.Category
	err := s.db.Statement(ctx).
		Select("id", "organisation_id", "name", "created_at").
		From("categories").
		Where(sq.Eq{"id": id}).
		Where(pred).
		QueryRowContext(ctx).
		Scan(&c.ID, &c.OrganisationID, &c.Name, &c.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	return &c, nil
}

func (s *Storage) ListCategories(ctx context.Context, scope authorization.Scope) ([]*types.Category, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListCategories")
	defer span.End()

	pred, ok := scopePredicate(authorization.TenantRowsOf(scope), "organisation_id", "")
	if !ok {
		return []*types.Category{}, nil
	}

	rows, err := s.db.Statement(ctx).
		Select("id", "organisation_id", "name", "created_at").
		From("categories").
		Where(pred).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := make([]*types.Category, 0)
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.OrganisationID, &c.Name, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return categories, nil
}

// DeleteCategory removes a category; leads keep existing with no category.
func (s *Storage) DeleteCategory(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteCategory")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("categories").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
