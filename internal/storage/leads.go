// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/lead-service/internal/authorization"
	"github.com/canonical/lead-service/internal/db"
	"github.com/canonical/lead-service/internal/types"
)

var leadColumns = []string{
	"id",
	"organisation_id",
	"agent_id",
	"category_id",
	"first_name",
	"last_name",
	"age",
	"description",
	"phone_number",
	"email",
	"created_at",
}

func leadDest(l *types.Lead) []interface{} {
	return []interface{}{
		&l.ID,
		&l.OrganisationID,
		&l.AgentID,
		&l.CategoryID,
		&l.FirstName,
		&l.LastName,
		&l.Age,
		&l.Description,
		&l.PhoneNumber,
		&l.Email,
		&l.CreatedAt,
	}
}

func (s *Storage) CreateLead(ctx context.Context, l *types.Lead) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateLead")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate lead ID: %w", err)
	}

	var created types.Lead
	err = s.db.Statement(ctx).
		Insert("leads").
		Columns(
			"id",
			"organisation_id",
			"agent_id",
			"category_id",
			"first_name",
			"last_name",
			"age",
			"description",
			"phone_number",
			"email",
		).
		Values(
			id.String(),
			l.OrganisationID,
			l.AgentID,
			l.CategoryID,
			l.FirstName,
			l.LastName,
			l.Age,
			l.Description,
			l.PhoneNumber,
			l.Email,
		).
		Suffix("RETURNING "+joinColumns(leadColumns)).
		QueryRowContext(ctx).
		Scan(leadDest(&created)...)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert lead")
	}

	return &created, nil
}

// GetLead fetches a lead through the caller's scope; a row outside the scope
// is reported as ErrNotFound.
func (s *Storage) GetLead(ctx context.Context, id string, scope authorization.Scope) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetLead")
	defer span.End()

	pred, ok := scopePredicate(scope, "l.organisation_id", "l.agent_id")
	if !ok {
		return nil, ErrNotFound
	}

	var l types.Lead
	err := s.db.Statement(ctx).
		Select(prefixed("l", leadColumns)...).
		From("leads l").
		Where(sq.Eq{"l.id": id}).
		Where(pred).
		QueryRowContext(ctx).
		Scan(leadDest(&l)...)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return &l, nil
}

func (s *Storage) ListLeads(ctx context.Context, scope authorization.Scope, filter types.LeadFilter, page, size int64) ([]*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListLeads")
	defer span.End()

	pred, ok := scopePredicate(scope, "l.organisation_id", "l.agent_id")
	if !ok {
		return []*types.Lead{}, nil
	}

	pageSize := db.PageSize(size)

	query := s.db.Statement(ctx).
		Select(prefixed("l", leadColumns)...).
		From("leads l").
		Where(pred)

	if filter.CategoryID != "" {
		query = query.Where(sq.Eq{"l.category_id": filter.CategoryID})
	}

	if filter.Unassigned {
		query = query.Where(sq.Eq{"l.agent_id": nil})
	}

	rows, err := query.
		OrderBy("l.created_at DESC", "l.id").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := make([]*types.Lead, 0)
	for rows.Next() {
		var l types.Lead
		if err := rows.Scan(leadDest(&l)...); err != nil {
			return nil, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return leads, nil
}

// UpdateLead updates the fields named in paths, PATCH style.
func (s *Storage) UpdateLead(ctx context.Context, l *types.Lead, paths []string) (*types.Lead, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateLead")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "agent_id":
			updateMap["agent_id"] = l.AgentID
		case "category_id":
			updateMap["category_id"] = l.CategoryID
		case "first_name":
			updateMap["first_name"] = l.FirstName
		case "last_name":
			updateMap["last_name"] = l.LastName
		case "age":
			updateMap["age"] = l.Age
		case "description":
			updateMap["description"] = l.Description
		case "phone_number":
			updateMap["phone_number"] = l.PhoneNumber
		case "email":
			updateMap["email"] = l.Email
		}
	}

	if len(updateMap) == 0 {
		return l, nil
	}

	var updated types.Lead
	err := s.db.Statement(ctx).
		Update("leads").
		SetMap(updateMap).
		Where(sq.Eq{"id": l.ID}).
		Suffix("RETURNING "+joinColumns(leadColumns)).
		QueryRowContext(ctx).
		Scan(leadDest(&updated)...)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, wrapWriteError(err, "failed to update lead")
	}

	return &updated, nil
}

func (s *Storage) DeleteLead(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteLead")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("leads").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
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
