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

func (s *Storage) agentQuery(ctx context.Context) sq.SelectBuilder {
	columns := append([]string{"ag.id", "ag.account_id", "ag.organisation_id", "ag.created_at"}, prefixed("a", accountColumns)...)

	return s.db.Statement(ctx).
		Select(columns...).
		From("agents ag").
		Join("accounts a ON a.id = ag.account_id")
}

func agentDest(ag *types.Agent) []interface{} {
	ag.Account = new(types.Account)
	return append([]interface{}{&ag.ID, &ag.AccountID, &ag.OrganisationID, &ag.CreatedAt}, accountDest(ag.Account)...)
}

// CreateAgent records the membership of an agent account in a tenant.
func (s *Storage) CreateAgent(ctx context.Context, accountID, organisationID string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateAgent")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate agent ID: %w", err)
	}

	var ag types.Agent
	err = s.db.Statement(ctx).
		Insert("agents").
		Columns("id", "account_id", "organisation_id").
		Values(id.String(), accountID, organisationID).
		Suffix("RETURNING id, account_id, organisation_id, created_at").
		QueryRowContext(ctx).
		Scan(&ag.ID, &ag.AccountID, &ag.OrganisationID, &ag.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert agent")
	}

	return &ag, nil
}

// GetAgentByAccountID returns the membership of an agent account, without
// scope: it backs principal resolution.
func (s *Storage) GetAgentByAccountID(ctx context.Context, accountID string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetAgentByAccountID")
	defer span.End()

	var ag types.Agent
	err := s.db.Statement(ctx).
		Select("id", "account_id", "organisation_id", "created_at").
		From("agents").
		Where(sq.Eq{"account_id": accountID}).
		QueryRowContext(ctx).
		Scan(&ag.ID, &ag.AccountID, &ag.OrganisationID, &ag.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return &ag, nil
}

// GetAgent fetches an agent through the caller's scope; a row outside the
// scope is reported as ErrNotFound.
func (s *Storage) GetAgent(ctx context.Context, id string, scope authorization.Scope) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetAgent")
	defer span.End()

	pred, ok := scopePredicate(scope, "ag.organisation_id", "ag.id")
	if !ok {
		return nil, ErrNotFound
	}

	var ag types.Agent
	err := s.agentQuery(ctx).
		Where(sq.Eq{"ag.id": id}).
		Where(pred).
		QueryRowContext(ctx).
		Scan(agentDest(&ag)...)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}

	return &ag, nil
}

func (s *Storage) ListAgents(ctx context.Context, scope authorization.Scope, page, size int64) ([]*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.ListAgents")
	defer span.End()

	pred, ok := scopePredicate(scope, "ag.organisation_id", "ag.id")
	if !ok {
		return []*types.Agent{}, nil
	}

	pageSize := db.PageSize(size)

	rows, err := s.agentQuery(ctx).
		Where(pred).
		OrderBy("ag.created_at DESC", "ag.id").
		Limit(pageSize).
		Offset(db.Offset(page, pageSize)).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list agents: %w", err)
	}
	defer rows.Close()

	agents := make([]*types.Agent, 0)
	for rows.Next() {
		var ag types.Agent
		if err := rows.Scan(agentDest(&ag)...); err != nil {
			return nil, fmt.Errorf("failed to scan agent: %w", err)
		}
		agents = append(agents, &ag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return agents, nil
}
