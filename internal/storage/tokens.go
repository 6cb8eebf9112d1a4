// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/lead-service/internal/types"
)

func (s *Storage) CreateVerificationToken(ctx context.Context, accountID, tokenHash string, createdAt time.Time) (*types.VerificationToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateVerificationToken")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate token ID: %w", err)
	}

	var t types.VerificationToken
	err = s.db.Statement(ctx).
		Insert("verification_tokens").
		Columns("id", "account_id", "token_hash", "created_at", "is_used").
		Values(id.String(), accountID, tokenHash, createdAt, false).
		Suffix("RETURNING id, account_id, token_hash, created_at, is_used").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.AccountID, &t.TokenHash, &t.CreatedAt, &t.IsUsed)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert verification token")
	}

	return &t, nil
}

// GetVerificationTokenForUpdate fetches a token by hash and locks its row
// until the surrounding transaction ends, so concurrent consumers serialise.
func (s *Storage) GetVerificationTokenForUpdate(ctx context.Context, tokenHash string) (*types.VerificationToken, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetVerificationTokenForUpdate")
	defer span.End()

	var t types.VerificationToken
	err := s.db.Statement(ctx).
		Select("id", "account_id", "token_hash", "created_at", "is_used").
		From("verification_tokens").
		Where(sq.Eq{"token_hash": tokenHash}).
		Suffix("FOR UPDATE").
		QueryRowContext(ctx).
		Scan(&t.ID, &t.AccountID, &t.TokenHash, &t.CreatedAt, &t.IsUsed)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get verification token: %w", err)
	}

	return &t, nil
}

// MarkVerificationTokenUsed flips is_used from false to true. It returns
// ErrConflict when the token was already used.
func (s *Storage) MarkVerificationTokenUsed(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.MarkVerificationTokenUsed")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("verification_tokens").
		Set("is_used", true).
		Where(sq.Eq{"id": id, "is_used": false}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark verification token used: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrConflict
	}

	return nil
}
