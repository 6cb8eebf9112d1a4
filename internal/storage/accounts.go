// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/lead-service/internal/types"
)

var accountColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"is_superuser",
	"is_organisor",
	"is_agent",
	"email_verified",
	"phone_number",
	"first_name",
	"last_name",
	"date_of_birth",
	"gender",
	"avatar_url",
	"created_at",
}

// prefixed returns the columns qualified with a table alias.
func prefixed(alias string, columns []string) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = alias + "." + c
	}
	return out
}

func accountDest(a *types.Account) []interface{} {
	return []interface{}{
		&a.ID,
		&a.Username,
		&a.Email,
		&a.PasswordHash,
		&a.IsSuperuser,
		&a.IsOrganisor,
		&a.IsAgent,
		&a.EmailVerified,
		&a.PhoneNumber,
		&a.FirstName,
		&a.LastName,
		&a.DateOfBirth,
		&a.Gender,
		&a.AvatarURL,
		&a.CreatedAt,
	}
}

// CreateAccount inserts an account. Username and email uniqueness is
// case-insensitive and enforced by the schema.
func (s *Storage) CreateAccount(ctx context.Context, a *types.Account) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateAccount")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account ID: %w", err)
	}

	var created types.Account
	err = s.db.Statement(ctx).
		Insert("accounts").
		Columns(
			"id",
			"username",
			"email",
			"password_hash",
			"is_superuser",
			"is_organisor",
			"is_agent",
			"email_verified",
			"phone_number",
			"first_name",
			"last_name",
			"date_of_birth",
			"gender",
			"avatar_url",
		).
		Values(
			id.String(),
			a.Username,
			a.Email,
			a.PasswordHash,
			a.IsSuperuser,
			a.IsOrganisor,
			a.IsAgent,
			a.EmailVerified,
			a.PhoneNumber,
			a.FirstName,
			a.LastName,
			a.DateOfBirth,
			a.Gender,
			a.AvatarURL,
		).
		Suffix("RETURNING "+joinColumns(accountColumns)).
		QueryRowContext(ctx).
		Scan(accountDest(&created)...)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert account")
	}

	return &created, nil
}

func (s *Storage) getAccount(ctx context.Context, where sq.Sqlizer) (*types.Account, error) {
	var a types.Account
	err := s.db.Statement(ctx).
		Select(accountColumns...).
		From("accounts").
		Where(where).
		QueryRowContext(ctx).
		Scan(accountDest(&a)...)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	return &a, nil
}

func (s *Storage) GetAccountByID(ctx context.Context, id string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetAccountByID")
	defer span.End()

	return s.getAccount(ctx, sq.Eq{"id": id})
}

// GetAccountByUsername matches the username case-insensitively.
func (s *Storage) GetAccountByUsername(ctx context.Context, username string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetAccountByUsername")
	defer span.End()

	return s.getAccount(ctx, sq.Expr("LOWER(username) = LOWER(?)", username))
}

// GetAccountByEmail matches the email case-insensitively.
func (s *Storage) GetAccountByEmail(ctx context.Context, email string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetAccountByEmail")
	defer span.End()

	return s.getAccount(ctx, sq.Expr("LOWER(email) = LOWER(?)", email))
}

// UpdateAccount updates the fields named in paths, PATCH style.
func (s *Storage) UpdateAccount(ctx context.Context, a *types.Account, paths []string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.UpdateAccount")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "username":
			updateMap["username"] = a.Username
		case "email":
			updateMap["email"] = a.Email
		case "password_hash":
			updateMap["password_hash"] = a.PasswordHash
		case "phone_number":
			updateMap["phone_number"] = a.PhoneNumber
		case "first_name":
			updateMap["first_name"] = a.FirstName
		case "last_name":
			updateMap["last_name"] = a.LastName
		case "date_of_birth":
			updateMap["date_of_birth"] = a.DateOfBirth
		case "gender":
			updateMap["gender"] = a.Gender
		case "avatar_url":
			updateMap["avatar_url"] = a.AvatarURL
		}
	}

	if len(updateMap) == 0 {
		return s.GetAccountByID(ctx, a.ID)
	}

	var updated types.Account
	err := s.db.Statement(ctx).
		Update("accounts").
		SetMap(updateMap).
		Where(sq.Eq{"id": a.ID}).
		Suffix("RETURNING "+joinColumns(accountColumns)).
		QueryRowContext(ctx).
		Scan(accountDest(&updated)...)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, wrapWriteError(err, "failed to update account")
	}

	return &updated, nil
}

// SetEmailVerified flags the account as verified. Verifying an already
// verified account is a no-op.
func (s *Storage) SetEmailVerified(ctx context.Context, accountID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.SetEmailVerified")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("accounts").
		Set("email_verified", true).
		Where(sq.Eq{"id": accountID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to verify account email: %w", err)
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

// DeleteAccount removes the account; profile, membership and tokens follow
// through foreign key cascades.
func (s *Storage) DeleteAccount(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteAccount")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("accounts").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
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

// DeleteAgentAccountsByOrganisation removes the accounts of every agent owned
// by the tenant profile and returns how many were deleted.
func (s *Storage) DeleteAgentAccountsByOrganisation(ctx context.Context, organisationID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.DeleteAgentAccountsByOrganisation")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("accounts").
		Where(sq.Expr("id IN (SELECT account_id FROM agents WHERE organisation_id = ?)", organisationID)).
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to delete agent accounts: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

func (s *Storage) CreateProfile(ctx context.Context, accountID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.CreateProfile")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate profile ID: %w", err)
	}

	var p types.Profile
	err = s.db.Statement(ctx).
		Insert("profiles").
		Columns("id", "account_id").
		Values(id.String(), accountID).
		Suffix("RETURNING id, account_id, created_at").
		QueryRowContext(ctx).
		Scan(&p.ID, &p.AccountID, &p.CreatedAt)

	if err != nil {
		return nil, wrapWriteError(err, "failed to insert profile")
	}

	return &p, nil
}

func (s *Storage) GetProfileByAccountID(ctx context.Context, accountID string) (*types.Profile, error) {
	ctx, span := s.tracer.Start(ctx, "storage.Storage.GetProfileByAccountID")
	defer span.End()

	var p types.Profile
	err := s.db.Statement(ctx).
		Select("id", "account_id", "created_at").
		From("profiles").
		Where(sq.Eq{"account_id": accountID}).
		QueryRowContext(ctx).
		Scan(&p.ID, &p.AccountID, &p.CreatedAt)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	return &p, nil
}
