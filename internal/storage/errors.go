// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for storage operations.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrDuplicateKey        = errors.New("duplicate key violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	// ErrConflict is returned when a compare-and-set update matched no row
	ErrConflict = errors.New("record was modified concurrently")
)

// PostgreSQL error codes
const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

// uniqueConstraintFields maps unique constraints and indexes to the input field they guard.
var uniqueConstraintFields = map[string]string{
	"accounts_username_lower_idx":        "username",
	"accounts_email_lower_idx":           "email",
	"accounts_phone_number_key":          "phone_number",
	"profiles_account_id_key":            "account",
	"agents_account_id_key":              "account",
	"verification_tokens_token_hash_key": "token",
	"categories_organisation_name_key":   "name",
}

// DuplicateKeyError carries the field whose uniqueness was violated.
type DuplicateKeyError struct {
	Field string
	err   error
}

func (e *DuplicateKeyError) Error() string {
	if e.Field == "" {
		return ErrDuplicateKey.Error()
	}
	return fmt.Sprintf("%s: %s", e.Field, ErrDuplicateKey)
}

func (e *DuplicateKeyError) Unwrap() []error {
	return []error{ErrDuplicateKey, e.err}
}

// IsDuplicateKeyError checks if the error is a PostgreSQL unique constraint violation.
func IsDuplicateKeyError(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeUniqueViolation
	}
	return false
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgErrCodeForeignKeyViolation
	}
	return false
}

// DuplicateKeyField returns the input field behind a duplicate key error, if known.
func DuplicateKeyField(err error) (string, bool) {
	var dupErr *DuplicateKeyError
	if errors.As(err, &dupErr) && dupErr.Field != "" {
		return dupErr.Field, true
	}
	return "", false
}

// wrapWriteError translates integrity violations into storage sentinels,
// anything else is wrapped with the operation context.
func wrapWriteError(err error, context string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%s: %w", context, err)
	}

	switch pgErr.Code {
	case pgErrCodeUniqueViolation:
		return &DuplicateKeyError{Field: uniqueConstraintFields[pgErr.ConstraintName], err: err}
	case pgErrCodeForeignKeyViolation:
		return fmt.Errorf("%s: %w", context, ErrForeignKeyViolation)
	default:
		return fmt.Errorf("%s: %w", context, err)
	}
}
