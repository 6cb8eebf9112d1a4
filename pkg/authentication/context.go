// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import "context"

// Define a private custom type to avoid collisions
type contextKey struct{}

var accountContextKey = contextKey{}

// WithAccountID returns a new context carrying the authenticated account ID.
func WithAccountID(ctx context.Context, accountID string) context.Context {
	return context.WithValue(ctx, accountContextKey, accountID)
}

// GetAccountID retrieves the authenticated account ID from the context.
// Returns an empty string and false for anonymous requests.
func GetAccountID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountContextKey).(string)
	return id, ok && id != ""
}
