// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/canonical/lead-service/internal/authorization"
)

// scopePredicate turns a visible set into a WHERE clause over the given
// tenant and agent columns. ok is false when the scope matches nothing and
// the query can be skipped.
func scopePredicate(scope authorization.Scope, tenantColumn, agentColumn string) (pred sq.Sqlizer, ok bool) {
	switch {
	case scope.IsNone():
		return nil, false
	case scope.IsAll():
		return sq.And{}, true
	case scope.Agent() != "":
		return sq.Eq{tenantColumn: scope.Tenant(), agentColumn: scope.Agent()}, true
	default:
		return sq.Eq{tenantColumn: scope.Tenant()}, true
	}
}
