// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"net/http"
)

type GuardInterface interface {
	Decide(r *http.Request, pred Predicate) Decision
	Require(pred Predicate) func(http.Handler) http.Handler
}
