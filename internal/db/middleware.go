// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/lead-service/internal/logging"
)

// TransactionMiddleware creates a middleware that wraps each mutating request in a database transaction.
// The transaction is committed if the handler completes successfully (status < 400).
// The transaction is rolled back if the handler returns an error or status >= 400.
func TransactionMiddleware(db DBClientInterface, logger logging.LoggerInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				// No need for a transaction on read-only requests
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			err := db.WithTx(r.Context(), func(txCtx context.Context) error {
				next.ServeHTTP(ww, r.WithContext(txCtx))

				// redirects are denials in this service, nothing they touched should persist
				if ww.Status() >= http.StatusMultipleChoices {
					return fmt.Errorf("request failed with status %d", ww.Status())
				}

				return nil
			})

			if err != nil {
				logger.Debugf("transaction for %s %s not committed: %v", r.Method, r.URL.Path, err)
			}
		})
	}
}
