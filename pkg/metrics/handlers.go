// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package metrics

import (
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/canonical/lead-service/internal/logging"
)

type API struct {
	logger logging.LoggerInterface
}

// RegisterEndpoints exposes the default prometheus registry on /metrics
func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Handle("/metrics", promhttp.Handler())
}

func NewAPI(logger logging.LoggerInterface) *API {
	a := new(API)

	a.logger = logger

	return a
}
