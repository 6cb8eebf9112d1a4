// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/version"
)

const pingTimeout = 2 * time.Second

type Status struct {
	Status string `json:"status"`
}

type BuildInfo struct {
	Version string `json:"version"`
}

type API struct {
	db PingerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/status", a.alive)
	mux.Get("/api/v0/ready", a.ready)
	mux.Get("/api/v0/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok"})
}

func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	if err := pingDatabase(ctx, a.db, a.monitor); err != nil {
		a.logger.Errorf("database is not reachable: %v", err)
		httptypes.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable"})
		return
	}

	httptypes.WriteJSON(w, http.StatusOK, Status{Status: "ok"})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	httptypes.WriteJSON(w, http.StatusOK, BuildInfo{Version: version.Version})
}

func NewAPI(db PingerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
