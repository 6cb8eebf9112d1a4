// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"time"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
)

const DefaultHealthInterval = 10 * time.Second

// pingDatabase checks the database and records the outcome in the
// dependency availability gauge.
func pingDatabase(ctx context.Context, db PingerInterface, monitor monitoring.MonitorInterface) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	tags := map[string]string{"component": "database"}

	if err := db.Ping(ctx); err != nil {
		_ = monitor.SetDependencyAvailability(tags, 0)
		return err
	}

	_ = monitor.SetDependencyAvailability(tags, 1)
	return nil
}

// HealthWatcher keeps the gRPC health status of the whole server in line
// with database reachability.
type HealthWatcher struct {
	db       PingerInterface
	health   HealthSetterInterface
	interval time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Check pings the database once and publishes the result.
func (h *HealthWatcher) Check(ctx context.Context) bool {
	ctx, span := h.tracer.Start(ctx, "status.HealthWatcher.Check")
	defer span.End()

	if err := pingDatabase(ctx, h.db, h.monitor); err != nil {
		h.logger.Errorf("database is not reachable: %v", err)
		h.health.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
		return false
	}

	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return true
}

// Run checks immediately and then on every tick until ctx is done.
func (h *HealthWatcher) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.Check(ctx)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			h.Check(ctx)
		}
	}
}

func NewHealthWatcher(db PingerInterface, health HealthSetterInterface, interval time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *HealthWatcher {
	h := new(HealthWatcher)

	h.db = db
	h.health = health
	h.interval = interval
	if h.interval <= 0 {
		h.interval = DefaultHealthInterval
	}

	h.tracer = tracer
	h.monitor = monitor
	h.logger = logger

	return h
}
