// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
)

func TestHealthWatcher_Check(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		expected healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "database reachable", expected: healthpb.HealthCheckResponse_SERVING},
		{name: "database down", pingErr: errors.New("connection refused"), expected: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			pinger := NewMockPingerInterface(ctrl)
			pinger.EXPECT().Ping(gomock.Any()).Return(test.pingErr)

			hs := health.NewServer()
			w := NewHealthWatcher(pinger, hs, time.Second, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			if ok := w.Check(context.Background()); ok != (test.pingErr == nil) {
				t.Fatalf("unexpected check result %v", ok)
			}

			resp, err := hs.Check(context.Background(), &healthpb.HealthCheckRequest{})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if resp.GetStatus() != test.expected {
				t.Fatalf("expected %v, got %v", test.expected, resp.GetStatus())
			}
		})
	}
}

func TestHealthWatcher_RunFollowsDatabase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pinger := NewMockPingerInterface(ctrl)
	setter := NewMockHealthSetterInterface(ctrl)

	pinger.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	pinger.EXPECT().Ping(gomock.Any()).Return(nil).MinTimes(1)

	gomock.InOrder(
		setter.EXPECT().SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING),
		setter.EXPECT().SetServingStatus("", healthpb.HealthCheckResponse_SERVING).Do(
			func(string, healthpb.HealthCheckResponse_ServingStatus) { cancel() },
		).MinTimes(1),
	)

	w := NewHealthWatcher(pinger, setter, time.Millisecond, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not recover after the database came back")
	}
}
