// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"

	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type PingerInterface interface {
	Ping(ctx context.Context) error
}

// HealthSetterInterface is the writable side of the gRPC health server.
type HealthSetterInterface interface {
	SetServingStatus(service string, servingStatus healthpb.HealthCheckResponse_ServingStatus)
}
