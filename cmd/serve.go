// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/canonical/lead-service/internal/config"
	"github.com/canonical/lead-service/internal/db"
	"github.com/canonical/lead-service/internal/identity"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring/prometheus"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/pkg/status"
	"github.com/canonical/lead-service/pkg/web"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor("lead-service", logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()

	notifier := newNotifier(specs, tracer, monitor, logger)
	services, s := newServices(specs, dbClient, notifier, tracer, monitor, logger)

	router := web.NewRouter(
		web.Config{
			CORSAllowedOrigins: specs.CORSAllowedOrigins,
			CookieSecure:       specs.CookieSecure,
		},
		services,
		identity.NewMiddleware(s, tracer, monitor, logger),
		dbClient,
		tracer,
		monitor,
		logger,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	lis, err := net.Listen("tcp", fmt.Sprintf("0.0.0.0:%v", specs.GRPCPort))
	if err != nil {
		return fmt.Errorf("failed to listen on grpc port: %w", err)
	}

	healthServer := health.NewServer()
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := status.NewHealthWatcher(dbClient, healthServer, status.DefaultHealthInterval, tracer, monitor, logger)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return watcher.Run(gCtx)
	})

	g.Go(func() error {
		logger.Infof("Starting HTTP server on port %v", specs.Port)
		logger.Security().SystemStartup()

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		logger.Infof("Starting gRPC health server on port %v", specs.GRPCPort)

		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("failed to serve gRPC: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		// Create a deadline to wait for.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		logger.Security().SystemShutdown()
		healthServer.Shutdown()
		grpcServer.GracefulStop()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	return g.Wait()
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
