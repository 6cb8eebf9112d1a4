// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port     int `envconfig:"port" default:"8080"`
	GRPCPort int `envconfig:"grpc_port" default:"50051"`

	// BaseURL is the public address embedded in verification links
	BaseURL string `envconfig:"base_url" default:"http://localhost:8080"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	SessionSecret   string        `envconfig:"session_secret" required:"true"`
	SessionLifetime time.Duration `envconfig:"session_lifetime" default:"12h"`
	CookieSecure    bool          `envconfig:"cookie_secure" default:"true"`
	BcryptCost      int           `envconfig:"bcrypt_cost" default:"12"`

	MailFrom     string `envconfig:"mail_from" default:"no-reply@localhost"`
	SMTPHost     string `envconfig:"smtp_host"`
	SMTPPort     int    `envconfig:"smtp_port" default:"587"`
	SMTPUsername string `envconfig:"smtp_username"`
	SMTPPassword string `envconfig:"smtp_password"`

	DefaultPhoneRegion string `envconfig:"default_phone_region" default:"US"`

	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins" default:"*"`
}
