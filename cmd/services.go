// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"github.com/canonical/lead-service/internal/config"
	"github.com/canonical/lead-service/internal/db"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/mail"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/phone"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/pkg/accounts"
	"github.com/canonical/lead-service/pkg/agents"
	"github.com/canonical/lead-service/pkg/authentication"
	"github.com/canonical/lead-service/pkg/leads"
	"github.com/canonical/lead-service/pkg/verification"
	"github.com/canonical/lead-service/pkg/web"
)

func newNotifier(specs *config.EnvSpec, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) mail.NotifierInterface {
	if specs.SMTPHost == "" {
		logger.Info("SMTP host not configured, verification emails are only logged")
		return mail.NewLogNotifier(logger)
	}

	return mail.NewSMTPNotifier(
		mail.Config{
			Host:     specs.SMTPHost,
			Port:     specs.SMTPPort,
			Username: specs.SMTPUsername,
			Password: specs.SMTPPassword,
		},
		tracer,
		monitor,
		logger,
	)
}

// newServices wires the domain services on top of a single database client
func newServices(
	specs *config.EnvSpec,
	dbClient db.DBClientInterface,
	notifier mail.NotifierInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (web.Services, *storage.Storage) {
	s := storage.NewStorage(dbClient, tracer, monitor, logger)
	phones := phone.NewNormalizer(specs.DefaultPhoneRegion)
	hasher := authentication.NewPasswordHasher(specs.BcryptCost)

	verificationService := verification.NewService(s, dbClient, notifier, specs.BaseURL, specs.MailFrom, tracer, monitor, logger)
	accountsService := accounts.NewService(s, dbClient, verificationService, hasher, phones, tracer, monitor, logger)

	services := web.Services{
		Authenticator: authentication.NewAuthenticator(s, hasher, tracer, monitor, logger),
		Sessions:      authentication.NewSessionManager(specs.SessionSecret, specs.SessionLifetime, tracer, monitor, logger),
		Accounts:      accountsService,
		Agents:        agents.NewService(s, dbClient, accountsService, phones, tracer, monitor, logger),
		Leads:         leads.NewService(s, phones, tracer, monitor, logger),
		Verification:  verificationService,
	}

	return services, s
}
