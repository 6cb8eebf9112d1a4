// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"

	"github.com/canonical/lead-service/internal/logging"
)

var _ NotifierInterface = (*LogNotifier)(nil)

// LogNotifier writes messages to the log instead of delivering them, for
// deployments without an SMTP relay.
type LogNotifier struct {
	logger logging.LoggerInterface
}

func (n *LogNotifier) Send(_ context.Context, subject, body, from string, to []string) error {
	if len(to) == 0 {
		return ErrNoRecipients
	}

	n.logger.Infow("email not delivered, no smtp relay configured",
		"from", from,
		"to", to,
		"subject", subject,
		"body", body,
	)

	return nil
}

func NewLogNotifier(logger logging.LoggerInterface) *LogNotifier {
	n := new(LogNotifier)

	n.logger = logger

	return n
}
