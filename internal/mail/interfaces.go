// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
)

// NotifierInterface delivers a plain text message to a list of recipients.
type NotifierInterface interface {
	Send(ctx context.Context, subject, body, from string, to []string) error
}
