// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/tracing"
)

var ErrNoRecipients = errors.New("no recipients")

type Config struct {
	Host     string
	Port     int
	Username string
	Password string
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

var _ NotifierInterface = (*SMTPNotifier)(nil)

// SMTPNotifier relays mail through an SMTP server. Calls go through a circuit
// breaker so an unreachable relay fails fast instead of stalling requests.
type SMTPNotifier struct {
	addr    string
	auth    smtp.Auth
	breaker *gobreaker.CircuitBreaker
	send    sendFunc

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (n *SMTPNotifier) Send(ctx context.Context, subject, body, from string, to []string) error {
	ctx, span := n.tracer.Start(ctx, "mail.SMTPNotifier.Send")
	defer span.End()

	if len(to) == 0 {
		return ErrNoRecipients
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg := buildMessage(subject, body, from, to)

	_, err := n.breaker.Execute(func() (interface{}, error) {
		return nil, n.send(n.addr, n.auth, from, to, msg)
	})

	n.setAvailability(err)

	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (n *SMTPNotifier) setAvailability(err error) {
	available := 1.0
	if err != nil {
		available = 0
	}

	if mErr := n.monitor.SetDependencyAvailability(map[string]string{"component": "smtp"}, available); mErr != nil {
		n.logger.Debugf("failed to record smtp availability: %v", mErr)
	}
}

// header values must not carry line breaks
func sanitizeHeader(v string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(v)
}

func buildMessage(subject, body, from string, to []string) []byte {
	recipients := make([]string, len(to))
	for i, r := range to {
		recipients[i] = sanitizeHeader(r)
	}

	var b strings.Builder
	b.WriteString("From: " + sanitizeHeader(from) + "\r\n")
	b.WriteString("To: " + strings.Join(recipients, ", ") + "\r\n")
	b.WriteString("Subject: " + sanitizeHeader(subject) + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}

func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

func NewSMTPNotifier(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SMTPNotifier {
	n := new(SMTPNotifier)

	n.addr = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	if cfg.Username != "" {
		n.auth = smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host)
	}
	n.breaker = newCircuitBreaker("smtp")
	n.send = smtp.SendMail

	n.tracer = tracer
	n.monitor = monitor
	n.logger = logger

	return n
}
