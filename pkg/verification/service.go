// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package verification

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/mail"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

// TokenLifetime is how long a verification link stays valid after issue.
const TokenLifetime = 24 * time.Hour

const (
	tokenBytes = 32
	subject    = "Verify your email address"
)

var (
	// ErrVerificationFailed is what callers see for any unusable link.
	ErrVerificationFailed = errors.New("verification link is invalid or has expired")

	ErrTokenNotFound    = fmt.Errorf("token not found: %w", ErrVerificationFailed)
	ErrTokenAlreadyUsed = fmt.Errorf("token already used: %w", ErrVerificationFailed)
	ErrTokenExpired     = fmt.Errorf("token expired: %w", ErrVerificationFailed)
)

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	notifier mail.NotifierInterface

	baseURL  string
	mailFrom string
	now      func() time.Time

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// IsExpired reports whether the token is older than TokenLifetime at now.
// A token exactly TokenLifetime old is still valid.
func IsExpired(token *types.VerificationToken, now time.Time) bool {
	return now.After(token.CreatedAt.Add(TokenLifetime))
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

func wellFormed(raw string) bool {
	if len(raw) != hex.EncodedLen(tokenBytes) {
		return false
	}

	_, err := hex.DecodeString(raw)
	return err == nil
}

func (s *Service) IssueToken(ctx context.Context, account *types.Account) (string, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Service.IssueToken")
	defer span.End()

	buf := make([]byte, tokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate verification token: %w", err)
	}

	raw := hex.EncodeToString(buf)

	if _, err := s.storage.CreateVerificationToken(ctx, account.ID, hashToken(raw), s.now()); err != nil {
		return "", fmt.Errorf("failed to store verification token: %w", err)
	}

	return raw, nil
}

// ConsumeToken redeems a raw token and marks the owning account as verified.
// The token row stays locked for the duration of the transaction, so of two
// concurrent attempts only one succeeds.
func (s *Service) ConsumeToken(ctx context.Context, rawToken string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "verification.Service.ConsumeToken")
	defer span.End()

	if !wellFormed(rawToken) {
		s.recordFailure(ErrTokenNotFound)
		return nil, ErrTokenNotFound
	}

	var account *types.Account

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		token, err := s.storage.GetVerificationTokenForUpdate(ctx, hashToken(rawToken))
		if errors.Is(err, storage.ErrNotFound) {
			return ErrTokenNotFound
		}

		if err != nil {
			return fmt.Errorf("failed to fetch verification token: %w", err)
		}

		if token.IsUsed {
			return ErrTokenAlreadyUsed
		}

		if IsExpired(token, s.now()) {
			return ErrTokenExpired
		}

		err = s.storage.MarkVerificationTokenUsed(ctx, token.ID)
		if errors.Is(err, storage.ErrConflict) {
			return ErrTokenAlreadyUsed
		}

		if err != nil {
			return fmt.Errorf("failed to mark verification token used: %w", err)
		}

		if err := s.storage.SetEmailVerified(ctx, token.AccountID); err != nil {
			return fmt.Errorf("failed to mark email verified: %w", err)
		}

		account, err = s.storage.GetAccountByID(ctx, token.AccountID)
		if err != nil {
			return fmt.Errorf("failed to fetch verified account: %w", err)
		}

		return nil
	})

	if errors.Is(err, ErrVerificationFailed) {
		s.recordFailure(err)
		return nil, err
	}

	if err != nil {
		return nil, err
	}

	s.logger.Security().VerificationSuccess(account.ID)
	s.count("success")

	return account, nil
}

func (s *Service) recordFailure(err error) {
	var outcome string

	switch {
	case errors.Is(err, ErrTokenExpired):
		outcome = "expired"
	case errors.Is(err, ErrTokenAlreadyUsed):
		outcome = "already_used"
	default:
		outcome = "not_found"
	}

	s.logger.Security().VerificationFailure(outcome)
	s.count(outcome)
}

func (s *Service) count(outcome string) {
	if err := s.monitor.IncAuthEvent(map[string]string{"event": "verification", "outcome": outcome}); err != nil {
		s.logger.Debugf("failed to record verification outcome: %v", err)
	}
}

// Link returns the public address at which rawToken can be redeemed.
func (s *Service) Link(rawToken string) string {
	return fmt.Sprintf("%s/verify-email/%s/", strings.TrimRight(s.baseURL, "/"), rawToken)
}

func (s *Service) SendVerification(ctx context.Context, account *types.Account, rawToken string) error {
	ctx, span := s.tracer.Start(ctx, "verification.Service.SendVerification")
	defer span.End()

	body := fmt.Sprintf(
		"Hello %s,\n\nPlease confirm your email address by opening the link below:\n\n%s\n\nThe link is valid for %d hours.\n",
		account.DisplayName(),
		s.Link(rawToken),
		int(TokenLifetime.Hours()),
	)

	if err := s.notifier.Send(ctx, subject, body, s.mailFrom, []string{account.Email}); err != nil {
		return fmt.Errorf("failed to send verification email: %w", err)
	}

	return nil
}

// Resend issues and mails a new token when email belongs to an unverified
// account. Unknown and already verified addresses are a silent no-op.
// Earlier tokens remain valid.
func (s *Service) Resend(ctx context.Context, email string) error {
	ctx, span := s.tracer.Start(ctx, "verification.Service.Resend")
	defer span.End()

	account, err := s.storage.GetAccountByEmail(ctx, strings.TrimSpace(email))
	if errors.Is(err, storage.ErrNotFound) {
		s.logger.Debug("verification resend requested for unknown address")
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}

	if account.EmailVerified {
		return nil
	}

	raw, err := s.IssueToken(ctx, account)
	if err != nil {
		return err
	}

	return s.SendVerification(ctx, account, raw)
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	notifier mail.NotifierInterface,
	baseURL, mailFrom string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.notifier = notifier
	s.baseURL = baseURL
	s.mailFrom = mailFrom
	s.now = time.Now

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
