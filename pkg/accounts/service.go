// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

const dateLayout = "2006-01-02"

// ErrNotificationFailed means the account was stored but the verification
// email could not be delivered. The account is kept, unverified.
var ErrNotificationFailed = errors.New("account created but the verification email could not be sent")

// NewAccount is the input of the account creation use-case.
type NewAccount struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	FirstName   string
	LastName    string
	DateOfBirth *time.Time
	Gender      string

	IsSuperuser bool
	IsOrganisor bool
	IsAgent     bool
}

// Registration is the outcome of CreateAccount. RawToken is the verification
// value to be mailed once the surrounding transaction has committed.
type Registration struct {
	Account  *types.Account
	Profile  *types.Profile
	RawToken string
}

// ProfileUpdate holds the self-service fields, nil means unchanged.
type ProfileUpdate struct {
	Username    *string
	Password    *string
	PhoneNumber *string
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Gender      *string
	AvatarURL   *string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	verifier VerifierInterface
	hasher   PasswordHasherInterface
	phones   PhoneNormalizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// CreateAccount stores the account, its tenant profile and a verification
// token as one unit. When ctx already carries a transaction the work joins
// it, so callers can add rows of their own to the same unit. Nothing is
// recorded until the caller hands the committed registration to
// NotifyRegistration.
func (s *Service) CreateAccount(ctx context.Context, in *NewAccount) (*Registration, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.CreateAccount")
	defer span.End()

	account := &types.Account{
		Username:    strings.TrimSpace(in.Username),
		Email:       strings.TrimSpace(in.Email),
		IsSuperuser: in.IsSuperuser,
		IsOrganisor: in.IsOrganisor,
		IsAgent:     in.IsAgent,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		DateOfBirth: in.DateOfBirth,
		Gender:      in.Gender,
	}

	if in.PhoneNumber != "" {
		normalized, err := s.phones.Normalize(in.PhoneNumber)
		if err != nil {
			return nil, httptypes.NewValidationError("phone_number", "must be a valid phone number")
		}
		account.PhoneNumber = &normalized
	}

	hash, err := s.hasher.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	account.PasswordHash = hash

	reg := new(Registration)

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.storage.CreateAccount(ctx, account)
		if err != nil {
			return err
		}

		profile, err := s.storage.CreateProfile(ctx, created.ID)
		if err != nil {
			return err
		}

		raw, err := s.verifier.IssueToken(ctx, created)
		if err != nil {
			return err
		}

		reg.Account = created
		reg.Profile = profile
		reg.RawToken = raw

		return nil
	})

	if err != nil {
		return nil, integrityError(err, "failed to create account")
	}

	return reg, nil
}

// NotifyRegistration records a committed registration and mails its
// verification link.
func (s *Service) NotifyRegistration(ctx context.Context, reg *Registration) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.NotifyRegistration")
	defer span.End()

	s.logger.Security().UserCreated(actorID(ctx), reg.Account.ID)

	if err := s.verifier.SendVerification(ctx, reg.Account, reg.RawToken); err != nil {
		s.logger.Errorf("failed to send verification email to account %s: %v", reg.Account.ID, err)
		return fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	return nil
}

// Signup registers a new organisor. A delivery failure is reported with
// ErrNotificationFailed alongside the created account.
func (s *Service) Signup(ctx context.Context, in *NewAccount) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.Signup")
	defer span.End()

	in.IsSuperuser = false
	in.IsOrganisor = true
	in.IsAgent = false

	reg, err := s.CreateAccount(ctx, in)
	if err != nil {
		return nil, err
	}

	return reg.Account, s.NotifyRegistration(ctx, reg)
}

// CreateSuperuser provisions an operator account from the command line. No
// mail is sent, the address is trusted and marked verified straight away.
func (s *Service) CreateSuperuser(ctx context.Context, in *NewAccount) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.CreateSuperuser")
	defer span.End()

	in.IsSuperuser = true
	in.IsOrganisor = false
	in.IsAgent = false

	var account *types.Account

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		reg, err := s.CreateAccount(ctx, in)
		if err != nil {
			return err
		}

		if err := s.storage.SetEmailVerified(ctx, reg.Account.ID); err != nil {
			return err
		}

		reg.Account.EmailVerified = true
		account = reg.Account

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Security().UserCreated(actorID(ctx), account.ID)

	return account, nil
}

func (s *Service) GetProfile(ctx context.Context, accountID string) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.GetProfile")
	defer span.End()

	return s.storage.GetAccountByID(ctx, accountID)
}

func (s *Service) UpdateProfile(ctx context.Context, p *authorization.Principal, update *ProfileUpdate) (*types.Account, error) {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.UpdateProfile")
	defer span.End()

	account, err := s.storage.GetAccountByID(ctx, p.AccountID)
	if err != nil {
		return nil, err
	}

	if !authorization.CanUpdateOwnProfile(p, account) {
		return nil, storage.ErrNotFound
	}

	paths := make([]string, 0)

	if update.Username != nil {
		account.Username = strings.TrimSpace(*update.Username)
		paths = append(paths, "username")
	}

	if update.Password != nil {
		hash, err := s.hasher.HashPassword(*update.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		account.PasswordHash = hash
		paths = append(paths, "password_hash")
	}

	if update.PhoneNumber != nil {
		if *update.PhoneNumber == "" {
			account.PhoneNumber = nil
		} else {
			normalized, err := s.phones.Normalize(*update.PhoneNumber)
			if err != nil {
				return nil, httptypes.NewValidationError("phone_number", "must be a valid phone number")
			}
			account.PhoneNumber = &normalized
		}
		paths = append(paths, "phone_number")
	}

	if update.FirstName != nil {
		account.FirstName = *update.FirstName
		paths = append(paths, "first_name")
	}

	if update.LastName != nil {
		account.LastName = *update.LastName
		paths = append(paths, "last_name")
	}

	if update.DateOfBirth != nil {
		account.DateOfBirth = update.DateOfBirth
		paths = append(paths, "date_of_birth")
	}

	if update.Gender != nil {
		account.Gender = *update.Gender
		paths = append(paths, "gender")
	}

	if update.AvatarURL != nil {
		account.AvatarURL = *update.AvatarURL
		paths = append(paths, "avatar_url")
	}

	updated, err := s.storage.UpdateAccount(ctx, account, paths)
	if err != nil {
		return nil, integrityError(err, "failed to update profile")
	}

	return updated, nil
}

// DeleteAccount removes an account. When the account owns a tenant, the
// accounts of that tenant's agents go with it; everything else hangs off
// the profile and is removed by the schema's cascades.
func (s *Service) DeleteAccount(ctx context.Context, p *authorization.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "accounts.Service.DeleteAccount")
	defer span.End()

	return s.tx.WithTx(ctx, func(ctx context.Context) error {
		account, err := s.storage.GetAccountByID(ctx, id)
		if err != nil {
			return err
		}

		if !authorization.CanDeleteAccount(p, account) {
			return storage.ErrNotFound
		}

		profile, err := s.storage.GetProfileByAccountID(ctx, id)
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			return err
		}

		if profile != nil {
			n, err := s.storage.DeleteAgentAccountsByOrganisation(ctx, profile.ID)
			if err != nil {
				return err
			}

			if n > 0 {
				s.logger.Infow("deleted agent accounts with their tenant", "account_id", id, "agents", n)
			}
		}

		if err := s.storage.DeleteAccount(ctx, id); err != nil {
			return err
		}

		s.logger.Security().UserDeleted(p.AccountID, id)

		return nil
	})
}

// integrityError turns unique violations into field errors for the client.
func integrityError(err error, msg string) error {
	if errors.Is(err, storage.ErrDuplicateKey) {
		if field, ok := storage.DuplicateKeyField(err); ok {
			return httptypes.NewValidationError(field, "is already in use")
		}
		return httptypes.NewValidationError("request", "conflicts with an existing record")
	}

	var verr *httptypes.ValidationError
	if errors.As(err, &verr) {
		return err
	}

	return fmt.Errorf("%s: %w", msg, err)
}

func actorID(ctx context.Context) string {
	if p, ok := authorization.PrincipalFromContext(ctx); ok {
		return p.AccountID
	}
	return "anonymous"
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	verifier VerifierInterface,
	hasher PasswordHasherInterface,
	phones PhoneNormalizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.verifier = verifier
	s.hasher = hasher
	s.phones = phones

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
