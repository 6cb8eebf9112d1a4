// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package accounts

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/phone"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package accounts -destination ./mock_interfaces.go -source=./interfaces.go

type testMocks struct {
	storage  *MockStorageInterface
	tx       *MockTxRunnerInterface
	verifier *MockVerifierInterface
	hasher   *MockPasswordHasherInterface
}

func newTestService(ctrl *gomock.Controller) (*Service, testMocks) {
	return newTestServiceWithLogger(ctrl, logging.NewNoopLogger())
}

func newTestServiceWithLogger(ctrl *gomock.Controller, logger logging.LoggerInterface) (*Service, testMocks) {
	m := testMocks{
		storage:  NewMockStorageInterface(ctrl),
		tx:       NewMockTxRunnerInterface(ctrl),
		verifier: NewMockVerifierInterface(ctrl),
		hasher:   NewMockPasswordHasherInterface(ctrl),
	}

	s := NewService(m.storage, m.tx, m.verifier, m.hasher, phone.NewNormalizer("GB"), tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logger)

	return s, m
}

func runInTx(tx *MockTxRunnerInterface) {
	tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)
}

func strPtr(s string) *string {
	return &s
}

func TestService_Signup(t *testing.T) {
	tokenErr := errors.New("insert failed")

	tests := []struct {
		name          string
		input         NewAccount
		setupMocks    func(testMocks)
		expectedErr   error
		expectedField string
	}{
		{
			name:  "organisor is created and notified",
			input: NewAccount{Username: " alice ", Email: "alice@example.com", Password: "s3cret-pass", PhoneNumber: "020 7031 3000"},
			setupMocks: func(m testMocks) {
				m.hasher.EXPECT().HashPassword("s3cret-pass").Return("hashed", nil)
				runInTx(m.tx)
				m.storage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, a *types.Account) (*types.Account, error) {
						if a.Username != "alice" || !a.IsOrganisor || a.IsAgent || a.EmailVerified {
							t.Errorf("unexpected account to create: %+v", a)
						}
						if a.PhoneNumber == nil || *a.PhoneNumber != "+442070313000" {
							t.Errorf("expected normalized phone number, got %v", a.PhoneNumber)
						}
						if a.PasswordHash != "hashed" {
							t.Errorf("expected hashed password, got %q", a.PasswordHash)
						}
						created := *a
						created.ID = "acc-1"
						return &created, nil
					},
				)
				m.storage.EXPECT().CreateProfile(gomock.Any(), "acc-1").Return(&types.Profile{ID: "profile-1", AccountID: "acc-1"}, nil)
				m.verifier.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return("raw-token", nil)
				m.verifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), "raw-token").Return(nil)
			},
		},
		{
			name:  "invalid phone number",
			input: NewAccount{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass", PhoneNumber: "12"},
			setupMocks: func(m testMocks) {
			},
			expectedField: "phone_number",
		},
		{
			name:  "duplicate email is a field error",
			input: NewAccount{Username: "alice", Email: "ALICE@example.com", Password: "s3cret-pass"},
			setupMocks: func(m testMocks) {
				m.hasher.EXPECT().HashPassword("s3cret-pass").Return("hashed", nil)
				runInTx(m.tx)
				m.storage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(nil, &storage.DuplicateKeyError{Field: "email"})
			},
			expectedField: "email",
		},
		{
			name:  "token failure aborts the whole unit",
			input: NewAccount{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"},
			setupMocks: func(m testMocks) {
				m.hasher.EXPECT().HashPassword("s3cret-pass").Return("hashed", nil)
				m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(context.Context) error) error {
						err := fn(ctx)
						if err == nil {
							t.Error("expected the transaction body to fail")
						}
						return err
					},
				)
				m.storage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&types.Account{ID: "acc-1"}, nil)
				m.storage.EXPECT().CreateProfile(gomock.Any(), "acc-1").Return(&types.Profile{ID: "profile-1"}, nil)
				m.verifier.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return("", tokenErr)
			},
			expectedErr: tokenErr,
		},
		{
			name:  "notification failure keeps the account",
			input: NewAccount{Username: "alice", Email: "alice@example.com", Password: "s3cret-pass"},
			setupMocks: func(m testMocks) {
				m.hasher.EXPECT().HashPassword("s3cret-pass").Return("hashed", nil)
				runInTx(m.tx)
				m.storage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&types.Account{ID: "acc-1", Email: "alice@example.com"}, nil)
				m.storage.EXPECT().CreateProfile(gomock.Any(), "acc-1").Return(&types.Profile{ID: "profile-1"}, nil)
				m.verifier.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return("raw-token", nil)
				m.verifier.EXPECT().SendVerification(gomock.Any(), gomock.Any(), "raw-token").Return(errors.New("relay down"))
			},
			expectedErr: ErrNotificationFailed,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(m)

			in := test.input
			account, err := s.Signup(context.Background(), &in)

			if test.expectedField != "" {
				var verr *httptypes.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("expected validation error, got %v", err)
				}
				if _, ok := verr.Fields[test.expectedField]; !ok {
					t.Fatalf("expected error on %s, got %v", test.expectedField, verr.Fields)
				}
				return
			}

			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v, got %v", test.expectedErr, err)
				}
				if errors.Is(test.expectedErr, ErrNotificationFailed) && account == nil {
					t.Fatal("expected the created account alongside the notification failure")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if account.ID != "acc-1" {
				t.Fatalf("expected account acc-1, got %s", account.ID)
			}
		})
	}
}

func TestService_CreateSuperuser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	s, m := newTestService(ctrl)

	m.hasher.EXPECT().HashPassword("r00t-pass").Return("hashed", nil)
	runInTx(m.tx)
	runInTx(m.tx)
	m.storage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *types.Account) (*types.Account, error) {
			if !a.IsSuperuser || a.IsOrganisor || a.IsAgent {
				t.Errorf("expected a superuser only account, got %+v", a)
			}
			a.ID = "root"
			return a, nil
		},
	)
	m.storage.EXPECT().CreateProfile(gomock.Any(), "root").Return(&types.Profile{ID: "profile-root", AccountID: "root"}, nil)
	m.verifier.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return("raw-token", nil)
	m.storage.EXPECT().SetEmailVerified(gomock.Any(), "root").Return(nil)

	account, err := s.CreateSuperuser(context.Background(), &NewAccount{Username: "root", Email: "root@example.com", Password: "r00t-pass", IsOrganisor: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !account.EmailVerified {
		t.Fatal("expected superuser to be verified on creation")
	}
}

func TestService_UserCreatedIsRecordedAfterCommit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	core, logs := observer.New(zap.InfoLevel)
	s, m := newTestServiceWithLogger(ctrl, logging.NewLoggerWithCore(core))

	m.hasher.EXPECT().HashPassword("s3cret-pass").Return("hashed", nil)
	runInTx(m.tx)
	m.storage.EXPECT().CreateAccount(gomock.Any(), gomock.Any()).Return(&types.Account{ID: "acc-1", Email: "bob@example.com"}, nil)
	m.storage.EXPECT().CreateProfile(gomock.Any(), "acc-1").Return(&types.Profile{ID: "profile-1", AccountID: "acc-1"}, nil)
	m.verifier.EXPECT().IssueToken(gomock.Any(), gomock.Any()).Return("raw-token", nil)

	ctx := authorization.WithPrincipal(context.Background(), &authorization.Principal{AccountID: "org-acc", Kind: authorization.KindOrganisor, TenantID: "org-1"})

	reg, err := s.CreateAccount(ctx, &NewAccount{Username: "bob", Email: "bob@example.com", Password: "s3cret-pass", IsAgent: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	event := zap.String("event", "user_created:org-acc,acc-1")

	if got := logs.FilterField(event).Len(); got != 0 {
		t.Fatalf("expected no user_created event before the registration is committed, got %d", got)
	}

	m.verifier.EXPECT().SendVerification(gomock.Any(), reg.Account, "raw-token").Return(nil)

	if err := s.NotifyRegistration(ctx, reg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := logs.FilterField(event).Len(); got != 1 {
		t.Fatalf("expected one user_created event after notification, got %d", got)
	}
}

func TestService_UpdateProfile(t *testing.T) {
	caller := &authorization.Principal{AccountID: "acc-1", Kind: authorization.KindAgent, TenantID: "profile-9", AgentID: "agent-1"}

	tests := []struct {
		name          string
		update        ProfileUpdate
		setupMocks    func(testMocks)
		expectedPaths []string
		expectedField string
	}{
		{
			name:   "names and phone",
			update: ProfileUpdate{FirstName: strPtr("Alice"), PhoneNumber: strPtr("+44 20 7031 3000")},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1"}, nil)
			},
			expectedPaths: []string{"phone_number", "first_name"},
		},
		{
			name:   "password is hashed",
			update: ProfileUpdate{Password: strPtr("n3w-password")},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1"}, nil)
				m.hasher.EXPECT().HashPassword("n3w-password").Return("hashed", nil)
			},
			expectedPaths: []string{"password_hash"},
		},
		{
			name:   "clearing the phone number",
			update: ProfileUpdate{PhoneNumber: strPtr("")},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1", PhoneNumber: strPtr("+442070313000")}, nil)
			},
			expectedPaths: []string{"phone_number"},
		},
		{
			name:   "invalid phone",
			update: ProfileUpdate{PhoneNumber: strPtr("abc")},
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1"}, nil)
			},
			expectedField: "phone_number",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			test.setupMocks(m)

			if test.expectedPaths != nil {
				m.storage.EXPECT().UpdateAccount(gomock.Any(), gomock.Any(), test.expectedPaths).DoAndReturn(
					func(_ context.Context, a *types.Account, _ []string) (*types.Account, error) {
						return a, nil
					},
				)
			}

			update := test.update
			account, err := s.UpdateProfile(context.Background(), caller, &update)

			if test.expectedField != "" {
				var verr *httptypes.ValidationError
				if !errors.As(err, &verr) || verr.Fields[test.expectedField] == "" {
					t.Fatalf("expected validation error on %s, got %v", test.expectedField, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if account.ID != "acc-1" {
				t.Fatalf("expected own account, got %s", account.ID)
			}
		})
	}
}

func TestService_DeleteAccount(t *testing.T) {
	superuser := &authorization.Principal{AccountID: "root", Kind: authorization.KindSuperuser}
	organisor := &authorization.Principal{AccountID: "acc-1", Kind: authorization.KindOrganisor, TenantID: "profile-1"}

	tests := []struct {
		name        string
		principal   *authorization.Principal
		setupMocks  func(testMocks)
		expectedErr error
	}{
		{
			name:      "organisor account takes its agents along",
			principal: superuser,
			setupMocks: func(m testMocks) {
				gomock.InOrder(
					m.storage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1", IsOrganisor: true}, nil),
					m.storage.EXPECT().GetProfileByAccountID(gomock.Any(), "acc-1").Return(&types.Profile{ID: "profile-1", AccountID: "acc-1"}, nil),
					m.storage.EXPECT().DeleteAgentAccountsByOrganisation(gomock.Any(), "profile-1").Return(int64(2), nil),
					m.storage.EXPECT().DeleteAccount(gomock.Any(), "acc-1").Return(nil),
				)
			},
		},
		{
			name:      "agent cascade failure aborts",
			principal: superuser,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1", IsOrganisor: true}, nil)
				m.storage.EXPECT().GetProfileByAccountID(gomock.Any(), "acc-1").Return(&types.Profile{ID: "profile-1", AccountID: "acc-1"}, nil)
				m.storage.EXPECT().DeleteAgentAccountsByOrganisation(gomock.Any(), "profile-1").Return(int64(0), storage.ErrForeignKeyViolation)
			},
			expectedErr: storage.ErrForeignKeyViolation,
		},
		{
			name:      "unknown account",
			principal: superuser,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name:      "non superuser cannot delete",
			principal: organisor,
			setupMocks: func(m testMocks) {
				m.storage.EXPECT().GetAccountByID(gomock.Any(), "acc-1").Return(&types.Account{ID: "acc-1", IsOrganisor: true}, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			s, m := newTestService(ctrl)
			runInTx(m.tx)
			test.setupMocks(m)

			err := s.DeleteAccount(context.Background(), test.principal, "acc-1")

			if !errors.Is(err, test.expectedErr) {
				t.Fatalf("expected %v, got %v", test.expectedErr, err)
			}
		})
	}
}
