// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package agents

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/lead-service/internal/authorization"
	httptypes "github.com/canonical/lead-service/internal/http/types"
	"github.com/canonical/lead-service/internal/logging"
	"github.com/canonical/lead-service/internal/monitoring"
	"github.com/canonical/lead-service/internal/storage"
	"github.com/canonical/lead-service/internal/tracing"
	"github.com/canonical/lead-service/internal/types"
	"github.com/canonical/lead-service/pkg/accounts"
)

type NewAgent struct {
	Username    string
	Email       string
	Password    string
	PhoneNumber string
	FirstName   string
	LastName    string

	// OrganisationID is only honoured for superusers, organisors always
	// add agents to their own tenant.
	OrganisationID string
}

type AgentUpdate struct {
	Username    *string
	PhoneNumber *string
	FirstName   *string
	LastName    *string
}

var _ ServiceInterface = (*Service)(nil)

type Service struct {
	storage  StorageInterface
	tx       TxRunnerInterface
	accounts AccountsInterface
	phones   PhoneNormalizerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *Service) ListAgents(ctx context.Context, p *authorization.Principal, page, size int64) ([]*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.ListAgents")
	defer span.End()

	return s.storage.ListAgents(ctx, authorization.AgentScope(p), page, size)
}

func (s *Service) GetAgent(ctx context.Context, p *authorization.Principal, id string) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.GetAgent")
	defer span.End()

	return s.storage.GetAgent(ctx, id, authorization.AgentDetailScope(p))
}

// CreateAgent creates the agent's account, tenant profile, membership and
// verification token in one transaction, then mails the verification link.
// A delivery failure is reported with accounts.ErrNotificationFailed
// alongside the created agent.
func (s *Service) CreateAgent(ctx context.Context, p *authorization.Principal, in *NewAgent) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.CreateAgent")
	defer span.End()

	if !authorization.CanCreateAgent(p) {
		return nil, storage.ErrNotFound
	}

	organisationID := authorization.CreationTenant(p, in.OrganisationID)
	if organisationID == "" {
		return nil, httptypes.NewValidationError("organisation_id", "this field is required")
	}

	var (
		reg   *accounts.Registration
		agent *types.Agent
	)

	err := s.tx.WithTx(ctx, func(ctx context.Context) error {
		var err error

		reg, err = s.accounts.CreateAccount(ctx, &accounts.NewAccount{
			Username:    in.Username,
			Email:       in.Email,
			Password:    in.Password,
			PhoneNumber: in.PhoneNumber,
			FirstName:   in.FirstName,
			LastName:    in.LastName,
			IsAgent:     true,
		})
		if err != nil {
			return err
		}

		agent, err = s.storage.CreateAgent(ctx, reg.Account.ID, organisationID)
		if err != nil {
			if errors.Is(err, storage.ErrForeignKeyViolation) {
				return httptypes.NewValidationError("organisation_id", "does not exist")
			}
			return fmt.Errorf("failed to create agent: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	agent.Account = reg.Account

	return agent, s.accounts.NotifyRegistration(ctx, reg)
}

func (s *Service) UpdateAgent(ctx context.Context, p *authorization.Principal, id string, update *AgentUpdate) (*types.Agent, error) {
	ctx, span := s.tracer.Start(ctx, "agents.Service.UpdateAgent")
	defer span.End()

	agent, err := s.storage.GetAgent(ctx, id, authorization.AgentScope(p))
	if err != nil {
		return nil, err
	}

	if !authorization.CanMutateAgent(p, agent) {
		return nil, storage.ErrNotFound
	}

	account := agent.Account
	paths := make([]string, 0)

	if update.Username != nil {
		account.Username = strings.TrimSpace(*update.Username)
		paths = append(paths, "username")
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

	updated, err := s.storage.UpdateAccount(ctx, account, paths)
	if err != nil {
		if field, ok := storage.DuplicateKeyField(err); ok {
			return nil, httptypes.NewValidationError(field, "is already in use")
		}
		return nil, fmt.Errorf("failed to update agent: %w", err)
	}

	agent.Account = updated

	return agent, nil
}

// DeleteAgent removes the agent's account; the membership follows it.
func (s *Service) DeleteAgent(ctx context.Context, p *authorization.Principal, id string) error {
	ctx, span := s.tracer.Start(ctx, "agents.Service.DeleteAgent")
	defer span.End()

	agent, err := s.storage.GetAgent(ctx, id, authorization.AgentScope(p))
	if err != nil {
		return err
	}

	if !authorization.CanMutateAgent(p, agent) {
		return storage.ErrNotFound
	}

	if err := s.storage.DeleteAccount(ctx, agent.AccountID); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}

	s.logger.Security().UserDeleted(p.AccountID, agent.AccountID)

	return nil
}

func NewService(
	storage StorageInterface,
	tx TxRunnerInterface,
	accounts AccountsInterface,
	phones PhoneNormalizerInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	s := new(Service)

	s.storage = storage
	s.tx = tx
	s.accounts = accounts
	s.phones = phones

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
