// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"strings"
	"time"
)

type Account struct {
	ID            string     `db:"id" json:"id"`
	Username      string     `db:"username" json:"username"`
	Email         string     `db:"email" json:"email"`
	PasswordHash  string     `db:"password_hash" json:"-"`
	IsSuperuser   bool       `db:"is_superuser" json:"is_superuser"`
	IsOrganisor   bool       `db:"is_organisor" json:"is_organisor"`
	IsAgent       bool       `db:"is_agent" json:"is_agent"`
	EmailVerified bool       `db:"email_verified" json:"email_verified"`
	PhoneNumber   *string    `db:"phone_number" json:"phone_number,omitempty"`
	FirstName     string     `db:"first_name" json:"first_name"`
	LastName      string     `db:"last_name" json:"last_name"`
	DateOfBirth   *time.Time `db:"date_of_birth" json:"date_of_birth,omitempty"`
	Gender        string     `db:"gender" json:"gender,omitempty"`
	AvatarURL     string     `db:"avatar_url" json:"avatar_url,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}

// DisplayName is the name used to greet the account owner in notifications
func (a *Account) DisplayName() string {
	name := strings.TrimSpace(a.FirstName + " " + a.LastName)
	if name == "" {
		return a.Username
	}
	return name
}

// Profile is the tenant scope owned by every account
type Profile struct {
	ID        string    `db:"id" json:"id"`
	AccountID string    `db:"account_id" json:"account_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Agent links an agent's own account to the organisation profile that owns it
type Agent struct {
	ID             string    `db:"id" json:"id"`
	AccountID      string    `db:"account_id" json:"account_id"`
	OrganisationID string    `db:"organisation_id" json:"organisation_id"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`

	Account *Account `db:"-" json:"account,omitempty"`
}

type Lead struct {
	ID             string    `db:"id" json:"id"`
	OrganisationID string    `db:"organisation_id" json:"organisation_id"`
	AgentID        *string   `db:"agent_id" json:"agent_id"`
	CategoryID     *string   `db:"category_id" json:"category_id"`
	FirstName      string    `db:"first_name" json:"first_name"`
	LastName       string    `db:"last_name" json:"last_name"`
	Age            int       `db:"age" json:"age"`
	Description    string    `db:"description" json:"description"`
	PhoneNumber    string    `db:"phone_number" json:"phone_number"`
	Email          string    `db:"email" json:"email"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

type Category struct {
	ID             string    `db:"id" json:"id"`
	OrganisationID string    `db:"organisation_id" json:"organisation_id"`
	Name           string    `db:"name" json:"name"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// VerificationToken only ever stores the hash of the value sent by email
type VerificationToken struct {
	ID        string    `db:"id"`
	AccountID string    `db:"account_id"`
	TokenHash string    `db:"token_hash"`
	CreatedAt time.Time `db:"created_at"`
	IsUsed    bool      `db:"is_used"`
}

// LeadFilter narrows a lead listing within the caller's visible set
type LeadFilter struct {
	CategoryID string
	// Unassigned keeps only leads without an agent
	Unassigned bool
}
