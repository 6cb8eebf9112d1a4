// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

type PasswordHasher struct {
	cost int
}

func (h *PasswordHasher) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(hash), nil
}

// ComparePasswordAndHash reports whether password matches the bcrypt hash.
func (h *PasswordHasher) ComparePasswordAndHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// NewPasswordHasher falls back to bcrypt.DefaultCost for out of range costs.
func NewPasswordHasher(cost int) *PasswordHasher {
	h := new(PasswordHasher)

	h.cost = cost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		h.cost = bcrypt.DefaultCost
	}

	return h
}
