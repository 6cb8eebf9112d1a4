// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package phone

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var ErrInvalidPhoneNumber = errors.New("invalid phone number")

// Normalizer turns user supplied phone numbers into E.164, the form used for
// uniqueness checks.
type Normalizer struct {
	region string
}

// Normalize parses raw, falling back to the default region for numbers
// without an international prefix.
func (n *Normalizer) Normalize(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidPhoneNumber
	}

	num, err := phonenumbers.Parse(raw, n.region)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidPhoneNumber, err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return "", ErrInvalidPhoneNumber
	}

	return phonenumbers.Format(num, phonenumbers.E164), nil
}

func NewNormalizer(region string) *Normalizer {
	n := new(Normalizer)

	n.region = strings.ToUpper(region)

	return n
}
