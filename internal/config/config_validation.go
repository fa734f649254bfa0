// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The JWT signing key and the database DSN are mandatory. The quote API key
// is deliberately not checked here: quote operations report a configuration
// error on use instead.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: JWT_SECRET is required", ErrInvalidAppConfigs)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost must be within [%d, %d]", ErrInvalidAppConfigs, bcrypt.MinCost, bcrypt.MaxCost)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: DATABASE_URI is required", ErrInvalidStorageConfigs)
	}

	if cfg.Adapter.QuoteBaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	if _, _, err := cfg.Workers.PriceRefreshTime(); err != nil {
		return err
	}

	return nil
}
