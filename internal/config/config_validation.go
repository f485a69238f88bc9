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
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.Files.Driver {
	case FilesDriverLocal:
		if cfg.Storage.Files.PublicDir == "" || cfg.Storage.Files.PublicURL == "" {
			return fmt.Errorf("%w: local driver needs public dir and url", ErrInvalidStorageConfigs)
		}
	case FilesDriverS3:
		if cfg.Storage.Files.S3.Bucket == "" || cfg.Storage.Files.S3.Region == "" {
			return fmt.Errorf("%w: s3 driver needs bucket and region", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown files driver %q", ErrInvalidStorageConfigs, cfg.Storage.Files.Driver)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.HashKey == "" {
		return fmt.Errorf("%w: token sign key and hash key are required", ErrInvalidAppConfigs)
	}

	if cfg.App.PasswordHashCost < bcrypt.MinCost || cfg.App.PasswordHashCost > bcrypt.MaxCost {
		return fmt.Errorf("%w: password hash cost %d out of range", ErrInvalidAppConfigs, cfg.App.PasswordHashCost)
	}

	if cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.AI.Endpoint == "" || cfg.AI.APIKey == "" || cfg.AI.Model == "" {
		return fmt.Errorf("%w: endpoint, api key and model are required", ErrInvalidAIConfigs)
	}

	if cfg.AI.Timeout <= 0 || cfg.AI.MaxTokens <= 0 {
		return fmt.Errorf("%w: timeout and max tokens must be positive", ErrInvalidAIConfigs)
	}

	if cfg.AI.Temperature != nil && (*cfg.AI.Temperature < 0 || *cfg.AI.Temperature > 2) {
		return fmt.Errorf("%w: temperature %v out of range [0, 2]", ErrInvalidAIConfigs, *cfg.AI.Temperature)
	}

	return nil
}
