// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	u, err := url.Parse(cfg.Adapter.SWAPIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: swapi url %q", ErrInvalidAdapterConfigs, cfg.Adapter.SWAPIURL)
	}

	if cfg.Server.GRPCAddress != "" && cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
