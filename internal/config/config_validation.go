// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/rs/zerolog"
)

// validate checks source-independent invariants of the merged
// [StructuredConfig]: no negative durations or sizes and a known log level.
func (cfg *StructuredConfig) validate() error {
	if cfg.Search.Debounce < 0 || cfg.Search.MinTermLength < 0 || cfg.Search.NotificationTTL < 0 {
		return ErrInvalidSearchConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 || cfg.Server.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Server.RateLimit < 0 || cfg.Server.RateBurst < 0 || cfg.Server.ResultLimit < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Workers.QueueSize < 0 {
		return ErrInvalidWorkerConfigs
	}

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return ErrInvalidAppConfigs
		}
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Search.Debounce == 0 || cfg.Search.MinTermLength == 0 {
		return ErrInvalidSearchConfigs
	}

	if cfg.Workers.QueueSize == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RateLimit == 0 || cfg.Server.RateBurst == 0 || cfg.Server.ResultLimit == 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.App.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
