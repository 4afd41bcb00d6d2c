// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Version is the client version shown in the TUI footer.
	Version string
	// LogLevel is the zerolog level name for the client log file.
	LogLevel string
}

// ClientSearch holds the search coordinator settings.
type ClientSearch struct {
	// Debounce is the quiet interval before a lookup is issued.
	Debounce time.Duration
	// MinTermLength is the shortest term that triggers a lookup.
	MinTermLength int
	// NotificationTTL is how long a toast stays on screen.
	NotificationTTL time.Duration
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the lookup service base URL used by the client.
	HTTPAddress string
	// RequestTimeout is the timeout applied to every lookup call.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path of the last-results cache.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// QueueSize is the buffer of the last-results persister.
	QueueSize int
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Search  ClientSearch
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Version:  cfg.App.Version,
			LogLevel: cfg.App.LogLevel,
		},
		Search: ClientSearch{
			Debounce:        cfg.Search.Debounce,
			MinTermLength:   cfg.Search.MinTermLength,
			NotificationTTL: cfg.Search.NotificationTTL,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.Cache.DSN},
		},
		Workers: ClientWorkers{QueueSize: cfg.Workers.QueueSize},
	}
}
