// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// ServerConfig is the lookup server view of [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage DB
}

// GetServerConfig builds and validates the lookup server configuration.
// buildVersion is used when no source sets App.Version.
func GetServerConfig(buildVersion string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg, buildVersion)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig, buildVersion string) *ServerConfig {
	serverCfg := &ServerConfig{
		App:     cfg.App,
		Server:  cfg.Server,
		Storage: cfg.Storage.DB,
	}
	if serverCfg.App.Version == "" {
		serverCfg.App.Version = buildVersion
	}

	return serverCfg
}
