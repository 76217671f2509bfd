// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ServerConfig is the export host configuration.
type ServerConfig struct {
	// SchemaVersion is reported by /api/version/.
	SchemaVersion string
	// Version is the export host build version.
	Version string
	// HTTPAddress is the listen address.
	HTTPAddress string
	// RequestTimeout bounds metadata requests.
	RequestTimeout time.Duration
	// ExportDir is the directory served under "/".
	ExportDir string
	// MetricsAddress is the optional Prometheus listen address.
	MetricsAddress string
}

// GetServerConfig builds and validates the export host configuration.
func GetServerConfig() (*ServerConfig, error) {
	return getServerConfig(os.Args[1:])
}

func getServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		SchemaVersion:  cfg.App.SchemaVersion,
		Version:        cfg.App.Version,
		HTTPAddress:    cfg.Server.HTTPAddress,
		RequestTimeout: cfg.Server.RequestTimeout,
		ExportDir:      cfg.Storage.Files.ExportDir,
		MetricsAddress: cfg.Metrics.Address,
	}

	return serverCfg, serverCfg.validate()
}
