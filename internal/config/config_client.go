// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SchemaVersion is the export schema the client downloads and records
	// after every successful update check.
	SchemaVersion string
	// Version is the client build version.
	Version string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HostURL is the root URL of the library host, without the schema.
	HostURL string
	// RequestTimeout is the timeout for manifest and auxiliary requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// LibraryDir is the data directory holding "library" and "tmp".
	LibraryDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// UpdateCheckInterval defines how often the update check job runs.
	UpdateCheckInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains the library host location and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
	// MetricsAddress is the optional Prometheus listen address.
	MetricsAddress string
	// LogDir is the directory of the client log file.
	LogDir string
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			SchemaVersion: cfg.App.SchemaVersion,
			Version:       cfg.App.Version,
		},
		Adapter: ClientAdapter{
			HostURL:        cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
			LibraryDir: cfg.Storage.Files.LibraryDir,
		},
		Workers:        ClientWorkers{UpdateCheckInterval: cfg.Workers.UpdateCheckInterval},
		MetricsAddress: cfg.Metrics.Address,
		LogDir:         cfg.Log.Dir,
	}

	return clientCfg, clientCfg.validate()
}
