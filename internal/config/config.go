// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// library sync client and the export host. It aggregates all
// sub-configurations and is populated by merging built-in defaults,
// environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the export schema
	// version and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local state database and the
	// library directories.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeout of the export host.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the remote library host location and request timeout
	// used by the client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Metrics holds the Prometheus endpoint settings.
	Metrics Metrics `envPrefix:"METRICS_"`

	// Log holds log output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the SQLite database settings for the persisted sync state.
	DB DB `envPrefix:"DB_"`

	// Files holds the file-system locations of the library.
	Files Files `envPrefix:"FILES_"`
}

// App holds application-level configuration values.
type App struct {
	// SchemaVersion selects the export layout on the library host. The
	// client downloads from "<host>/<schema>/" and re-checks for updates
	// whenever the stored schema differs.
	// Env: APP_SCHEMA_VERSION
	SchemaVersion string `env:"SCHEMA_VERSION"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version/ endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Server holds network and timeout settings for the export host.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds metadata requests served by the export host.
	// Archive downloads are streamed without it.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// DB holds connection settings for the local state database.
type DB struct {
	// DSN is the SQLite data source name, usually a file path
	// (e.g. "library-sync.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Files holds file-system settings for the library.
type Files struct {
	// LibraryDir is the client's data directory. The downloaded library is
	// kept in its "library" subdirectory and partial downloads in "tmp".
	// Env: STORAGE_FILES_LIBRARY_DIR
	LibraryDir string `env:"LIBRARY_DIR"`

	// ExportDir is the directory the export host serves, laid out as
	// "<schema>/last_updated.json", "<schema>/toc.json", "<schema>/<title>.zip".
	// Env: STORAGE_FILES_EXPORT_DIR
	ExportDir string `env:"EXPORT_DIR"`
}

// Adapter holds settings for the outbound connection to the library host.
type Adapter struct {
	// HTTPAddress is the root URL of the library host
	// (e.g. "https://example.org/static/ios-export"). The schema version
	// is appended to it.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds manifest and auxiliary document requests.
	// Archive transfers are bounded only by their context.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// UpdateCheckInterval is how often the client asks whether a weekly
	// update check is due.
	// Env: WORKERS_UPDATE_CHECK_INTERVAL
	UpdateCheckInterval time.Duration `env:"UPDATE_CHECK_INTERVAL"`
}

// Metrics holds the Prometheus endpoint settings.
type Metrics struct {
	// Address is the "host:port" on which /metrics is served. Empty
	// disables the endpoint.
	// Env: METRICS_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log holds log output settings.
type Log struct {
	// Dir is the directory of the client log file. Empty means the
	// directory of the executable.
	// Env: LOG_DIR
	Dir string `env:"DIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
