// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values used when no other source sets a field.
const (
	DefaultSchemaVersion       = "3"
	DefaultHostAddress         = "https://readonly.sefaria.org/static/ios-export"
	DefaultDSN                 = "library-sync.db"
	DefaultLibraryDir          = "library-data"
	DefaultExportDir           = "export"
	DefaultServerAddress       = "localhost:8080"
	DefaultRequestTimeout      = 30 * time.Second
	DefaultUpdateCheckInterval = time.Hour
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			SchemaVersion: DefaultSchemaVersion,
		},
		Storage: Storage{
			DB:    DB{DSN: DefaultDSN},
			Files: Files{LibraryDir: DefaultLibraryDir, ExportDir: DefaultExportDir},
		},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHostAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{
			UpdateCheckInterval: DefaultUpdateCheckInterval,
		},
	}
}
