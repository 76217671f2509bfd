// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment. Variables are grouped by section
// prefix: APP_ (schema and build version), STORAGE_DB_ and STORAGE_FILES_
// (state database, library and export directories), ADAPTER_ (library host),
// SERVER_ (export host), WORKERS_, METRICS_ and LOG_. CONFIG names the JSON
// file. Unset variables leave their fields zero so later sources can fill them.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{RequiredIfNoDef: false}); err != nil {
		return fmt.Errorf("parse library sync env: %w", err)
	}
	return nil
}
