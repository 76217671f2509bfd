// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the export host transport: startup, signal handling
// and graceful shutdown of the HTTP server.
package server
