// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Start must not block: long-running work belongs in a goroutine owned by
// the worker. Stop blocks until that goroutine has exited.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}
