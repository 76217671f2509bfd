// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the library client process lifecycle.
//
// It runs the terminal UI alongside the background workers and shuts the
// sync core and local storage down in order when the UI exits.
package client
