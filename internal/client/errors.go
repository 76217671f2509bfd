// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	errNoServices = errors.New("client services are not provided")
	errNoUI       = errors.New("client ui is not provided")
)
