// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client and the export
// host: the resty client wrapper and the uuid generator.
package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
//
// Example usage:
//
//	client := utils.NewHTTPClient("go-library-sync/1.0")
//	resp, err := client.R().Get("https://example.com/3/last_updated.json")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client that identifies itself with
// userAgent on every request. An empty userAgent keeps resty's default.
func NewHTTPClient(userAgent string) *HTTPClient {
	client := resty.New()
	if userAgent != "" {
		client.SetHeader("User-Agent", userAgent)
	}
	return &HTTPClient{Client: client}
}
