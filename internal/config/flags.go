// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a export host listen address in format [host]:[port]
//	-host library host root URL
//	-d database DSN
//	-l library data directory
//	-e export directory served by the export host
//	-schema export schema version
//	-c/-config json file path with configs
//	-request-timeout metadata request timeout (e.g., "30s", "1m")
//	-update-check-interval background update check interval (e.g., "1h")
//	-metrics-address prometheus endpoint in format [host]:[port]
//	-log-dir client log directory
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, metricsAddress NetAddress
	var hostURL string
	var databaseDSN string
	var libraryDir, exportDir string
	var schemaVersion string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var updateCheckInterval time.Duration
	var logDir string

	fs := flag.NewFlagSet("library-sync", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&hostURL, "host", "", "Library host root URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&libraryDir, "l", "", "Library data directory")
	fs.StringVar(&exportDir, "e", "", "Export directory")
	fs.StringVar(&schemaVersion, "schema", "", "Export schema version")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&updateCheckInterval, "update-check-interval", 0, "Update check interval (e.g., 1h)")
	fs.Var(&metricsAddress, "metrics-address", "Prometheus endpoint host:port")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SchemaVersion: schemaVersion,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			Files: Files{
				LibraryDir: libraryDir,
				ExportDir:  exportDir,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    hostURL,
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			UpdateCheckInterval: updateCheckInterval,
		},
		Metrics: Metrics{
			Address: metricsAddress.String(),
		},
		Log: Log{
			Dir: logDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
