// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"net"
	"os"
	"strconv"
	"time"
)

// StructuredConfig is the top-level configuration container of the catalog
// server and the seeder. It is populated by merging command-line flags,
// environment variables, an optional JSON file and built-in defaults.
type StructuredConfig struct {
	// App holds process-wide settings.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds the listening addresses and request timeout.
	Server Server

	// Adapter holds the outbound SWAPI client settings used by the seeder.
	Adapter Adapter

	// Workers holds configuration for background worker processes.
	Workers Workers

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level settings.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	DB DB
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is either a PostgreSQL URL ("postgres://..." or "postgresql://...")
	// or a path to a SQLite database file.
	// Env: DATABASE_URL
	DSN string `env:"DATABASE_URL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// Host is the interface the HTTP server binds to.
	// Env: HOST
	Host string `env:"HOST"`

	// Port is the TCP port of the HTTP server.
	// Env: PORT
	Port int `env:"PORT"`

	// GRPCAddress is the optional "host:port" of the gRPC health server.
	// The gRPC server is not started when it is empty.
	// Env: GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single HTTP request. Zero disables the limit.
	// Env: REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// HTTPAddress returns the "host:port" the HTTP server listens on.
func (s Server) HTTPAddress() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Adapter holds configuration of the SWAPI client.
type Adapter struct {
	// SWAPIURL is the base URL of a SWAPI-compatible API.
	// Env: SWAPI_URL
	SWAPIURL string `env:"SWAPI_URL"`

	// RequestTimeout bounds every outbound SWAPI request.
	// Env: SWAPI_TIMEOUT
	RequestTimeout time.Duration `env:"SWAPI_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// HealthInterval is the period of the database health probe.
	// Env: HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the configuration from
// the process command line and environment.
func GetStructuredConfig() (*StructuredConfig, error) {
	return Load(flag.NewFlagSet(os.Args[0], flag.ExitOnError), os.Args[1:])
}

// Load is GetStructuredConfig with an explicit flag set and arguments.
// Callers may register their own flags on fs before calling Load.
//
// Sources are merged with the following priority (first non-zero value wins):
//  1. Command-line flags
//  2. Environment variables (a ".env" file in the working directory is
//     loaded first and never overrides variables that are already set)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
func Load(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(dotEnvFile).
		withFlags(fs, args).
		withEnv().
		withJSON().
		withDefaults().
		build()
}
