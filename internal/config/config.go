// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-stock-keeper server. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// an optional JSON file and built-in defaults.
type StructuredConfig struct {
	// App holds token and password hashing parameters.
	App App

	// Storage holds the relational database settings.
	Storage Storage

	// Server holds the HTTP listener settings.
	Server Server

	// Adapter holds the quote provider settings.
	Adapter Adapter

	// Workers holds background job settings.
	Workers Workers

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB DB
}

// App holds authentication parameters.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify JWTs. Required.
	TokenSignKey string `env:"JWT_SECRET"`

	// TokenIssuer is embedded as the "iss" claim and checked on verification.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration controls how long an issued token stays valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost used when hashing passwords.
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`
}

// Server holds the HTTP server settings.
type Server struct {
	// HTTPAddress is an explicit host:port listen address. When empty the
	// server listens on all interfaces at Port.
	HTTPAddress string `env:"SERVER_ADDRESS"`

	// Port is the listen port used when HTTPAddress is empty.
	Port int `env:"PORT"`

	// FrontendURI is the single origin allowed by CORS.
	FrontendURI string `env:"FRONTEND_URI"`

	// RequestTimeout bounds request handling time; zero disables it.
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT"`
}

// Addr returns the address the HTTP server should listen on.
func (s Server) Addr() string {
	if s.HTTPAddress != "" {
		return s.HTTPAddress
	}

	return fmt.Sprintf(":%d", s.Port)
}

// DB holds the database connection settings.
type DB struct {
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds the external quote provider settings.
type Adapter struct {
	// QuoteAPIKey is the Alpha Vantage API key. Quote operations fail with a
	// configuration error while it is empty.
	QuoteAPIKey string `env:"ALPHA_VANTAGE_API_KEY"`

	// QuoteBaseURL is the provider base URL.
	QuoteBaseURL string `env:"ALPHA_VANTAGE_BASE_URL"`

	// RequestTimeout bounds a single quote round trip.
	RequestTimeout time.Duration `env:"QUOTE_REQUEST_TIMEOUT"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// PriceRefreshAt is the local wall-clock time ("15:04") at which the
	// daily price refresh runs.
	PriceRefreshAt string `env:"PRICE_REFRESH_AT"`
}

// PriceRefreshTime parses PriceRefreshAt into hour and minute.
func (w Workers) PriceRefreshTime() (hour, minute int, err error) {
	t, err := time.Parse("15:04", w.PriceRefreshAt)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
	}

	return t.Hour(), t.Minute(), nil
}

// GetStructuredConfig builds the server configuration from the environment,
// the process command line, an optional JSON file and defaults.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
