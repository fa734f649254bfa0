// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultTokenIssuer      = "go-stock-keeper"
	defaultTokenDuration    = time.Hour
	defaultPasswordHashCost = 10
	defaultPort             = 3000
	defaultFrontendURI      = "http://localhost:3000"
	defaultQuoteBaseURL     = "https://www.alphavantage.co"
	defaultQuoteTimeout     = 10 * time.Second
	defaultPriceRefreshAt   = "00:00"
)

// defaultConfig holds the values used for every field that no other source set.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordHashCost,
		},
		Server: Server{
			Port:        defaultPort,
			FrontendURI: defaultFrontendURI,
		},
		Adapter: Adapter{
			QuoteBaseURL:   defaultQuoteBaseURL,
			RequestTimeout: defaultQuoteTimeout,
		},
		Workers: Workers{
			PriceRefreshAt: defaultPriceRefreshAt,
		},
	}
}
