package adapter

import "errors"

var (
	// ErrQuoteAPIKeyNotConfigured means the quote provider cannot be called
	// because no API key is configured.
	ErrQuoteAPIKeyNotConfigured = errors.New("quote api key is not configured")

	// ErrQuoteNotFound means the provider has no quote for the symbol.
	ErrQuoteNotFound = errors.New("quote not found")

	// ErrUpstream covers every other provider failure: transport errors,
	// unexpected statuses, undecodable bodies and throttling notices.
	ErrUpstream = errors.New("quote provider error")
)
