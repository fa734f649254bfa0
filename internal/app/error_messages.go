// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// go-stock-keeper HTTP handlers and middleware.
//
// All Msg* constants are human-readable strings written into the "message"
// field of the response envelope. Keeping them in one place keeps the wording
// consistent throughout the API.
package app

// Success messages.
const (
	MsgRegistrationSuccessful = "Registration successful"
	MsgLoginSuccessful        = "Login successful"

	MsgStockCreated       = "Stock created successfully"
	MsgStocksFetched      = "Stocks fetched successfully"
	MsgStockFetched       = "Stock fetched successfully"
	MsgStockUpdated       = "Stock updated successfully"
	MsgStockDeleted       = "Stock deleted successfully"
	MsgQuoteFetched       = "Stock quote fetched successfully"
	MsgStockPricesUpdated = "Stock prices updated successfully"
)

// Failure messages. The ones taking an argument are format strings for the
// stock id or ticker symbol.
const (
	// MsgInvalidJSON is returned when the request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgUnauthorized is returned by the bearer-token gate.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidLoginPassword is returned when the supplied username/password
	// combination does not match any account. Unknown users and wrong
	// passwords are reported identically.
	MsgInvalidLoginPassword = "Invalid username/password"

	MsgRegistrationFailed = "Registration failed"
	MsgLoginFailed        = "Login failed"

	MsgStockCreationFailed     = "Failed to create stock"
	MsgStocksFetchFailed       = "Failed to fetch stocks"
	MsgStockNotFoundFmt        = "Stock with ID %s not found"
	MsgStockUpdateFailedFmt    = "Failed to update stock with ID %s"
	MsgStockDeleteFailedFmt    = "Failed to delete stock with ID %s"
	MsgQuoteFetchFailedFmt     = "Failed to fetch quote for symbol %s"
	MsgStockPricesUpdateFailed = "Failed to update stock prices"

	// MsgInternalServerError replaces error details that must not leak to
	// the client, such as SQL or driver messages.
	MsgInternalServerError = "internal server error"
)
