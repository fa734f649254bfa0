// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices and quantities are rendered as JSON numbers, not strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Stock is a user's recorded stock position.
//
// Every Stock has exactly one owner (UserID). Repository reads and writes are
// always scoped by the pair (ID, UserID).
type Stock struct {
	// ID is the system-generated identifier (UUIDv7 string).
	ID string `json:"id"`

	// UserID is the owner of the holding.
	UserID int64 `json:"userId"`

	// Symbol is the ticker symbol used to fetch quotes, e.g. "AAPL".
	Symbol string `json:"symbol"`

	// Name is a free-form display name.
	Name string `json:"name"`

	// Quantity is the number of shares held; fractional values are allowed.
	Quantity decimal.Decimal `json:"quantity"`

	// PurchasePrice is the price per share paid by the user.
	PurchasePrice decimal.Decimal `json:"purchasePrice"`

	// CurrentPrice is the last known quote price. It is null until the first
	// successful quote.
	CurrentPrice decimal.NullDecimal `json:"currentPrice"`

	// LastUpdated is the moment CurrentPrice was last refreshed.
	LastUpdated time.Time `json:"lastUpdated"`
}

// StockUpdate is a partial update of a holding. Only non-nil fields are
// written.
type StockUpdate struct {
	Symbol        *string
	Name          *string
	Quantity      *decimal.Decimal
	PurchasePrice *decimal.Decimal
	CurrentPrice  *decimal.Decimal
	LastUpdated   *time.Time
}

// IsEmpty reports whether the update changes nothing.
func (u StockUpdate) IsEmpty() bool {
	return u.Symbol == nil &&
		u.Name == nil &&
		u.Quantity == nil &&
		u.PurchasePrice == nil &&
		u.CurrentPrice == nil &&
		u.LastUpdated == nil
}

// PriceUpdate builds the update applied after a successful quote refresh.
func PriceUpdate(price decimal.Decimal, at time.Time) StockUpdate {
	return StockUpdate{CurrentPrice: &price, LastUpdated: &at}
}

// CreateStockRequest is the JSON body of POST /stocks.
//
// Pointer fields distinguish "absent" from zero so that required fields can
// be validated explicitly.
type CreateStockRequest struct {
	Symbol        *string    `json:"symbol"`
	Name          *string    `json:"name"`
	Quantity      *float64   `json:"quantity"`
	PurchasePrice *float64   `json:"purchasePrice"`
	CurrentPrice  *float64   `json:"currentPrice,omitempty"`
	LastUpdated   *time.Time `json:"lastUpdated,omitempty"`
}

// UpdateStockRequest is the JSON body of PUT /stocks/{id}. All fields are
// optional.
type UpdateStockRequest struct {
	Symbol        *string    `json:"symbol,omitempty"`
	Name          *string    `json:"name,omitempty"`
	Quantity      *float64   `json:"quantity,omitempty"`
	PurchasePrice *float64   `json:"purchasePrice,omitempty"`
	CurrentPrice  *float64   `json:"currentPrice,omitempty"`
	LastUpdated   *time.Time `json:"lastUpdated,omitempty"`
}
