// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/shopspring/decimal"

// Quote is a point-in-time price of a ticker symbol as reported by the
// quote provider. JSON keys follow the provider's "Global Quote" object.
type Quote struct {
	Symbol           string          `json:"01. symbol"`
	Open             decimal.Decimal `json:"02. open"`
	High             decimal.Decimal `json:"03. high"`
	Low              decimal.Decimal `json:"04. low"`
	Price            decimal.Decimal `json:"05. price"`
	Volume           int64           `json:"06. volume"`
	LatestTradingDay string          `json:"07. latest trading day"`
	PreviousClose    decimal.Decimal `json:"08. previous close"`
	Change           decimal.Decimal `json:"09. change"`
	ChangePercent    string          `json:"10. change percent"`
}
