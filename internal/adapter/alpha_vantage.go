// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

const (
	globalQuotePath  = `$["Global Quote"]`
	globalQuotePrice = `$["Global Quote"]["05. price"]`
)

type alphaVantageGateway struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewAlphaVantageGateway constructs a [QuoteGateway] backed by the Alpha
// Vantage GLOBAL_QUOTE endpoint. An empty API key is accepted here; every
// GetQuote call then fails with [ErrQuoteAPIKeyNotConfigured].
func NewAlphaVantageGateway(cfg config.Adapter, logger *logger.Logger) QuoteGateway {
	if cfg.QuoteAPIKey == "" {
		logger.Warn().Msg("quote api key is not configured, quote operations will fail")
	}

	return &alphaVantageGateway{
		client: utils.NewHTTPClient(cfg.QuoteBaseURL, cfg.RequestTimeout),
		apiKey: cfg.QuoteAPIKey,
		logger: logger,
	}
}

// GetQuote implements [QuoteGateway]. It performs a single
// GET /query?function=GLOBAL_QUOTE request without retries.
func (a *alphaVantageGateway) GetQuote(ctx context.Context, symbol string) (models.Quote, error) {
	log := logger.FromContext(ctx)

	if a.apiKey == "" {
		return models.Quote{}, ErrQuoteAPIKeyNotConfigured
	}

	quote, err := a.getQuote(ctx, symbol)
	if err != nil && !errors.Is(err, ErrQuoteNotFound) {
		log.Err(err).
			Str("func", "alphaVantageGateway.GetQuote").
			Str("symbol", symbol).
			Msg("failed to fetch quote")
	}

	return quote, err
}

func (a *alphaVantageGateway) getQuote(ctx context.Context, symbol string) (models.Quote, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"function": "GLOBAL_QUOTE",
			"symbol":   symbol,
			"apikey":   a.apiKey,
		}).
		Get("/query")
	if err != nil {
		return models.Quote{}, fmt.Errorf("%w: quote request: %w", ErrUpstream, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Quote{}, err
	}

	var body any
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.Quote{}, fmt.Errorf("%w: decode quote response: %w", ErrUpstream, err)
	}

	obj, ok := body.(map[string]any)
	if !ok {
		return models.Quote{}, fmt.Errorf("%w: unexpected quote response shape", ErrUpstream)
	}
	if err = mapProviderNotice(obj); err != nil {
		return models.Quote{}, err
	}

	return parseGlobalQuote(symbol, body)
}

// parseGlobalQuote extracts the "Global Quote" object. A missing or empty
// object, or one without a price, means the symbol is unknown.
func parseGlobalQuote(symbol string, body any) (models.Quote, error) {
	raw, err := jsonpath.Get(globalQuotePath, body)
	if err != nil {
		return models.Quote{}, fmt.Errorf("%w: %s", ErrQuoteNotFound, symbol)
	}
	fields, ok := raw.(map[string]any)
	if !ok || len(fields) == 0 {
		return models.Quote{}, fmt.Errorf("%w: %s", ErrQuoteNotFound, symbol)
	}

	rawPrice, err := jsonpath.Get(globalQuotePrice, body)
	if err != nil {
		return models.Quote{}, fmt.Errorf("%w: %s: no price", ErrQuoteNotFound, symbol)
	}
	price, err := decimal.NewFromString(fmt.Sprint(rawPrice))
	if err != nil {
		return models.Quote{}, fmt.Errorf("%w: invalid price %v: %w", ErrUpstream, rawPrice, err)
	}

	quote := models.Quote{
		Symbol:           stringField(fields, "01. symbol"),
		Open:             decimalField(fields, "02. open"),
		High:             decimalField(fields, "03. high"),
		Low:              decimalField(fields, "04. low"),
		Price:            price,
		LatestTradingDay: stringField(fields, "07. latest trading day"),
		PreviousClose:    decimalField(fields, "08. previous close"),
		Change:           decimalField(fields, "09. change"),
		ChangePercent:    stringField(fields, "10. change percent"),
	}
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}
	if volume, err := strconv.ParseInt(stringField(fields, "06. volume"), 10, 64); err == nil {
		quote.Volume = volume
	}

	return quote, nil
}

func stringField(fields map[string]any, key string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// decimalField returns zero for absent or malformed values.
func decimalField(fields map[string]any, key string) decimal.Decimal {
	d, err := decimal.NewFromString(stringField(fields, key))
	if err != nil {
		return decimal.Zero
	}
	return d
}
