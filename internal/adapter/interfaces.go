package adapter

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// QuoteGateway fetches live quotes from an external market data provider.
type QuoteGateway interface {
	// GetQuote returns the latest quote for symbol.
	//
	// Errors: ErrQuoteAPIKeyNotConfigured, ErrQuoteNotFound, ErrUpstream.
	GetQuote(ctx context.Context, symbol string) (models.Quote, error)
}
