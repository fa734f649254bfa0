package service

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers users, checks their credentials and manages session
// tokens.
type AuthService interface {
	Register(ctx context.Context, username, password string) (models.User, error)
	ValidateCredentials(ctx context.Context, username, password string) (models.User, error)
	Login(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// StockService manages the holdings of a single owner and keeps their cached
// prices fresh.
type StockService interface {
	Create(ctx context.Context, stock models.Stock, ownerID int64) (models.Stock, error)
	FindAll(ctx context.Context, ownerID int64) ([]models.Stock, error)
	FindOne(ctx context.Context, id string, ownerID int64) (models.Stock, error)
	Update(ctx context.Context, id string, ownerID int64, update models.StockUpdate) (models.Stock, error)
	Remove(ctx context.Context, id string, ownerID int64) (models.Stock, error)

	GetStockQuote(ctx context.Context, symbol string) (models.Quote, error)

	// RefreshOwnerHoldings re-quotes every holding of ownerID one by one.
	// Failures of single holdings are logged and skipped.
	RefreshOwnerHoldings(ctx context.Context, ownerID int64) error
	// RefreshAllHoldings does the same for every holding in the system.
	RefreshAllHoldings(ctx context.Context) error
}
