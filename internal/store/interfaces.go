package store

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts. Usernames are unique.
type UserRepository interface {
	// CreateUser inserts a new account and returns its public view.
	CreateUser(ctx context.Context, username, passwordHash string) (models.User, error)
	// FindUserByUsername returns the stored credentials of an account.
	FindUserByUsername(ctx context.Context, username string) (models.Credentials, error)
}

// StockRepository persists stock holdings. Every method except FindAll is
// scoped by the owner's user id.
type StockRepository interface {
	Create(ctx context.Context, stock models.Stock) (models.Stock, error)
	FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Stock, error)
	FindOneByOwner(ctx context.Context, id string, ownerID int64) (models.Stock, error)
	UpdateByOwner(ctx context.Context, id string, ownerID int64, update models.StockUpdate) (models.Stock, error)
	DeleteByOwner(ctx context.Context, id string, ownerID int64) (models.Stock, error)

	// FindAll returns every holding of every user. It is used by the daily
	// price refresh only.
	FindAll(ctx context.Context) ([]models.Stock, error)
}
