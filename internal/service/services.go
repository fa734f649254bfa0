package service

import (
	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
)

type Services struct {
	AuthService  AuthService
	StockService StockService
}

func NewServices(storages *store.Storages, quoteGateway adapter.QuoteGateway, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:  NewAuthService(storages.UserRepository, cfg.App, logger),
		StockService: NewStockService(storages.StockRepository, quoteGateway, logger),
	}
}
