package http

import (
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator *validators.StockValidator

	frontendURI    string
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewStockValidator(),
		frontendURI:    cfg.FrontendURI,
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}
