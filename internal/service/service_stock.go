package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/store"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/shopspring/decimal"
)

// idGenerator issues identifiers for new holdings.
type idGenerator interface {
	Generate() string
}

type stockService struct {
	stockRepository store.StockRepository
	quoteGateway    adapter.QuoteGateway

	idGenerator idGenerator
	now         func() time.Time

	logger *logger.Logger
}

func NewStockService(stockRepository store.StockRepository, quoteGateway adapter.QuoteGateway, logger *logger.Logger) StockService {
	return &stockService{
		stockRepository: stockRepository,
		quoteGateway:    quoteGateway,
		idGenerator:     utils.NewUUIDGenerator(),
		now:             time.Now,
		logger:          logger,
	}
}

// Create quotes the symbol first and persists the holding only if the quote
// succeeded. The quoted price and the current time replace whatever the
// caller put into CurrentPrice and LastUpdated.
func (s *stockService) Create(ctx context.Context, stock models.Stock, ownerID int64) (models.Stock, error) {
	log := logger.FromContext(ctx)

	quote, err := s.quoteGateway.GetQuote(ctx, stock.Symbol)
	if err != nil {
		log.Err(err).Str("symbol", stock.Symbol).Msg("quote for new stock failed")
		return models.Stock{}, fmt.Errorf("%w: %w", ErrCreationFailed, err)
	}

	stock.ID = s.idGenerator.Generate()
	stock.UserID = ownerID
	stock.CurrentPrice = decimal.NewNullDecimal(quote.Price)
	stock.LastUpdated = s.now()

	created, err := s.stockRepository.Create(ctx, stock)
	if err != nil {
		log.Err(err).Str("symbol", stock.Symbol).Msg("stock creation ended with error")
		return models.Stock{}, fmt.Errorf("%w: %w", ErrCreationFailed, err)
	}

	return created, nil
}

func (s *stockService) FindAll(ctx context.Context, ownerID int64) ([]models.Stock, error) {
	return s.stockRepository.FindAllByOwner(ctx, ownerID)
}

func (s *stockService) FindOne(ctx context.Context, id string, ownerID int64) (models.Stock, error) {
	if !utils.IsValidUUID(id) {
		return models.Stock{}, store.ErrStockNotFound
	}

	return s.stockRepository.FindOneByOwner(ctx, id, ownerID)
}

// Update applies the non-nil fields of update. An empty update returns the
// holding unchanged.
func (s *stockService) Update(ctx context.Context, id string, ownerID int64, update models.StockUpdate) (models.Stock, error) {
	if !utils.IsValidUUID(id) {
		return models.Stock{}, store.ErrStockNotFound
	}

	if update.IsEmpty() {
		return s.stockRepository.FindOneByOwner(ctx, id, ownerID)
	}

	return s.stockRepository.UpdateByOwner(ctx, id, ownerID, update)
}

func (s *stockService) Remove(ctx context.Context, id string, ownerID int64) (models.Stock, error) {
	if !utils.IsValidUUID(id) {
		return models.Stock{}, store.ErrStockNotFound
	}

	return s.stockRepository.DeleteByOwner(ctx, id, ownerID)
}

func (s *stockService) GetStockQuote(ctx context.Context, symbol string) (models.Quote, error) {
	return s.quoteGateway.GetQuote(ctx, symbol)
}

func (s *stockService) RefreshOwnerHoldings(ctx context.Context, ownerID int64) error {
	stocks, err := s.stockRepository.FindAllByOwner(ctx, ownerID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("owner_id", ownerID).Msg("listing holdings for refresh failed")
		return fmt.Errorf("listing holdings for refresh failed: %w", err)
	}

	s.refresh(ctx, stocks)
	return nil
}

func (s *stockService) RefreshAllHoldings(ctx context.Context) error {
	stocks, err := s.stockRepository.FindAll(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing all holdings for refresh failed")
		return fmt.Errorf("listing all holdings for refresh failed: %w", err)
	}

	s.refresh(ctx, stocks)
	return nil
}

// refresh re-quotes stocks strictly one after another. A failed holding is
// logged and skipped; a cancelled context stops the loop.
func (s *stockService) refresh(ctx context.Context, stocks []models.Stock) {
	log := logger.FromContext(ctx)

	var updated, failed int
	for _, stock := range stocks {
		if ctx.Err() != nil {
			log.Warn().Err(ctx.Err()).Int("left", len(stocks)-updated-failed).Msg("price refresh interrupted")
			break
		}

		quote, err := s.quoteGateway.GetQuote(ctx, stock.Symbol)
		if err != nil {
			failed++
			log.Err(err).Str("id", stock.ID).Str("symbol", stock.Symbol).Msg("failed to fetch price")
			continue
		}

		_, err = s.stockRepository.UpdateByOwner(ctx, stock.ID, stock.UserID, models.PriceUpdate(quote.Price, s.now()))
		if err != nil {
			failed++
			log.Err(err).Str("id", stock.ID).Str("symbol", stock.Symbol).Msg("failed to store refreshed price")
			continue
		}

		updated++
		log.Debug().Str("id", stock.ID).Str("symbol", stock.Symbol).Str("price", quote.Price.String()).Msg("price refreshed")
	}

	log.Info().Int("total", len(stocks)).Int("updated", updated).Int("failed", failed).Msg("price refresh finished")
}
