package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

// stockRepository is the PostgreSQL-backed implementation of
// [StockRepository]. Queries are built with squirrel and executed on the
// embedded [*DB] pool.
type stockRepository struct {
	*DB
	logger *logger.Logger
}

func NewStockRepository(db *DB, logger *logger.Logger) StockRepository {
	logger.Debug().Msg("creating stock repository")
	return &stockRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *stockRepository) Create(ctx context.Context, stock models.Stock) (models.Stock, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertStockQuery(ctx, stock)
	if err != nil {
		log.Err(err).Str("func", "stockRepository.Create").Msg("failed to build query")
		return models.Stock{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanStock(s.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).
			Str("func", "stockRepository.Create").
			Int64("user_id", stock.UserID).
			Str("symbol", stock.Symbol).
			Msg("failed to insert stock")
		return models.Stock{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

func (s *stockRepository) FindAllByOwner(ctx context.Context, ownerID int64) ([]models.Stock, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectStocksByOwnerQuery(ctx, ownerID)
	if err != nil {
		log.Err(err).Str("func", "stockRepository.FindAllByOwner").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stocks, err := s.queryStocks(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "stockRepository.FindAllByOwner").
			Int64("user_id", ownerID).
			Msg("failed to select stocks")
		return nil, err
	}

	return stocks, nil
}

func (s *stockRepository) FindOneByOwner(ctx context.Context, id string, ownerID int64) (models.Stock, error) {
	query, args, err := buildSelectStockByOwnerQuery(ctx, id, ownerID)
	if err != nil {
		return models.Stock{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryOne(ctx, "stockRepository.FindOneByOwner", id, ownerID, query, args)
}

func (s *stockRepository) UpdateByOwner(ctx context.Context, id string, ownerID int64, update models.StockUpdate) (models.Stock, error) {
	query, args, err := buildUpdateStockQuery(ctx, id, ownerID, update)
	if err != nil {
		return models.Stock{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryOne(ctx, "stockRepository.UpdateByOwner", id, ownerID, query, args)
}

func (s *stockRepository) DeleteByOwner(ctx context.Context, id string, ownerID int64) (models.Stock, error) {
	query, args, err := buildDeleteStockQuery(ctx, id, ownerID)
	if err != nil {
		return models.Stock{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.queryOne(ctx, "stockRepository.DeleteByOwner", id, ownerID, query, args)
}

func (s *stockRepository) FindAll(ctx context.Context) ([]models.Stock, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllStocksQuery(ctx)
	if err != nil {
		log.Err(err).Str("func", "stockRepository.FindAll").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	stocks, err := s.queryStocks(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "stockRepository.FindAll").Msg("failed to select stocks")
		return nil, err
	}

	return stocks, nil
}

// queryOne runs a statement returning at most one holding row. No row means
// the holding does not exist for this owner.
func (s *stockRepository) queryOne(ctx context.Context, funcName, id string, ownerID int64, query string, args []any) (models.Stock, error) {
	log := logger.FromContext(ctx)

	stock, err := scanStock(s.DB.QueryRowContext(ctx, query, args...))
	if isStockNotFound(err) {
		return models.Stock{}, ErrStockNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", funcName).
			Int64("user_id", ownerID).
			Str("id", id).
			Msg("failed to execute query")
		return models.Stock{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return stock, nil
}

func (s *stockRepository) queryStocks(ctx context.Context, query string, args ...any) ([]models.Stock, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stocks := make([]models.Stock, 0)
	for rows.Next() {
		stock, scanErr := scanStock(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		stocks = append(stocks, stock)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return stocks, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanStock(row rowScanner) (models.Stock, error) {
	var stock models.Stock
	err := row.Scan(
		&stock.ID,
		&stock.UserID,
		&stock.Symbol,
		&stock.Name,
		&stock.Quantity,
		&stock.PurchasePrice,
		&stock.CurrentPrice,
		&stock.LastUpdated,
	)
	return stock, err
}
