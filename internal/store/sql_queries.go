package store

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash)
    VALUES ($1, $2)
    RETURNING user_id, username, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, created_at
    FROM users
    WHERE username = $1;`
)

const stocksTable = "stocks"

var stockColumns = []string{
	"id",
	"user_id",
	"symbol",
	"name",
	"quantity",
	"purchase_price",
	"current_price",
	"last_updated",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func returningStockColumns() string {
	return "RETURNING " + strings.Join(stockColumns, ", ")
}

func buildInsertStockQuery(_ context.Context, stock models.Stock) (string, []any, error) {
	var currentPrice any
	if stock.CurrentPrice.Valid {
		currentPrice = stock.CurrentPrice.Decimal
	}

	return psql.Insert(stocksTable).
		Columns(stockColumns...).
		Values(
			stock.ID,
			stock.UserID,
			stock.Symbol,
			stock.Name,
			stock.Quantity,
			stock.PurchasePrice,
			currentPrice,
			stock.LastUpdated,
		).
		Suffix(returningStockColumns()).
		ToSql()
}

func buildSelectStocksByOwnerQuery(_ context.Context, ownerID int64) (string, []any, error) {
	return psql.Select(stockColumns...).
		From(stocksTable).
		Where(sq.Eq{"user_id": ownerID}).
		ToSql()
}

func buildSelectStockByOwnerQuery(_ context.Context, id string, ownerID int64) (string, []any, error) {
	return psql.Select(stockColumns...).
		From(stocksTable).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		ToSql()
}

func buildSelectAllStocksQuery(_ context.Context) (string, []any, error) {
	return psql.Select(stockColumns...).
		From(stocksTable).
		ToSql()
}

// buildUpdateStockQuery builds an UPDATE that writes only the non-nil fields
// of update. Columns appear in alphabetical order.
func buildUpdateStockQuery(_ context.Context, id string, ownerID int64, update models.StockUpdate) (string, []any, error) {
	set := make(map[string]any, 6)

	if update.Symbol != nil {
		set["symbol"] = *update.Symbol
	}
	if update.Name != nil {
		set["name"] = *update.Name
	}
	if update.Quantity != nil {
		set["quantity"] = *update.Quantity
	}
	if update.PurchasePrice != nil {
		set["purchase_price"] = *update.PurchasePrice
	}
	if update.CurrentPrice != nil {
		set["current_price"] = *update.CurrentPrice
	}
	if update.LastUpdated != nil {
		set["last_updated"] = *update.LastUpdated
	}

	return psql.Update(stocksTable).
		SetMap(set).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returningStockColumns()).
		ToSql()
}

func buildDeleteStockQuery(_ context.Context, id string, ownerID int64) (string, []any, error) {
	return psql.Delete(stocksTable).
		Where(sq.Eq{"id": id, "user_id": ownerID}).
		Suffix(returningStockColumns()).
		ToSql()
}
