package validators

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func validCreateRequest() models.CreateStockRequest {
	return models.CreateStockRequest{
		Symbol:        ptr("AAPL"),
		Name:          ptr("Apple"),
		Quantity:      ptr(10.0),
		PurchasePrice: ptr(150.0),
	}
}

func TestStockValidator_ParseCreate_Success(t *testing.T) {
	v := NewStockValidator()
	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	req := validCreateRequest()
	req.Symbol = ptr("  AAPL ")
	req.Quantity = ptr(2.5)
	req.CurrentPrice = ptr(190.5)
	req.LastUpdated = &at

	stock, err := v.ParseCreate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, "AAPL", stock.Symbol)
	assert.Equal(t, "Apple", stock.Name)
	assert.True(t, stock.Quantity.Equal(decimal.RequireFromString("2.5")))
	assert.True(t, stock.PurchasePrice.Equal(decimal.NewFromInt(150)))
	require.True(t, stock.CurrentPrice.Valid)
	assert.True(t, stock.CurrentPrice.Decimal.Equal(decimal.RequireFromString("190.5")))
	assert.Equal(t, at, stock.LastUpdated)
	assert.Empty(t, stock.ID)
	assert.Zero(t, stock.UserID)
}

func TestStockValidator_ParseCreate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(r *models.CreateStockRequest)
		wantErrs []error
	}{
		{
			name:     "missing symbol",
			mutate:   func(r *models.CreateStockRequest) { r.Symbol = nil },
			wantErrs: []error{ErrSymbolRequired},
		},
		{
			name:     "blank name",
			mutate:   func(r *models.CreateStockRequest) { r.Name = ptr("   ") },
			wantErrs: []error{ErrNameRequired},
		},
		{
			name:     "missing quantity",
			mutate:   func(r *models.CreateStockRequest) { r.Quantity = nil },
			wantErrs: []error{ErrQuantityRequired},
		},
		{
			name:     "missing purchase price",
			mutate:   func(r *models.CreateStockRequest) { r.PurchasePrice = nil },
			wantErrs: []error{ErrPurchasePriceRequired},
		},
		{
			name:     "negative quantity",
			mutate:   func(r *models.CreateStockRequest) { r.Quantity = ptr(-1.0) },
			wantErrs: []error{ErrNegativeQuantity},
		},
		{
			name:     "negative current price",
			mutate:   func(r *models.CreateStockRequest) { r.CurrentPrice = ptr(-0.01) },
			wantErrs: []error{ErrNegativePrice},
		},
		{
			name:     "infinite purchase price",
			mutate:   func(r *models.CreateStockRequest) { r.PurchasePrice = ptr(math.Inf(1)) },
			wantErrs: []error{ErrInvalidNumber},
		},
		{
			name: "several errors reported together",
			mutate: func(r *models.CreateStockRequest) {
				r.Symbol = nil
				r.Name = nil
				r.Quantity = nil
			},
			wantErrs: []error{ErrSymbolRequired, ErrNameRequired, ErrQuantityRequired},
		},
	}

	v := NewStockValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(&req)

			_, err := v.ParseCreate(context.Background(), req)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestStockValidator_ParseUpdate(t *testing.T) {
	v := NewStockValidator()

	t.Run("only quantity", func(t *testing.T) {
		update, err := v.ParseUpdate(context.Background(), models.UpdateStockRequest{Quantity: ptr(20.0)})
		require.NoError(t, err)

		require.NotNil(t, update.Quantity)
		assert.True(t, update.Quantity.Equal(decimal.NewFromInt(20)))
		assert.Nil(t, update.Symbol)
		assert.Nil(t, update.Name)
		assert.Nil(t, update.PurchasePrice)
		assert.Nil(t, update.CurrentPrice)
		assert.Nil(t, update.LastUpdated)
	})

	t.Run("empty body", func(t *testing.T) {
		update, err := v.ParseUpdate(context.Background(), models.UpdateStockRequest{})
		require.NoError(t, err)
		assert.True(t, update.IsEmpty())
	})

	t.Run("blank symbol", func(t *testing.T) {
		_, err := v.ParseUpdate(context.Background(), models.UpdateStockRequest{Symbol: ptr("")})
		assert.ErrorIs(t, err, ErrValidation)
		assert.ErrorIs(t, err, ErrSymbolRequired)
	})

	t.Run("negative purchase price", func(t *testing.T) {
		_, err := v.ParseUpdate(context.Background(), models.UpdateStockRequest{PurchasePrice: ptr(-5.0)})
		assert.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("trims text fields", func(t *testing.T) {
		update, err := v.ParseUpdate(context.Background(), models.UpdateStockRequest{Name: ptr(" Apple Inc. ")})
		require.NoError(t, err)
		assert.Equal(t, "Apple Inc.", *update.Name)
	})
}

func TestStockValidator_Validate(t *testing.T) {
	v := NewStockValidator()
	ctx := context.Background()

	req := validCreateRequest()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.NoError(t, v.Validate(ctx, models.UpdateStockRequest{}))

	req.Name = nil
	assert.ErrorIs(t, v.Validate(ctx, req), ErrNameRequired)
	assert.NoError(t, v.Validate(ctx, req, FieldSymbol, FieldQuantity), "scoped validation skips name")

	assert.ErrorIs(t, v.Validate(ctx, req, "volume"), ErrUnknownField)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}
