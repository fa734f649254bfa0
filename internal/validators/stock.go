// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/shopspring/decimal"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldSymbol        = "symbol"
	FieldName          = "name"
	FieldQuantity      = "quantity"
	FieldPurchasePrice = "purchasePrice"
	FieldCurrentPrice  = "currentPrice"
)

var createStockFields = []string{FieldSymbol, FieldName, FieldQuantity, FieldPurchasePrice, FieldCurrentPrice}

// StockValidator implements [Validator] for stock request bodies.
type StockValidator struct {
}

// NewStockValidator constructs a new StockValidator.
func NewStockValidator() *StockValidator {
	return &StockValidator{}
}

// Validate dispatches on the dynamic type of obj. Supported types are
// models.CreateStockRequest and models.UpdateStockRequest, by value or by
// pointer.
func (v *StockValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CreateStockRequest:
		return v.validateCreate(ctx, value, fields...)
	case *models.CreateStockRequest:
		return v.validateCreate(ctx, *value, fields...)

	case models.UpdateStockRequest:
		return v.validateUpdate(ctx, value, fields...)
	case *models.UpdateStockRequest:
		return v.validateUpdate(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// ParseCreate validates a create body and returns the holding it describes.
// ID, UserID, CurrentPrice and LastUpdated are left for the service to set.
func (v *StockValidator) ParseCreate(ctx context.Context, req models.CreateStockRequest) (models.Stock, error) {
	if err := v.validateCreate(ctx, req); err != nil {
		return models.Stock{}, err
	}

	stock := models.Stock{
		Symbol:        strings.TrimSpace(*req.Symbol),
		Name:          strings.TrimSpace(*req.Name),
		Quantity:      decimal.NewFromFloat(*req.Quantity),
		PurchasePrice: decimal.NewFromFloat(*req.PurchasePrice),
	}
	if req.CurrentPrice != nil {
		stock.CurrentPrice = decimal.NewNullDecimal(decimal.NewFromFloat(*req.CurrentPrice))
	}
	if req.LastUpdated != nil {
		stock.LastUpdated = *req.LastUpdated
	}

	return stock, nil
}

// ParseUpdate validates an update body and returns the partial update it
// describes. Absent fields stay nil.
func (v *StockValidator) ParseUpdate(ctx context.Context, req models.UpdateStockRequest) (models.StockUpdate, error) {
	if err := v.validateUpdate(ctx, req); err != nil {
		return models.StockUpdate{}, err
	}

	var update models.StockUpdate
	if req.Symbol != nil {
		symbol := strings.TrimSpace(*req.Symbol)
		update.Symbol = &symbol
	}
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		update.Name = &name
	}
	update.Quantity = toDecimal(req.Quantity)
	update.PurchasePrice = toDecimal(req.PurchasePrice)
	update.CurrentPrice = toDecimal(req.CurrentPrice)
	update.LastUpdated = req.LastUpdated

	return update, nil
}

func (v *StockValidator) validateCreate(_ context.Context, req models.CreateStockRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = createStockFields
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldSymbol:
			if req.Symbol == nil || strings.TrimSpace(*req.Symbol) == "" {
				errs = append(errs, ErrSymbolRequired)
			}
		case FieldName:
			if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
				errs = append(errs, ErrNameRequired)
			}
		case FieldQuantity:
			if req.Quantity == nil {
				errs = append(errs, ErrQuantityRequired)
				continue
			}
			errs = append(errs, checkAmount(FieldQuantity, *req.Quantity, ErrNegativeQuantity))
		case FieldPurchasePrice:
			if req.PurchasePrice == nil {
				errs = append(errs, ErrPurchasePriceRequired)
				continue
			}
			errs = append(errs, checkAmount(FieldPurchasePrice, *req.PurchasePrice, ErrNegativePrice))
		case FieldCurrentPrice:
			if req.CurrentPrice != nil {
				errs = append(errs, checkAmount(FieldCurrentPrice, *req.CurrentPrice, ErrNegativePrice))
			}
		default:
			return ErrUnknownField
		}
	}

	return validationError(errs)
}

func (v *StockValidator) validateUpdate(_ context.Context, req models.UpdateStockRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = createStockFields
	}

	var errs []error
	for _, f := range fields {
		switch f {
		case FieldSymbol:
			if req.Symbol != nil && strings.TrimSpace(*req.Symbol) == "" {
				errs = append(errs, ErrSymbolRequired)
			}
		case FieldName:
			if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
				errs = append(errs, ErrNameRequired)
			}
		case FieldQuantity:
			if req.Quantity != nil {
				errs = append(errs, checkAmount(FieldQuantity, *req.Quantity, ErrNegativeQuantity))
			}
		case FieldPurchasePrice:
			if req.PurchasePrice != nil {
				errs = append(errs, checkAmount(FieldPurchasePrice, *req.PurchasePrice, ErrNegativePrice))
			}
		case FieldCurrentPrice:
			if req.CurrentPrice != nil {
				errs = append(errs, checkAmount(FieldCurrentPrice, *req.CurrentPrice, ErrNegativePrice))
			}
		default:
			return ErrUnknownField
		}
	}

	return validationError(errs)
}

func checkAmount(field string, value float64, negativeErr error) error {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return fmt.Errorf("%s: %w", field, ErrInvalidNumber)
	}
	if value < 0 {
		return fmt.Errorf("%s: %w", field, negativeErr)
	}
	return nil
}

// validationError joins the non-nil field errors under ErrValidation.
func validationError(errs []error) error {
	joined := errors.Join(errs...)
	if joined == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, joined)
}

func toDecimal(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
