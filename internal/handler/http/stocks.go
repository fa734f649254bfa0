package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/app"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, ErrNoUserInContext)
		return
	}

	var req models.CreateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidJSON, service.ErrInvalidDataProvided)
		return
	}

	stock, err := h.validator.ParseCreate(ctx, req)
	if err != nil {
		log.Err(err).Msg("invalid stock data provided")
		writeError(w, r, http.StatusBadRequest, app.MsgStockCreationFailed, err)
		return
	}

	created, err := h.services.StockService.Create(ctx, stock, userID)
	if err != nil {
		log.Err(err).Str("symbol", stock.Symbol).Msg("stock creation failed")
		writeError(w, r, http.StatusBadRequest, app.MsgStockCreationFailed, err)
		return
	}

	writeSuccess(w, r, http.StatusCreated, app.MsgStockCreated, created)
}

func (h *Handler) findAllStocks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, ErrNoUserInContext)
		return
	}

	stocks, err := h.services.StockService.FindAll(ctx, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("fetching stocks failed")
		writeError(w, r, http.StatusBadRequest, app.MsgStocksFetchFailed, err)
		return
	}

	if stocks == nil {
		stocks = []models.Stock{}
	}

	writeSuccess(w, r, http.StatusOK, app.MsgStocksFetched, stocks)
}

func (h *Handler) findStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, ErrNoUserInContext)
		return
	}

	stock, err := h.services.StockService.FindOne(ctx, id, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("id", id).Msg("fetching stock failed")
		writeError(w, r, http.StatusNotFound, fmt.Sprintf(app.MsgStockNotFoundFmt, id), err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgStockFetched, stock)
}

func (h *Handler) updateStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")
	failureMessage := fmt.Sprintf(app.MsgStockUpdateFailedFmt, id)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, ErrNoUserInContext)
		return
	}

	var req models.UpdateStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, app.MsgInvalidJSON, service.ErrInvalidDataProvided)
		return
	}

	update, err := h.validator.ParseUpdate(ctx, req)
	if err != nil {
		log.Err(err).Str("id", id).Msg("invalid stock update provided")
		writeError(w, r, http.StatusBadRequest, failureMessage, err)
		return
	}

	updated, err := h.services.StockService.Update(ctx, id, userID, update)
	if err != nil {
		log.Err(err).Str("id", id).Msg("stock update failed")
		writeError(w, r, http.StatusBadRequest, failureMessage, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgStockUpdated, updated)
}

func (h *Handler) removeStock(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, ErrNoUserInContext)
		return
	}

	deleted, err := h.services.StockService.Remove(ctx, id, userID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("id", id).Msg("stock deletion failed")
		writeError(w, r, http.StatusNotFound, fmt.Sprintf(app.MsgStockDeleteFailedFmt, id), err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgStockDeleted, deleted)
}

func (h *Handler) getStockQuote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	symbol := chi.URLParam(r, "symbol")

	quote, err := h.services.StockService.GetStockQuote(ctx, symbol)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("symbol", symbol).Msg("fetching quote failed")
		writeError(w, r, http.StatusNotFound, fmt.Sprintf(app.MsgQuoteFetchFailedFmt, symbol), err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgQuoteFetched, quote)
}

func (h *Handler) updateStockPrices(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, http.StatusUnauthorized, app.MsgUnauthorized, ErrNoUserInContext)
		return
	}

	if err := h.services.StockService.RefreshOwnerHoldings(ctx, userID); err != nil {
		logger.FromRequest(r).Err(err).Msg("refreshing stock prices failed")
		writeError(w, r, http.StatusBadRequest, app.MsgStockPricesUpdateFailed, err)
		return
	}

	writeSuccess(w, r, http.StatusOK, app.MsgStockPricesUpdated, nil)
}
