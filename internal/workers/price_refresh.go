package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

const priceRefreshJob = "price-refresh"

// priceRefreshWorker re-quotes every holding once a day at a fixed local
// wall-clock time.
//
// A single goroutine waits for the trigger, runs the refresh synchronously
// and only then computes the next trigger, so runs never overlap. A run that
// lasts past the following trigger makes the worker skip it. Missed runs are
// not caught up.
type priceRefreshWorker struct {
	stockService service.StockService

	hour   int
	minute int

	now   func() time.Time
	after func(time.Duration) <-chan time.Time

	logger *logger.Logger
}

func NewPriceRefreshWorker(stockService service.StockService, cfg config.Workers, logger *logger.Logger) (Worker, error) {
	hour, minute, err := cfg.PriceRefreshTime()
	if err != nil {
		return nil, err
	}

	return &priceRefreshWorker{
		stockService: stockService,
		hour:         hour,
		minute:       minute,
		now:          time.Now,
		after:        time.After,
		logger:       logger.ForJob(priceRefreshJob),
	}, nil
}

func (w *priceRefreshWorker) Run(ctx context.Context) {
	ctx = w.logger.WithContext(ctx)

	for {
		now := w.now()
		next := nextTrigger(now, w.hour, w.minute)
		w.logger.Info().Time("next_run", next).Msg("price refresh scheduled")

		select {
		case <-ctx.Done():
			w.logger.Info().Msg("price refresh worker stopped")
			return
		case <-w.after(next.Sub(now)):
		}

		w.runOnce(ctx)
	}
}

func (w *priceRefreshWorker) runOnce(ctx context.Context) {
	start := w.now()
	w.logger.Info().Msg("price refresh started")

	if err := w.stockService.RefreshAllHoldings(ctx); err != nil {
		w.logger.Err(err).Msg("price refresh failed")
		return
	}

	w.logger.Info().Dur("duration", w.now().Sub(start)).Msg("price refresh finished")
}

// nextTrigger returns the first hour:minute strictly after now, in now's
// location.
func nextTrigger(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(now.Year(), now.Month(), now.Day()+1, hour, minute, 0, 0, now.Location())
	}
	return next
}
