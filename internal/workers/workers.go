package workers

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds every background job of the server.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) (*Workers, error) {
	priceRefresh, err := NewPriceRefreshWorker(services.StockService, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating price refresh worker: %w", err)
	}

	return &Workers{workers: []Worker{priceRefresh}}, nil
}

// Run starts each worker in its own goroutine and blocks until all of them
// have returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
