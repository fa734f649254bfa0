package server

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-stock-keeper/internal/config"
	"github.com/MKhiriev/go-stock-keeper/internal/handler"
	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/internal/mock"
	"github.com/MKhiriev/go-stock-keeper/internal/service"
	"github.com/MKhiriev/go-stock-keeper/internal/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, config.Server{Port: 0}, logger.Nop())
	require.NoError(t, err)
	return h
}

func runAsync(ctx context.Context, s *server, stop context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		s.run(ctx, stop)
	}()
	return done
}

func TestNewServer(t *testing.T) {
	t.Run("no handlers", func(t *testing.T) {
		s, err := NewServer(nil, nil, config.Server{}, logger.Nop())
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("no HTTP handler", func(t *testing.T) {
		s, err := NewServer(&handler.Handlers{}, nil, config.Server{}, logger.Nop())
		assert.Nil(t, s)
		assert.ErrorIs(t, err, errNoServersAreCreated)
	})

	t.Run("listen address from config", func(t *testing.T) {
		s, err := NewServer(newTestHandlers(t), nil, config.Server{HTTPAddress: "127.0.0.1:8089"}, logger.Nop())
		require.NoError(t, err)

		srv, ok := s.(*server)
		require.True(t, ok)
		assert.Equal(t, "127.0.0.1:8089", srv.httpServer.server.Addr)
		assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
	})
}

func TestRun_StopsOnCancelAndWaitsForWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStock := mock.NewMockStockService(ctrl)
	bgWorkers, err := workers.NewWorkers(
		&service.Services{StockService: mockStock},
		config.Workers{PriceRefreshAt: "00:00"},
		logger.Nop(),
	)
	require.NoError(t, err)

	s, err := NewServer(newTestHandlers(t), bgWorkers, config.Server{HTTPAddress: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := runAsync(ctx, s.(*server), cancel)

	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ReturnsWhenListenFails(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	s, err := NewServer(newTestHandlers(t), nil, config.Server{HTTPAddress: ln.Addr().String()}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := runAsync(ctx, s.(*server), cancel)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after listen failure")
	}
	assert.Error(t, ctx.Err(), "workers context must be cancelled")
}

func TestHTTPServer_ServesUntilShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	hs := newHTTPServer(newTestHandlers(t).HTTP.Init(), config.Server{HTTPAddress: addr}, logger.Nop())

	errCh := make(chan error, 1)
	go func() { errCh <- hs.RunServer() }()

	require.Eventually(t, func() bool {
		resp, err := http.Get("http://" + addr + "/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	hs.Shutdown()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
