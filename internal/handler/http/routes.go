package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS)
	router.Use(middleware.Recoverer)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Get("/health", h.health)

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
	})

	// routes with authorization
	router.Route("/stocks", func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/", h.createStock)
		r.Get("/", h.findAllStocks)
		r.Get("/quote/{symbol}", h.getStockQuote)
		r.Post("/update-prices", h.updateStockPrices)
		r.Get("/{id}", h.findStock)
		r.Put("/{id}", h.updateStock)
		r.Delete("/{id}", h.removeStock)
	})

	router.MethodNotAllowed(CheckHTTPMethod)

	return router
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
