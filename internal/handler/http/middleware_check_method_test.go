package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_WritesNotFoundEnvelope(t *testing.T) {
	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/stocks", nil))
	rr := httptest.NewRecorder()

	CheckHTTPMethod(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	env := decodeEnvelope(t, rr)
	assert.False(t, env.Success)
	assert.Equal(t, http.StatusText(http.StatusNotFound), env.Message)
	assert.JSONEq(t, `"route not found"`, string(env.Errors))
}

func TestCheckHTTPMethod_DoesNotRedispatch(t *testing.T) {
	calls := 0
	router := chi.NewRouter()
	router.Get("/items", func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod)

	req := injectNopLogger(httptest.NewRequest(http.MethodDelete, "/items", nil))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, calls)
}
