package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		status       int
		body         string
		wantContains []string
	}{
		{
			name:   "GET 200",
			method: http.MethodGet,
			path:   "/stocks",
			status: http.StatusOK,
			body:   "OK",
			wantContains: []string{
				`"method":"GET"`,
				`"uri":"/stocks"`,
				`"status":200`,
				`"size":2`,
				`"duration":`,
			},
		},
		{
			name:   "POST 201 with query",
			method: http.MethodPost,
			path:   "/stocks?x=1",
			status: http.StatusCreated,
			body:   `{"id":1}`,
			wantContains: []string{
				`"method":"POST"`,
				`"uri":"/stocks?x=1"`,
				`"status":201`,
				`"size":8`,
			},
		},
		{
			name:   "404 without body",
			method: http.MethodDelete,
			path:   "/stocks/1",
			status: http.StatusNotFound,
			wantContains: []string{
				`"status":404`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			req := httptest.NewRequest(tt.method, tt.path, nil)
			req = req.WithContext(zerolog.New(&buf).WithContext(req.Context()))

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				if tt.body != "" {
					w.Write([]byte(tt.body))
				}
			})

			rr := httptest.NewRecorder()
			(&Handler{}).withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.status, rr.Code)
			for _, want := range tt.wantContains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}
