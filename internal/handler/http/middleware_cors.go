package http

import "net/http"

const (
	corsAllowedMethods = "GET,HEAD,PUT,PATCH,POST,DELETE,OPTIONS"
	corsExposedHeaders = "Authorization, X-Trace-ID"
)

// withCORS allows the configured frontend origin to call the API with
// credentials. Any OPTIONS request is treated as a preflight and answered
// with 204 without reaching the router.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("Access-Control-Allow-Origin", h.frontendURI)
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Expose-Headers", corsExposedHeaders)

		if r.Method != http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		header.Set("Access-Control-Allow-Methods", corsAllowedMethods)
		if requested := r.Header.Get("Access-Control-Request-Headers"); requested != "" {
			header.Set("Access-Control-Allow-Headers", requested)
			header.Add("Vary", "Access-Control-Request-Headers")
		}
		header.Set("Content-Length", "0")
		w.WriteHeader(http.StatusNoContent)
	})
}
