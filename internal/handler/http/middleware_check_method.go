// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler via
// [chi.Mux.MethodNotAllowed].
//
// Chi answers 405 Method Not Allowed when a path is known but the method is
// not. This handler answers 404 Not Found instead, so callers using an
// unsupported method cannot tell the path exists. Nested routers inherit it.
//
// It never re-dispatches the request: chi has already routed it.
//
// Usage:
//
//	router := chi.NewRouter()
//	// ... register routes ...
//	router.MethodNotAllowed(CheckHTTPMethod)
func CheckHTTPMethod(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, http.StatusText(http.StatusNotFound), ErrRouteNotFound)
}
