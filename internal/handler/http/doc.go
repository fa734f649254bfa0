// Package http implements the HTTP transport layer of go-stock-keeper.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, CORS
// and bearer-token authentication are handled in this package before
// requests are delegated to the service layer. Every JSON response uses the
// {success, message, data|errors} envelope from the models package.
package http
