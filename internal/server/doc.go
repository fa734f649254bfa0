// Package server wires and runs the application's HTTP server and
// background workers.
//
// It provides startup, signal handling, and graceful shutdown: on SIGINT,
// SIGTERM or SIGQUIT the HTTP server stops accepting requests, in-flight
// requests are drained and the workers are cancelled.
package server
