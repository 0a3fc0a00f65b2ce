// Package server implements the HTTP surface using Echo.
//
// Routes: analyze (runs the pipeline for a query), version, health probes,
// and Prometheus metrics. Errors flow through the structured error middleware.
package server
