// Package middleware contains the Echo middleware stack: request-id
// generation, request-scoped logger enrichment, CORS, request logging,
// panic recovery, secure headers, New Relic tracing, and the global
// error handler that turns every error into the service's JSON wire
// shape.
package middleware
