// Package errs defines the custom error types returned to API clients.
//
// Every failing request funnels into an *HTTPError, which the global
// error handler serializes directly. The JSON shape is the service's
// wire contract: a single "error" field carrying a human-readable
// message, with optional field-level details for validation failures.
package errs
