// Package handler is the HTTP layer: the first entry point for request
// logic after the router.
//
// It binds and validates request payloads via the validation package,
// executes the route's logic, and writes the JSON response. Errors are
// returned, not written, so the global error handler owns the error
// wire shape.
package handler
