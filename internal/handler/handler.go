// Package handler is the HTTP layer, the first entry point for
// business logic after the router.
//
// It binds requests into DTOs, runs input validation through the
// validation package, calls the appropriate service and wraps the
// result in the response envelope.
package handler
