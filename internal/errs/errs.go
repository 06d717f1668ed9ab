// Package errs defines the error types the API exposes to clients.
//
// Every error that leaves the service is shaped as an HTTPError so
// responses stay consistent: a machine-readable code, a human message,
// an HTTP status, optional field-level validation errors for forms,
// and an optional action hint the frontend can interpret.
package errs
