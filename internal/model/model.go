// Package model defines the domain entities persisted in PostgreSQL and
// served by the API.
//
// Every entity carries a synthetic UUID id generated in the service layer,
// audit timestamps maintained by the database, and a status field constrained
// to an enumerated set. Statuses are typed strings so DTOs, repositories and
// the scheduler share one source of valid values.
package model
