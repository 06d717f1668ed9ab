// Package service contains the business logic.
//
// It sits between the handler and repository layers.
// It receives validated data from the handler, applies domain rules
// (identifier generation, defaults, pagination bounds), and calls
// repository methods to interact with the data.
package service

import (
	"github.com/google/uuid"

	"github.com/tradepost/backend/internal/errs"
)

// defaultPageSize applies when a list request does not set a limit.
const defaultPageSize = 20

// parseID converts a path or payload identifier into a UUID. Inputs are
// shape-checked by validation before they reach the services, so a
// failure here is still a client mistake, not a server one.
func parseID(id string) (uuid.UUID, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, errs.NewBadRequestError("Invalid identifier format", false, nil, nil, nil)
	}
	return parsed, nil
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	return limit
}
