package handler

import (
	"github.com/tradepost/backend/internal/server"
	"github.com/tradepost/backend/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so the router
// receives one object instead of a growing argument list.
type Handlers struct {
	Health   *HealthHandler
	OpenAPI  *OpenAPIHandler
	Users    *UserHandler
	Products *ProductHandler
	Posts    *PostHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Health:   NewHealthHandler(s),
		OpenAPI:  NewOpenAPIHandler(s),
		Users:    NewUserHandler(s, services),
		Products: NewProductHandler(s, services),
		Posts:    NewPostHandler(s, services),
	}
}
