package service

import (
	"github.com/clerk/clerk-sdk-go/v2"

	"github.com/tradepost/backend/internal/server"
)

type AuthService struct {
	server *server.Server
}

// NewAuthService points the Clerk SDK at our secret key. The SDK keeps
// the key in package state, so this must run before any auth middleware
// verifies a token.
func NewAuthService(s *server.Server) *AuthService {
	clerk.SetKey(s.Config.Auth.SecretKey)
	return &AuthService{
		server: s,
	}
}
