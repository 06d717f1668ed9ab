package repository

import (
	"github.com/tradepost/backend/internal/server"
)

// Repositories is a container for all repository instances.
type Repositories struct {
	Users    *UsersRepository
	Products *ProductsRepository
	Posts    *PostsRepository
}

// NewRepositories constructs every repository over the shared connection pool.
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Users:    NewUsersRepository(s.DB.Pool),
		Products: NewProductsRepository(s.DB.Pool),
		Posts:    NewPostsRepository(s.DB.Pool),
	}
}
