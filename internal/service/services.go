package service

import (
	"github.com/tradepost/backend/internal/lib/job"
	"github.com/tradepost/backend/internal/repository"
	"github.com/tradepost/backend/internal/server"
)

// Services is a container for all service instances.
type Services struct {
	Auth     *AuthService
	Users    *UserService
	Products *ProductService
	Posts    *PostService
	Job      *job.JobService
}

// NewService wires every service to its repositories and shared deps.
func NewService(s *server.Server, repos *repository.Repositories) (*Services, error) {
	return &Services{
		Auth:     NewAuthService(s),
		Users:    NewUserService(repos.Users, s.Job, s.Logger),
		Products: NewProductService(repos.Products, s.Logger),
		Posts:    NewPostService(repos.Posts, repos.Users, s.Logger),
		Job:      s.Job,
	}, nil
}
