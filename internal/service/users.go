package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/model"
	"github.com/tradepost/backend/internal/repository"
)

// UserStore is the slice of the users repository the service depends on.
type UserStore interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
	List(ctx context.Context, filter repository.ListFilter) ([]model.User, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.UserPatch) (model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// WelcomeEnqueuer pushes the post-signup welcome email job.
type WelcomeEnqueuer interface {
	EnqueueWelcomeEmail(ctx context.Context, userID uuid.UUID, to, name string) error
}

type UserService struct {
	store  UserStore
	jobs   WelcomeEnqueuer
	logger *zerolog.Logger
}

func NewUserService(store UserStore, jobs WelcomeEnqueuer, logger *zerolog.Logger) *UserService {
	return &UserService{
		store:  store,
		jobs:   jobs,
		logger: logger,
	}
}

// Create registers a user and enqueues their welcome email. A failed
// enqueue is logged and swallowed: the user exists either way, and mail
// delivery is not worth failing a signup over.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (model.User, error) {
	status := model.UserStatusActive
	if req.Status != "" {
		status = model.UserStatus(req.Status)
	}

	user, err := s.store.Create(ctx, model.User{
		ID:     uuid.New(),
		Email:  req.Email,
		Name:   req.Name,
		Status: status,
	})
	if err != nil {
		return model.User{}, err
	}

	if err := s.jobs.EnqueueWelcomeEmail(ctx, user.ID, user.Email, user.Name); err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", user.ID.String()).
			Msg("Failed to enqueue welcome email")
	}

	return user, nil
}

func (s *UserService) Get(ctx context.Context, req dto.GetUserRequest) (model.User, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return model.User{}, err
	}
	return s.store.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context, req dto.ListUsersRequest) ([]model.User, error) {
	return s.store.List(ctx, repository.ListFilter{
		Status: req.Status,
		Limit:  limitOrDefault(req.Limit),
		Offset: req.Offset,
	})
}

func (s *UserService) Update(ctx context.Context, req dto.UpdateUserRequest) (model.User, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return model.User{}, err
	}

	return s.store.Update(ctx, id, repository.UserPatch{
		Email:  req.Email,
		Name:   req.Name,
		Status: (*model.UserStatus)(req.Status),
	})
}

func (s *UserService) Delete(ctx context.Context, req dto.DeleteUserRequest) error {
	id, err := parseID(req.ID)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}
