package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/model"
	"github.com/tradepost/backend/internal/repository"
)

// PostStore is the slice of the posts repository the service depends on.
type PostStore interface {
	Create(ctx context.Context, post model.Post) (model.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Post, error)
	List(ctx context.Context, filter repository.ListFilter) ([]model.Post, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]model.Post, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.PostPatch) (model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) error
	PublishDue(ctx context.Context, now time.Time) (int64, error)
}

// AuthorGetter resolves users for author existence checks.
type AuthorGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

type PostService struct {
	store  PostStore
	users  AuthorGetter
	logger *zerolog.Logger
}

func NewPostService(store PostStore, users AuthorGetter, logger *zerolog.Logger) *PostService {
	return &PostService{
		store:  store,
		users:  users,
		logger: logger,
	}
}

// Create inserts the post. Author existence is not pre-checked here; a
// bad author id trips the foreign key and is translated downstream.
func (s *PostService) Create(ctx context.Context, req dto.CreatePostRequest) (model.Post, error) {
	authorID, err := parseID(req.AuthorID)
	if err != nil {
		return model.Post{}, err
	}

	status := model.PostStatusDraft
	if req.Status != "" {
		status = model.PostStatus(req.Status)
	}

	return s.store.Create(ctx, model.Post{
		ID:        uuid.New(),
		AuthorID:  authorID,
		Title:     req.Title,
		Body:      req.Body,
		Status:    status,
		PublishAt: req.PublishAt,
	})
}

func (s *PostService) Get(ctx context.Context, req dto.GetPostRequest) (model.Post, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return model.Post{}, err
	}
	return s.store.GetByID(ctx, id)
}

func (s *PostService) List(ctx context.Context, req dto.ListPostsRequest) ([]model.Post, error) {
	return s.store.List(ctx, repository.ListFilter{
		Status: req.Status,
		Limit:  limitOrDefault(req.Limit),
		Offset: req.Offset,
	})
}

// ListByAuthor returns the author's posts. The author is looked up first
// so an unknown user answers "User not found" instead of an empty list.
func (s *PostService) ListByAuthor(ctx context.Context, req dto.ListUserPostsRequest) ([]model.Post, error) {
	authorID, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, authorID); err != nil {
		return nil, err
	}

	return s.store.ListByAuthor(ctx, authorID, limitOrDefault(req.Limit), req.Offset)
}

func (s *PostService) Update(ctx context.Context, req dto.UpdatePostRequest) (model.Post, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return model.Post{}, err
	}

	return s.store.Update(ctx, id, repository.PostPatch{
		Title:     req.Title,
		Body:      req.Body,
		Status:    (*model.PostStatus)(req.Status),
		PublishAt: req.PublishAt,
	})
}

func (s *PostService) Delete(ctx context.Context, req dto.DeletePostRequest) error {
	id, err := parseID(req.ID)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// PublishDuePosts promotes every draft whose publish time has passed.
// The scheduler calls this once a minute.
func (s *PostService) PublishDuePosts(ctx context.Context) (int64, error) {
	count, err := s.store.PublishDue(ctx, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	if count > 0 {
		s.logger.Info().
			Int64("published", count).
			Msg("Published scheduled posts")
	}
	return count, nil
}
