package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/model"
	"github.com/tradepost/backend/internal/repository"
)

type stubPostStore struct {
	err   error
	post  model.Post
	posts []model.Post

	created      *model.Post
	filter       repository.ListFilter
	authorID     uuid.UUID
	authorLimit  int
	authorOffset int
	patchID      uuid.UUID
	patch        repository.PostPatch
	publishedN   int64
	publishNow   time.Time
	publishCalls int
}

func (s *stubPostStore) Create(_ context.Context, post model.Post) (model.Post, error) {
	s.created = &post
	if s.err != nil {
		return model.Post{}, s.err
	}
	return post, nil
}

func (s *stubPostStore) GetByID(_ context.Context, id uuid.UUID) (model.Post, error) {
	return s.post, s.err
}

func (s *stubPostStore) List(_ context.Context, filter repository.ListFilter) ([]model.Post, error) {
	s.filter = filter
	return s.posts, s.err
}

func (s *stubPostStore) ListByAuthor(_ context.Context, authorID uuid.UUID, limit, offset int) ([]model.Post, error) {
	s.authorID = authorID
	s.authorLimit = limit
	s.authorOffset = offset
	return s.posts, s.err
}

func (s *stubPostStore) Update(_ context.Context, id uuid.UUID, patch repository.PostPatch) (model.Post, error) {
	s.patchID = id
	s.patch = patch
	return s.post, s.err
}

func (s *stubPostStore) Delete(_ context.Context, id uuid.UUID) error {
	return s.err
}

func (s *stubPostStore) PublishDue(_ context.Context, now time.Time) (int64, error) {
	s.publishCalls++
	s.publishNow = now
	return s.publishedN, s.err
}

type stubAuthorGetter struct {
	err   error
	user  model.User
	gotID uuid.UUID
	calls int
}

func (s *stubAuthorGetter) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.calls++
	s.gotID = id
	return s.user, s.err
}

func newPostService(store *stubPostStore, users *stubAuthorGetter) *PostService {
	log := zerolog.Nop()
	return NewPostService(store, users, &log)
}

func TestPostService_Create(t *testing.T) {
	t.Run("assigns an id, parses the author and defaults status to draft", func(t *testing.T) {
		authorID := uuid.New()
		store := &stubPostStore{}
		svc := newPostService(store, &stubAuthorGetter{})

		publishAt := time.Now().Add(time.Hour)
		post, err := svc.Create(context.Background(), dto.CreatePostRequest{
			AuthorID:  authorID.String(),
			Title:     "Hello",
			Body:      "First post",
			PublishAt: &publishAt,
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, post.ID)
		assert.Equal(t, authorID, post.AuthorID)
		assert.Equal(t, model.PostStatusDraft, post.Status)
		require.NotNil(t, store.created)
		require.NotNil(t, store.created.PublishAt)
		assert.True(t, store.created.PublishAt.Equal(publishAt))
	})

	t.Run("rejects a malformed author id without touching the store", func(t *testing.T) {
		store := &stubPostStore{}
		svc := newPostService(store, &stubAuthorGetter{})

		_, err := svc.Create(context.Background(), dto.CreatePostRequest{
			AuthorID: "not-a-uuid",
			Title:    "Hello",
		})

		requireBadRequest(t, err)
		assert.Nil(t, store.created)
	})
}

func TestPostService_ListByAuthor(t *testing.T) {
	t.Run("verifies the author before listing", func(t *testing.T) {
		authorID := uuid.New()
		store := &stubPostStore{}
		users := &stubAuthorGetter{user: model.User{ID: authorID}}
		svc := newPostService(store, users)

		_, err := svc.ListByAuthor(context.Background(), dto.ListUserPostsRequest{
			ID:     authorID.String(),
			Offset: 40,
		})

		require.NoError(t, err)
		assert.Equal(t, authorID, users.gotID)
		assert.Equal(t, authorID, store.authorID)
		assert.Equal(t, 20, store.authorLimit)
		assert.Equal(t, 40, store.authorOffset)
	})

	t.Run("an unknown author short-circuits the listing", func(t *testing.T) {
		lookupErr := errors.New("table:users: no rows in result set")
		store := &stubPostStore{}
		users := &stubAuthorGetter{err: lookupErr}
		svc := newPostService(store, users)

		_, err := svc.ListByAuthor(context.Background(), dto.ListUserPostsRequest{
			ID: uuid.NewString(),
		})

		require.ErrorIs(t, err, lookupErr)
		assert.Equal(t, uuid.Nil, store.authorID)
	})
}

func TestPostService_Update(t *testing.T) {
	t.Run("maps set fields into the patch", func(t *testing.T) {
		id := uuid.New()
		store := &stubPostStore{}
		svc := newPostService(store, &stubAuthorGetter{})

		title := "Updated"
		status := "published"
		publishAt := time.Now()
		_, err := svc.Update(context.Background(), dto.UpdatePostRequest{
			ID:        id.String(),
			Title:     &title,
			Status:    &status,
			PublishAt: &publishAt,
		})

		require.NoError(t, err)
		assert.Equal(t, id, store.patchID)
		require.NotNil(t, store.patch.Title)
		assert.Equal(t, "Updated", *store.patch.Title)
		assert.Nil(t, store.patch.Body)
		require.NotNil(t, store.patch.Status)
		assert.Equal(t, model.PostStatusPublished, *store.patch.Status)
		require.NotNil(t, store.patch.PublishAt)
	})
}

func TestPostService_PublishDuePosts(t *testing.T) {
	t.Run("publishes with the current time and reports the count", func(t *testing.T) {
		store := &stubPostStore{publishedN: 3}
		svc := newPostService(store, &stubAuthorGetter{})

		count, err := svc.PublishDuePosts(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
		assert.Equal(t, 1, store.publishCalls)
		assert.WithinDuration(t, time.Now().UTC(), store.publishNow, time.Minute)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		storeErr := errors.New("update failed")
		svc := newPostService(&stubPostStore{err: storeErr}, &stubAuthorGetter{})

		_, err := svc.PublishDuePosts(context.Background())

		require.ErrorIs(t, err, storeErr)
	})
}
