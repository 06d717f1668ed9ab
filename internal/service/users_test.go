package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/errs"
	"github.com/tradepost/backend/internal/model"
	"github.com/tradepost/backend/internal/repository"
)

type stubUserStore struct {
	err   error
	user  model.User
	users []model.User

	created   *model.User
	gotID     uuid.UUID
	filter    repository.ListFilter
	patchID   uuid.UUID
	patch     repository.UserPatch
	deletedID uuid.UUID
}

func (s *stubUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.created = &user
	if s.err != nil {
		return model.User{}, s.err
	}
	return user, nil
}

func (s *stubUserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.gotID = id
	return s.user, s.err
}

func (s *stubUserStore) List(_ context.Context, filter repository.ListFilter) ([]model.User, error) {
	s.filter = filter
	return s.users, s.err
}

func (s *stubUserStore) Update(_ context.Context, id uuid.UUID, patch repository.UserPatch) (model.User, error) {
	s.patchID = id
	s.patch = patch
	return s.user, s.err
}

func (s *stubUserStore) Delete(_ context.Context, id uuid.UUID) error {
	s.deletedID = id
	return s.err
}

type stubEnqueuer struct {
	err error

	calls  int
	userID uuid.UUID
	to     string
	name   string
}

func (s *stubEnqueuer) EnqueueWelcomeEmail(_ context.Context, userID uuid.UUID, to, name string) error {
	s.calls++
	s.userID = userID
	s.to = to
	s.name = name
	return s.err
}

func newUserService(store *stubUserStore, jobs *stubEnqueuer) *UserService {
	log := zerolog.Nop()
	return NewUserService(store, jobs, &log)
}

func requireBadRequest(t *testing.T, err error) {
	t.Helper()

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
}

func TestUserService_Create(t *testing.T) {
	t.Run("assigns an id, defaults status and enqueues the welcome email", func(t *testing.T) {
		store := &stubUserStore{}
		jobs := &stubEnqueuer{}
		svc := newUserService(store, jobs)

		user, err := svc.Create(context.Background(), dto.CreateUserRequest{
			Email: "ada@example.com",
			Name:  "Ada Lovelace",
		})

		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.Equal(t, model.UserStatusActive, user.Status)

		require.NotNil(t, store.created)
		assert.Equal(t, "ada@example.com", store.created.Email)

		assert.Equal(t, 1, jobs.calls)
		assert.Equal(t, user.ID, jobs.userID)
		assert.Equal(t, "ada@example.com", jobs.to)
		assert.Equal(t, "Ada Lovelace", jobs.name)
	})

	t.Run("honors an explicit status", func(t *testing.T) {
		store := &stubUserStore{}
		svc := newUserService(store, &stubEnqueuer{})

		user, err := svc.Create(context.Background(), dto.CreateUserRequest{
			Email:  "ada@example.com",
			Name:   "Ada Lovelace",
			Status: "suspended",
		})

		require.NoError(t, err)
		assert.Equal(t, model.UserStatusSuspended, user.Status)
	})

	t.Run("a failed enqueue does not fail the signup", func(t *testing.T) {
		jobs := &stubEnqueuer{err: errors.New("redis down")}
		svc := newUserService(&stubUserStore{}, jobs)

		_, err := svc.Create(context.Background(), dto.CreateUserRequest{
			Email: "ada@example.com",
			Name:  "Ada Lovelace",
		})

		require.NoError(t, err)
		assert.Equal(t, 1, jobs.calls)
	})

	t.Run("a store error propagates and skips the email", func(t *testing.T) {
		storeErr := errors.New("insert failed")
		jobs := &stubEnqueuer{}
		svc := newUserService(&stubUserStore{err: storeErr}, jobs)

		_, err := svc.Create(context.Background(), dto.CreateUserRequest{
			Email: "ada@example.com",
			Name:  "Ada Lovelace",
		})

		require.ErrorIs(t, err, storeErr)
		assert.Equal(t, 0, jobs.calls)
	})
}

func TestUserService_Get(t *testing.T) {
	t.Run("fetches by parsed id", func(t *testing.T) {
		id := uuid.New()
		store := &stubUserStore{user: model.User{ID: id}}
		svc := newUserService(store, &stubEnqueuer{})

		user, err := svc.Get(context.Background(), dto.GetUserRequest{ID: id.String()})

		require.NoError(t, err)
		assert.Equal(t, id, store.gotID)
		assert.Equal(t, id, user.ID)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		svc := newUserService(&stubUserStore{}, &stubEnqueuer{})

		_, err := svc.Get(context.Background(), dto.GetUserRequest{ID: "not-a-uuid"})

		requireBadRequest(t, err)
	})
}

func TestUserService_List(t *testing.T) {
	t.Run("applies the default page size", func(t *testing.T) {
		store := &stubUserStore{}
		svc := newUserService(store, &stubEnqueuer{})

		_, err := svc.List(context.Background(), dto.ListUsersRequest{})

		require.NoError(t, err)
		assert.Equal(t, repository.ListFilter{Limit: 20}, store.filter)
	})

	t.Run("passes paging and status through", func(t *testing.T) {
		store := &stubUserStore{}
		svc := newUserService(store, &stubEnqueuer{})

		_, err := svc.List(context.Background(), dto.ListUsersRequest{
			Limit:  5,
			Offset: 10,
			Status: "active",
		})

		require.NoError(t, err)
		assert.Equal(t, repository.ListFilter{Status: "active", Limit: 5, Offset: 10}, store.filter)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("maps set fields into the patch", func(t *testing.T) {
		id := uuid.New()
		store := &stubUserStore{}
		svc := newUserService(store, &stubEnqueuer{})

		email := "new@example.com"
		status := "deactivated"
		_, err := svc.Update(context.Background(), dto.UpdateUserRequest{
			ID:     id.String(),
			Email:  &email,
			Status: &status,
		})

		require.NoError(t, err)
		assert.Equal(t, id, store.patchID)
		require.NotNil(t, store.patch.Email)
		assert.Equal(t, "new@example.com", *store.patch.Email)
		assert.Nil(t, store.patch.Name)
		require.NotNil(t, store.patch.Status)
		assert.Equal(t, model.UserStatusDeactivated, *store.patch.Status)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		svc := newUserService(&stubUserStore{}, &stubEnqueuer{})

		_, err := svc.Update(context.Background(), dto.UpdateUserRequest{ID: "nope"})

		requireBadRequest(t, err)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("deletes by parsed id", func(t *testing.T) {
		id := uuid.New()
		store := &stubUserStore{}
		svc := newUserService(store, &stubEnqueuer{})

		require.NoError(t, svc.Delete(context.Background(), dto.DeleteUserRequest{ID: id.String()}))
		assert.Equal(t, id, store.deletedID)
	})

	t.Run("propagates store errors", func(t *testing.T) {
		storeErr := errors.New("delete failed")
		svc := newUserService(&stubUserStore{err: storeErr}, &stubEnqueuer{})

		err := svc.Delete(context.Background(), dto.DeleteUserRequest{ID: uuid.NewString()})

		require.ErrorIs(t, err, storeErr)
	})
}
