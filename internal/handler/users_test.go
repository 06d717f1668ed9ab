package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/model"
	"github.com/tradepost/backend/internal/repository"
	"github.com/tradepost/backend/internal/server"
	"github.com/tradepost/backend/internal/service"
)

type fakeUserStore struct {
	user model.User
	err  error
}

func (f *fakeUserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	return user, nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	return f.user, f.err
}

func (f *fakeUserStore) List(ctx context.Context, filter repository.ListFilter) ([]model.User, error) {
	return []model.User{f.user}, f.err
}

func (f *fakeUserStore) Update(ctx context.Context, id uuid.UUID, patch repository.UserPatch) (model.User, error) {
	return f.user, f.err
}

func (f *fakeUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	return f.err
}

type fakeEnqueuer struct{}

func (fakeEnqueuer) EnqueueWelcomeEmail(ctx context.Context, userID uuid.UUID, to, name string) error {
	return nil
}

type fakePostStore struct {
	posts []model.Post
}

func (f *fakePostStore) Create(ctx context.Context, post model.Post) (model.Post, error) {
	return post, nil
}

func (f *fakePostStore) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	return model.Post{}, nil
}

func (f *fakePostStore) List(ctx context.Context, filter repository.ListFilter) ([]model.Post, error) {
	return f.posts, nil
}

func (f *fakePostStore) ListByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]model.Post, error) {
	return f.posts, nil
}

func (f *fakePostStore) Update(ctx context.Context, id uuid.UUID, patch repository.PostPatch) (model.Post, error) {
	return model.Post{}, nil
}

func (f *fakePostStore) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func (f *fakePostStore) PublishDue(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}

func userHandlerFixture(store *fakeUserStore, posts *fakePostStore) *UserHandler {
	log := zerolog.Nop()
	services := &service.Services{
		Users: service.NewUserService(store, fakeEnqueuer{}, &log),
		Posts: service.NewPostService(posts, store, &log),
	}
	return NewUserHandler(&server.Server{}, services)
}

func decodeEnvelope(t *testing.T, body []byte) (string, interface{}) {
	t.Helper()

	var envelope struct {
		Message string      `json:"message"`
		Data    interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Message, envelope.Data
}

func TestUserHandlerCreate(t *testing.T) {
	h := userHandlerFixture(&fakeUserStore{}, &fakePostStore{})
	fn := Handle(h.Handler, h.Create, http.StatusCreated, &dto.CreateUserRequest{})

	c, rec := jsonContext(t, http.MethodPost, "/api/v1/users", `{"email":"ada@example.com","name":"Ada"}`)
	require.NoError(t, fn(c))

	assert.Equal(t, http.StatusCreated, rec.Code)

	message, data := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "User created successfully", message)

	user, ok := data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "ada@example.com", user["email"])
	assert.Equal(t, "active", user["status"], "status defaults when omitted")

	id, _ := user["id"].(string)
	_, err := uuid.Parse(id)
	assert.NoError(t, err, "the server assigns a real id")
}

func TestUserHandlerDelete(t *testing.T) {
	h := userHandlerFixture(&fakeUserStore{}, &fakePostStore{})
	fn := Handle(h.Handler, h.Delete, http.StatusOK, &dto.DeleteUserRequest{})

	c, rec := jsonContext(t, http.MethodDelete, "/api/v1/users/:id", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.New().String())
	require.NoError(t, fn(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	message, data := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "User deleted successfully", message)
	assert.Nil(t, data)
}

func TestUserHandlerListPosts(t *testing.T) {
	authorID := uuid.New()
	store := &fakeUserStore{user: model.User{ID: authorID, Email: "ada@example.com", Name: "Ada"}}
	posts := &fakePostStore{posts: []model.Post{
		{ID: uuid.New(), AuthorID: authorID, Title: "Hello", Status: model.PostStatusPublished},
	}}

	h := userHandlerFixture(store, posts)
	fn := Handle(h.Handler, h.ListPosts, http.StatusOK, &dto.ListUserPostsRequest{})

	c, rec := jsonContext(t, http.MethodGet, "/api/v1/users/:id/posts", "")
	c.SetParamNames("id")
	c.SetParamValues(authorID.String())
	require.NoError(t, fn(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	message, data := decodeEnvelope(t, rec.Body.Bytes())
	assert.Equal(t, "User posts retrieved successfully", message)

	items, ok := data.([]interface{})
	require.True(t, ok)
	require.Len(t, items, 1)

	post := items[0].(map[string]interface{})
	assert.Equal(t, "Hello", post["title"])
	assert.Equal(t, authorID.String(), post["author_id"])
}
