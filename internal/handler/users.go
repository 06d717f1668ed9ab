package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/server"
	"github.com/tradepost/backend/internal/service"
)

// UserHandler exposes the user resource. It also serves the nested
// posts listing because that route lives under /users.
type UserHandler struct {
	Handler
	users *service.UserService
	posts *service.PostService
}

func NewUserHandler(s *server.Server, services *service.Services) *UserHandler {
	return &UserHandler{
		Handler: NewHandler(s),
		users:   services.Users,
		posts:   services.Posts,
	}
}

func (h *UserHandler) Create(c echo.Context, req *dto.CreateUserRequest) (Response, error) {
	user, err := h.users.Create(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("User created successfully", user), nil
}

func (h *UserHandler) Get(c echo.Context, req *dto.GetUserRequest) (Response, error) {
	user, err := h.users.Get(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("User retrieved successfully", user), nil
}

func (h *UserHandler) List(c echo.Context, req *dto.ListUsersRequest) (Response, error) {
	users, err := h.users.List(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Users retrieved successfully", users), nil
}

func (h *UserHandler) Update(c echo.Context, req *dto.UpdateUserRequest) (Response, error) {
	user, err := h.users.Update(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("User updated successfully", user), nil
}

func (h *UserHandler) Delete(c echo.Context, req *dto.DeleteUserRequest) (Response, error) {
	if err := h.users.Delete(c.Request().Context(), *req); err != nil {
		return Response{}, err
	}
	return NewResponse("User deleted successfully", nil), nil
}

func (h *UserHandler) ListPosts(c echo.Context, req *dto.ListUserPostsRequest) (Response, error) {
	posts, err := h.posts.ListByAuthor(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("User posts retrieved successfully", posts), nil
}
