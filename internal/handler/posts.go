package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/server"
	"github.com/tradepost/backend/internal/service"
)

// PostHandler exposes the post resource.
type PostHandler struct {
	Handler
	posts *service.PostService
}

func NewPostHandler(s *server.Server, services *service.Services) *PostHandler {
	return &PostHandler{
		Handler: NewHandler(s),
		posts:   services.Posts,
	}
}

func (h *PostHandler) Create(c echo.Context, req *dto.CreatePostRequest) (Response, error) {
	post, err := h.posts.Create(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Post created successfully", post), nil
}

func (h *PostHandler) Get(c echo.Context, req *dto.GetPostRequest) (Response, error) {
	post, err := h.posts.Get(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Post retrieved successfully", post), nil
}

func (h *PostHandler) List(c echo.Context, req *dto.ListPostsRequest) (Response, error) {
	posts, err := h.posts.List(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Posts retrieved successfully", posts), nil
}

func (h *PostHandler) Update(c echo.Context, req *dto.UpdatePostRequest) (Response, error) {
	post, err := h.posts.Update(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Post updated successfully", post), nil
}

func (h *PostHandler) Delete(c echo.Context, req *dto.DeletePostRequest) (Response, error) {
	if err := h.posts.Delete(c.Request().Context(), *req); err != nil {
		return Response{}, err
	}
	return NewResponse("Post deleted successfully", nil), nil
}
