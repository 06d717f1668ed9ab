package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/handler"
	"github.com/tradepost/backend/internal/middleware"
)

// registerV1Routes mounts the business API under /api/v1. The whole
// group sits behind the rate limiter; reads are public and anything
// that writes goes through Clerk auth.
func registerV1Routes(r *echo.Echo, m *middleware.Middlewares, h *handler.Handlers) {
	v1 := r.Group("/api/v1", m.RateLimit.Limit())

	requireAuth := m.Auth.RequireAuth

	users := v1.Group("/users")
	users.GET("", handler.Handle(h.Users.Handler, h.Users.List, http.StatusOK, &dto.ListUsersRequest{}))
	users.POST("", handler.Handle(h.Users.Handler, h.Users.Create, http.StatusCreated, &dto.CreateUserRequest{}), requireAuth)
	users.GET("/:id", handler.Handle(h.Users.Handler, h.Users.Get, http.StatusOK, &dto.GetUserRequest{}))
	users.PATCH("/:id", handler.Handle(h.Users.Handler, h.Users.Update, http.StatusOK, &dto.UpdateUserRequest{}), requireAuth)
	users.DELETE("/:id", handler.Handle(h.Users.Handler, h.Users.Delete, http.StatusOK, &dto.DeleteUserRequest{}), requireAuth)
	users.GET("/:id/posts", handler.Handle(h.Users.Handler, h.Users.ListPosts, http.StatusOK, &dto.ListUserPostsRequest{}))

	products := v1.Group("/products")
	products.GET("", handler.Handle(h.Products.Handler, h.Products.List, http.StatusOK, &dto.ListProductsRequest{}))
	// Static segment, so Echo matches it ahead of /:id.
	products.GET("/export", handler.HandleFile(h.Products.Handler, h.Products.Export, http.StatusOK, &dto.ExportProductsRequest{}, "products.csv", "text/csv"))
	products.POST("", handler.Handle(h.Products.Handler, h.Products.Create, http.StatusCreated, &dto.CreateProductRequest{}), requireAuth)
	products.GET("/:id", handler.Handle(h.Products.Handler, h.Products.Get, http.StatusOK, &dto.GetProductRequest{}))
	products.PATCH("/:id", handler.Handle(h.Products.Handler, h.Products.Update, http.StatusOK, &dto.UpdateProductRequest{}), requireAuth)
	products.DELETE("/:id", handler.Handle(h.Products.Handler, h.Products.Delete, http.StatusOK, &dto.DeleteProductRequest{}), requireAuth)

	posts := v1.Group("/posts")
	posts.GET("", handler.Handle(h.Posts.Handler, h.Posts.List, http.StatusOK, &dto.ListPostsRequest{}))
	posts.POST("", handler.Handle(h.Posts.Handler, h.Posts.Create, http.StatusCreated, &dto.CreatePostRequest{}), requireAuth)
	posts.GET("/:id", handler.Handle(h.Posts.Handler, h.Posts.Get, http.StatusOK, &dto.GetPostRequest{}))
	posts.PATCH("/:id", handler.Handle(h.Posts.Handler, h.Posts.Update, http.StatusOK, &dto.UpdatePostRequest{}), requireAuth)
	posts.DELETE("/:id", handler.Handle(h.Posts.Handler, h.Posts.Delete, http.StatusOK, &dto.DeletePostRequest{}), requireAuth)
}
