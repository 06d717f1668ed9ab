package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/errs"
	"github.com/tradepost/backend/internal/server"
)

func jsonContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	return c, rec
}

func TestHandle(t *testing.T) {
	base := NewHandler(&server.Server{})

	t.Run("writes the envelope with the configured status", func(t *testing.T) {
		fn := Handle(base, func(c echo.Context, req *dto.CreateUserRequest) (Response, error) {
			return NewResponse("User created successfully", map[string]string{"email": req.Email}), nil
		}, http.StatusCreated, &dto.CreateUserRequest{})

		c, rec := jsonContext(t, http.MethodPost, "/api/v1/users", `{"email":"ada@example.com","name":"Ada"}`)
		require.NoError(t, fn(c))

		assert.Equal(t, http.StatusCreated, rec.Code)

		var envelope struct {
			Message string            `json:"message"`
			Data    map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.Equal(t, "User created successfully", envelope.Message)
		assert.Equal(t, "ada@example.com", envelope.Data["email"])
	})

	t.Run("marshals nil data as null", func(t *testing.T) {
		fn := Handle(base, func(c echo.Context, req *dto.DeleteUserRequest) (Response, error) {
			return NewResponse("User deleted successfully", nil), nil
		}, http.StatusOK, &dto.DeleteUserRequest{})

		c, rec := jsonContext(t, http.MethodDelete, "/api/v1/users/:id", "")
		c.SetParamNames("id")
		c.SetParamValues("3e2f8f9c-5a4b-4a6e-9a0a-0f6f8b2e5f10")
		require.NoError(t, fn(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"data":null`)
	})

	t.Run("returns a 400 validation error before running the handler", func(t *testing.T) {
		called := false
		fn := Handle(base, func(c echo.Context, req *dto.CreateUserRequest) (Response, error) {
			called = true
			return Response{}, nil
		}, http.StatusCreated, &dto.CreateUserRequest{})

		c, _ := jsonContext(t, http.MethodPost, "/api/v1/users", `{"email":"not-an-email","name":"Ada"}`)
		err := fn(c)

		require.Error(t, err)
		assert.False(t, called)

		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		require.NotEmpty(t, httpErr.Errors)
		assert.Equal(t, "email", httpErr.Errors[0].Field)
	})

	t.Run("passes handler errors through untouched", func(t *testing.T) {
		want := errs.NewNotFoundError("User not found", false, nil)
		fn := Handle(base, func(c echo.Context, req *dto.GetUserRequest) (Response, error) {
			return Response{}, want
		}, http.StatusOK, &dto.GetUserRequest{})

		c, _ := jsonContext(t, http.MethodGet, "/api/v1/users/:id", "")
		c.SetParamNames("id")
		c.SetParamValues("3e2f8f9c-5a4b-4a6e-9a0a-0f6f8b2e5f10")

		err := fn(c)
		assert.Equal(t, want, err)
	})

	t.Run("binds into a fresh request on every call", func(t *testing.T) {
		var seen []string
		fn := Handle(base, func(c echo.Context, req *dto.CreateUserRequest) (Response, error) {
			seen = append(seen, req.Status)
			return NewResponse("ok", nil), nil
		}, http.StatusCreated, &dto.CreateUserRequest{})

		first, _ := jsonContext(t, http.MethodPost, "/api/v1/users", `{"email":"a@example.com","name":"A","status":"suspended"}`)
		require.NoError(t, fn(first))

		// The second body omits status. With a shared request value the
		// "suspended" from the first call would bleed through.
		second, _ := jsonContext(t, http.MethodPost, "/api/v1/users", `{"email":"b@example.com","name":"B"}`)
		require.NoError(t, fn(second))

		require.Len(t, seen, 2)
		assert.Equal(t, "suspended", seen[0])
		assert.Equal(t, "", seen[1])
	})
}

func TestNewRequest(t *testing.T) {
	prototype := &dto.CreateUserRequest{Email: "proto@example.com"}

	a := newRequest(prototype)
	b := newRequest(prototype)

	assert.NotSame(t, prototype, a)
	assert.NotSame(t, a, b)
	assert.Empty(t, a.Email, "fresh instances start zeroed")
}

func TestHandleFile(t *testing.T) {
	base := NewHandler(&server.Server{})

	fn := HandleFile(base, func(c echo.Context, req *dto.ExportProductsRequest) ([]byte, error) {
		return []byte("id,sku\n"), nil
	}, http.StatusOK, &dto.ExportProductsRequest{}, "products.csv", "text/csv")

	c, rec := jsonContext(t, http.MethodGet, "/api/v1/products/export", "")
	require.NoError(t, fn(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "attachment; filename=products.csv", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "id,sku\n", rec.Body.String())
}
