package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/backend/internal/errs"
	"github.com/tradepost/backend/internal/server"
)

func errorHandlerContext(t *testing.T) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeErrorBody(t *testing.T, rec *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var body errs.HTTPError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestGlobalErrorHandler(t *testing.T) {
	global := NewGlobalMiddlewares(&server.Server{})

	t.Run("passes through application errors", func(t *testing.T) {
		c, rec := errorHandlerContext(t)
		code := "USER_ALREADY_EXISTS"

		global.GlobalErrorHandler(errs.NewConflictError("A User with this Email already exists", true, &code), c)

		assert.Equal(t, http.StatusConflict, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "USER_ALREADY_EXISTS", body.Code)
		assert.Equal(t, "A User with this Email already exists", body.Message)
		assert.True(t, body.Override)
	})

	t.Run("reshapes echo's route 404", func(t *testing.T) {
		c, rec := errorHandlerContext(t)

		global.GlobalErrorHandler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "NOT_FOUND", body.Code)
		assert.Equal(t, "Route not found", body.Message)
	})

	t.Run("converts other echo errors", func(t *testing.T) {
		c, rec := errorHandlerContext(t)

		global.GlobalErrorHandler(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "METHOD_NOT_ALLOWED", body.Code)
	})

	t.Run("translates tagged no-rows into a domain 404", func(t *testing.T) {
		c, rec := errorHandlerContext(t)

		global.GlobalErrorHandler(fmt.Errorf("table:users: %w", pgx.ErrNoRows), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, "User not found", body.Message)
	})

	t.Run("sanitizes unknown errors to a 500", func(t *testing.T) {
		c, rec := errorHandlerContext(t)

		global.GlobalErrorHandler(errors.New("driver exploded: password=hunter2"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeErrorBody(t, rec)
		assert.Equal(t, http.StatusText(http.StatusInternalServerError), body.Message)
		assert.NotContains(t, rec.Body.String(), "hunter2")
	})
}
