package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tradepost/backend/internal/validation"
)

func strPtr(s string) *string { return &s }

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// requireCustom asserts the error is CustomValidationErrors and returns it.
func requireCustom(t *testing.T, err error) validation.CustomValidationErrors {
	t.Helper()
	var custom validation.CustomValidationErrors
	require.True(t, errors.As(err, &custom), "expected CustomValidationErrors, got %T", err)
	return custom
}

func TestCreateUserRequest_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		req := CreateUserRequest{Email: "ada@example.com", Name: "Ada", Status: "active"}
		assert.NoError(t, req.Validate())
	})

	t.Run("status defaults are optional", func(t *testing.T) {
		req := CreateUserRequest{Email: "ada@example.com", Name: "Ada"}
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects a bad email and unknown status", func(t *testing.T) {
		req := CreateUserRequest{Email: "nope", Name: "Ada", Status: "banned"}

		var tagErrs validator.ValidationErrors
		require.True(t, errors.As(req.Validate(), &tagErrs))
		require.Len(t, tagErrs, 2)
		assert.Equal(t, "email", tagErrs[0].Tag())
		assert.Equal(t, "oneof", tagErrs[1].Tag())
	})
}

func TestUpdateUserRequest_Validate(t *testing.T) {
	t.Run("requires at least one field", func(t *testing.T) {
		req := UpdateUserRequest{ID: "0d4907ed-4bfc-4403-ae09-2e1b14c7c1c1"}

		custom := requireCustom(t, req.Validate())
		require.Len(t, custom, 1)
		assert.Equal(t, "at least one field must be provided", custom[0].Message)
	})

	t.Run("rejects explicit empty strings", func(t *testing.T) {
		req := UpdateUserRequest{
			ID:   "0d4907ed-4bfc-4403-ae09-2e1b14c7c1c1",
			Name: strPtr("   "),
		}

		custom := requireCustom(t, req.Validate())
		require.Len(t, custom, 1)
		assert.Equal(t, "name", custom[0].Field)
		assert.Equal(t, "must not be empty", custom[0].Message)
	})

	t.Run("accepts a single changed field", func(t *testing.T) {
		req := UpdateUserRequest{
			ID:     "0d4907ed-4bfc-4403-ae09-2e1b14c7c1c1",
			Status: strPtr("suspended"),
		}
		assert.NoError(t, req.Validate())
	})

	t.Run("requires a uuid path id", func(t *testing.T) {
		req := UpdateUserRequest{ID: "42", Name: strPtr("Ada")}

		var tagErrs validator.ValidationErrors
		require.True(t, errors.As(req.Validate(), &tagErrs))
		assert.Equal(t, "uuid", tagErrs[0].Tag())
	})
}

func TestCreateProductRequest_Validate(t *testing.T) {
	valid := func() CreateProductRequest {
		return CreateProductRequest{
			SKU:   "SKU-001",
			Name:  "Anvil",
			Price: decimal.RequireFromString("19.99"),
		}
	}

	t.Run("valid", func(t *testing.T) {
		req := valid()
		assert.NoError(t, req.Validate())
	})

	t.Run("rejects a zero price", func(t *testing.T) {
		req := valid()
		req.Price = decimal.Zero

		custom := requireCustom(t, req.Validate())
		assert.Equal(t, "price", custom[0].Field)
		assert.Equal(t, "must be a positive decimal", custom[0].Message)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		req := valid()
		req.Price = decimal.RequireFromString("-0.01")

		custom := requireCustom(t, req.Validate())
		assert.Equal(t, "price", custom[0].Field)
	})

	t.Run("rejects a negative quantity before the price rule runs", func(t *testing.T) {
		req := valid()
		req.Quantity = -1

		var tagErrs validator.ValidationErrors
		require.True(t, errors.As(req.Validate(), &tagErrs))
		assert.Equal(t, "gte", tagErrs[0].Tag())
	})
}

func TestUpdateProductRequest_Validate(t *testing.T) {
	id := "7c9a2483-76f0-43e7-b18a-3b3a2f1d66b2"

	t.Run("requires at least one field", func(t *testing.T) {
		req := UpdateProductRequest{ID: id}
		requireCustom(t, req.Validate())
	})

	t.Run("rejects a non-positive price", func(t *testing.T) {
		req := UpdateProductRequest{ID: id, Price: decPtr("0")}

		custom := requireCustom(t, req.Validate())
		assert.Equal(t, "price", custom[0].Field)
	})

	t.Run("accepts a price-only update", func(t *testing.T) {
		req := UpdateProductRequest{ID: id, Price: decPtr("12.50")}
		assert.NoError(t, req.Validate())
	})
}

func TestUpdatePostRequest_Validate(t *testing.T) {
	id := "7c9a2483-76f0-43e7-b18a-3b3a2f1d66b2"

	t.Run("publish_at alone counts as a change", func(t *testing.T) {
		at := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
		req := UpdatePostRequest{ID: id, PublishAt: &at}
		assert.NoError(t, req.Validate())
	})

	t.Run("requires at least one field", func(t *testing.T) {
		req := UpdatePostRequest{ID: id}
		requireCustom(t, req.Validate())
	})

	t.Run("rejects an empty title", func(t *testing.T) {
		req := UpdatePostRequest{ID: id, Title: strPtr("")}

		custom := requireCustom(t, req.Validate())
		assert.Equal(t, "title", custom[0].Field)
	})
}

func TestListRequests_Validate(t *testing.T) {
	t.Run("zero values mean defaults and pass", func(t *testing.T) {
		assert.NoError(t, (&ListUsersRequest{}).Validate())
		assert.NoError(t, (&ListProductsRequest{}).Validate())
		assert.NoError(t, (&ListPostsRequest{}).Validate())
	})

	t.Run("caps the page size", func(t *testing.T) {
		var tagErrs validator.ValidationErrors
		require.True(t, errors.As((&ListUsersRequest{Limit: 500}).Validate(), &tagErrs))
		assert.Equal(t, "lte", tagErrs[0].Tag())
	})

	t.Run("rejects negative offsets", func(t *testing.T) {
		var tagErrs validator.ValidationErrors
		require.True(t, errors.As((&ListPostsRequest{Offset: -3}).Validate(), &tagErrs))
		assert.Equal(t, "gte", tagErrs[0].Tag())
	})

	t.Run("filters must use known statuses", func(t *testing.T) {
		var tagErrs validator.ValidationErrors
		require.True(t, errors.As((&ListProductsRequest{Status: "retired"}).Validate(), &tagErrs))
		assert.Equal(t, "oneof", tagErrs[0].Tag())
	})
}
