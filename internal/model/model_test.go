package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusValidity(t *testing.T) {
	t.Run("user", func(t *testing.T) {
		assert.True(t, UserStatusActive.Valid())
		assert.True(t, UserStatusSuspended.Valid())
		assert.True(t, UserStatusDeactivated.Valid())
		assert.False(t, UserStatus("banned").Valid())
		assert.False(t, UserStatus("").Valid())
	})

	t.Run("product", func(t *testing.T) {
		assert.True(t, ProductStatusDraft.Valid())
		assert.True(t, ProductStatusActive.Valid())
		assert.True(t, ProductStatusArchived.Valid())
		assert.False(t, ProductStatus("deleted").Valid())
	})

	t.Run("post", func(t *testing.T) {
		assert.True(t, PostStatusDraft.Valid())
		assert.True(t, PostStatusPublished.Valid())
		assert.True(t, PostStatusArchived.Valid())
		assert.False(t, PostStatus("hidden").Valid())
	})
}

func TestProduct_CSVRow(t *testing.T) {
	id := uuid.MustParse("7c9a2483-76f0-43e7-b18a-3b3a2f1d66b2")
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	product := Product{
		ID:        id,
		SKU:       "SKU-001",
		Name:      "Anvil",
		Price:     decimal.RequireFromString("19.9"),
		Quantity:  7,
		Status:    ProductStatusActive,
		CreatedAt: created,
	}

	row := product.CSVRow()
	assert.Equal(t, []string{
		"7c9a2483-76f0-43e7-b18a-3b3a2f1d66b2",
		"SKU-001",
		"Anvil",
		"19.90",
		"7",
		"active",
		"2025-03-14T09:30:00Z",
	}, row)
	assert.Len(t, row, len(ProductCSVHeader))
}
