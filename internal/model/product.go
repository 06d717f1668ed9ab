package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus enumerates the lifecycle states of a catalog product.
type ProductStatus string

const (
	ProductStatusDraft    ProductStatus = "draft"
	ProductStatusActive   ProductStatus = "active"
	ProductStatusArchived ProductStatus = "archived"
)

// Valid reports whether the status is one of the enumerated values.
func (s ProductStatus) Valid() bool {
	switch s {
	case ProductStatusDraft, ProductStatusActive, ProductStatusArchived:
		return true
	}
	return false
}

// Product is a catalog entry. Price is a decimal, never a float: money
// arithmetic must stay exact through JSON and the numeric(12,2) column.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	SKU         string          `json:"sku"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity"`
	Status      ProductStatus   `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductCSVHeader is the column order of the catalog export.
var ProductCSVHeader = []string{"id", "sku", "name", "price", "quantity", "status", "created_at"}

// CSVRow renders the product as one export row, in ProductCSVHeader order.
func (p Product) CSVRow() []string {
	return []string{
		p.ID.String(),
		p.SKU,
		p.Name,
		p.Price.StringFixed(2),
		strconv.Itoa(int(p.Quantity)),
		string(p.Status),
		p.CreatedAt.UTC().Format(time.RFC3339),
	}
}
