package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tradepost/backend/internal/validation"
)

// CreateProductRequest is the payload for POST /api/v1/products.
//
// Price rides on shopspring/decimal so money survives JSON intact; the
// positivity rule can't be a validator tag, so Validate checks it by hand.
type CreateProductRequest struct {
	SKU         string          `json:"sku" validate:"required,min=1,max=64"`
	Name        string          `json:"name" validate:"required,min=1,max=200"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int32           `json:"quantity" validate:"omitempty,gte=0"`
	Status      string          `json:"status" validate:"omitempty,oneof=draft active archived"`
}

func (r *CreateProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return err
	}

	if !r.Price.IsPositive() {
		return validation.CustomValidationErrors{
			{Field: "price", Message: "must be a positive decimal"},
		}
	}
	return nil
}

// GetProductRequest identifies a product by path id.
type GetProductRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *GetProductRequest) Validate() error {
	return validate.Struct(r)
}

// ListProductsRequest carries the paging and filter query params for
// GET /api/v1/products.
type ListProductsRequest struct {
	Limit  int    `query:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset int    `query:"offset" validate:"omitempty,gte=0"`
	Status string `query:"status" validate:"omitempty,oneof=draft active archived"`
}

func (r *ListProductsRequest) Validate() error {
	return validate.Struct(r)
}

// UpdateProductRequest is the partial-update payload for PATCH
// /api/v1/products/:id. Nil fields are left unchanged.
type UpdateProductRequest struct {
	ID          string           `param:"id" validate:"required,uuid"`
	SKU         *string          `json:"sku" validate:"omitempty,max=64"`
	Name        *string          `json:"name" validate:"omitempty,max=200"`
	Description *string          `json:"description" validate:"omitempty,max=2000"`
	Price       *decimal.Decimal `json:"price"`
	Quantity    *int32           `json:"quantity" validate:"omitempty,gte=0"`
	Status      *string          `json:"status" validate:"omitempty,oneof=draft active archived"`
}

func (r *UpdateProductRequest) Validate() error {
	if r.SKU == nil && r.Name == nil && r.Description == nil &&
		r.Price == nil && r.Quantity == nil && r.Status == nil {
		return validation.CustomValidationErrors{
			{Field: "body", Message: "at least one field must be provided"},
		}
	}

	if err := validate.Struct(r); err != nil {
		return err
	}

	var errs validation.CustomValidationErrors
	notBlank("sku", r.SKU, &errs)
	notBlank("name", r.Name, &errs)
	if r.Price != nil && !r.Price.IsPositive() {
		errs = append(errs, validation.CustomValidationError{
			Field:   "price",
			Message: "must be a positive decimal",
		})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DeleteProductRequest identifies a product by path id.
type DeleteProductRequest struct {
	ID string `param:"id" validate:"required,uuid"`
}

func (r *DeleteProductRequest) Validate() error {
	return validate.Struct(r)
}

// ExportProductsRequest is the (empty) request for the catalog CSV export.
// It exists so the export route can ride the same typed pipeline.
type ExportProductsRequest struct{}

func (r *ExportProductsRequest) Validate() error {
	return nil
}
