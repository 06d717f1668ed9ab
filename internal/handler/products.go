package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/server"
	"github.com/tradepost/backend/internal/service"
)

// ProductHandler exposes the product catalog resource.
type ProductHandler struct {
	Handler
	products *service.ProductService
}

func NewProductHandler(s *server.Server, services *service.Services) *ProductHandler {
	return &ProductHandler{
		Handler:  NewHandler(s),
		products: services.Products,
	}
}

func (h *ProductHandler) Create(c echo.Context, req *dto.CreateProductRequest) (Response, error) {
	product, err := h.products.Create(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Product created successfully", product), nil
}

func (h *ProductHandler) Get(c echo.Context, req *dto.GetProductRequest) (Response, error) {
	product, err := h.products.Get(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Product retrieved successfully", product), nil
}

func (h *ProductHandler) List(c echo.Context, req *dto.ListProductsRequest) (Response, error) {
	products, err := h.products.List(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Products retrieved successfully", products), nil
}

func (h *ProductHandler) Update(c echo.Context, req *dto.UpdateProductRequest) (Response, error) {
	product, err := h.products.Update(c.Request().Context(), *req)
	if err != nil {
		return Response{}, err
	}
	return NewResponse("Product updated successfully", product), nil
}

func (h *ProductHandler) Delete(c echo.Context, req *dto.DeleteProductRequest) (Response, error) {
	if err := h.products.Delete(c.Request().Context(), *req); err != nil {
		return Response{}, err
	}
	return NewResponse("Product deleted successfully", nil), nil
}

// Export streams the whole catalog as a CSV download.
func (h *ProductHandler) Export(c echo.Context, req *dto.ExportProductsRequest) ([]byte, error) {
	return h.products.ExportCSV(c.Request().Context())
}
