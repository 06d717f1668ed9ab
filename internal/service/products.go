package service

import (
	"bytes"
	"context"
	"encoding/csv"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tradepost/backend/internal/dto"
	"github.com/tradepost/backend/internal/model"
	"github.com/tradepost/backend/internal/repository"
)

// ProductStore is the slice of the products repository the service depends on.
type ProductStore interface {
	Create(ctx context.Context, product model.Product) (model.Product, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.Product, error)
	List(ctx context.Context, filter repository.ListFilter) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, id uuid.UUID, patch repository.ProductPatch) (model.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProductService struct {
	store  ProductStore
	logger *zerolog.Logger
}

func NewProductService(store ProductStore, logger *zerolog.Logger) *ProductService {
	return &ProductService{
		store:  store,
		logger: logger,
	}
}

func (s *ProductService) Create(ctx context.Context, req dto.CreateProductRequest) (model.Product, error) {
	status := model.ProductStatusDraft
	if req.Status != "" {
		status = model.ProductStatus(req.Status)
	}

	return s.store.Create(ctx, model.Product{
		ID:          uuid.New(),
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Status:      status,
	})
}

func (s *ProductService) Get(ctx context.Context, req dto.GetProductRequest) (model.Product, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return model.Product{}, err
	}
	return s.store.GetByID(ctx, id)
}

func (s *ProductService) List(ctx context.Context, req dto.ListProductsRequest) ([]model.Product, error) {
	return s.store.List(ctx, repository.ListFilter{
		Status: req.Status,
		Limit:  limitOrDefault(req.Limit),
		Offset: req.Offset,
	})
}

func (s *ProductService) Update(ctx context.Context, req dto.UpdateProductRequest) (model.Product, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return model.Product{}, err
	}

	return s.store.Update(ctx, id, repository.ProductPatch{
		SKU:         req.SKU,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Status:      (*model.ProductStatus)(req.Status),
	})
}

func (s *ProductService) Delete(ctx context.Context, req dto.DeleteProductRequest) error {
	id, err := parseID(req.ID)
	if err != nil {
		return err
	}
	return s.store.Delete(ctx, id)
}

// ExportCSV renders the whole catalog as CSV, ordered by SKU. The export
// is built in memory; catalogs are small enough that streaming is not
// worth the handler complexity yet.
func (s *ProductService) ExportCSV(ctx context.Context) ([]byte, error) {
	products, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(model.ProductCSVHeader); err != nil {
		return nil, err
	}
	for _, product := range products {
		if err := w.Write(product.CSVRow()); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
