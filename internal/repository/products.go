package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/tradepost/backend/internal/model"
)

const productColumns = "id, sku, name, description, price, quantity, status, created_at, updated_at"

// ProductsRepository persists catalog products.
type ProductsRepository struct {
	pool *pgxpool.Pool
}

func NewProductsRepository(pool *pgxpool.Pool) *ProductsRepository {
	return &ProductsRepository{pool: pool}
}

func scanProduct(row pgx.Row) (model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &p.Price,
		&p.Quantity, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProductsRepository) Create(ctx context.Context, product model.Product) (model.Product, error) {
	query := `
		INSERT INTO products (id, sku, name, description, price, quantity, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + productColumns

	created, err := scanProduct(r.pool.QueryRow(ctx, query,
		product.ID, product.SKU, product.Name, product.Description,
		product.Price, product.Quantity, product.Status))
	if err != nil {
		return model.Product{}, tableError("products", err)
	}
	return created, nil
}

func (r *ProductsRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Product{}, tableError("products", err)
	}
	return product, nil
}

func (r *ProductsRepository) List(ctx context.Context, filter ListFilter) ([]model.Product, error) {
	query, args := buildListQuery(`SELECT `+productColumns+` FROM products`, filter)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, tableError("products", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, tableError("products", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, tableError("products", err)
	}
	return products, nil
}

// ListAll returns the full catalog ordered by SKU. Used by the CSV export,
// which has no paging.
func (r *ProductsRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY sku`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, tableError("products", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, tableError("products", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, tableError("products", err)
	}
	return products, nil
}

// ProductPatch holds the partial update for a product. Nil fields keep the
// current column value.
type ProductPatch struct {
	SKU         *string
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Quantity    *int32
	Status      *model.ProductStatus
}

func (r *ProductsRepository) Update(ctx context.Context, id uuid.UUID, patch ProductPatch) (model.Product, error) {
	query := `
		UPDATE products SET
			sku = COALESCE($2, sku),
			name = COALESCE($3, name),
			description = COALESCE($4, description),
			price = COALESCE($5, price),
			quantity = COALESCE($6, quantity),
			status = COALESCE($7, status),
			updated_at = now()
		WHERE id = $1
		RETURNING ` + productColumns

	product, err := scanProduct(r.pool.QueryRow(ctx, query, id,
		patch.SKU, patch.Name, patch.Description, patch.Price, patch.Quantity, patch.Status))
	if err != nil {
		return model.Product{}, tableError("products", err)
	}
	return product, nil
}

func (r *ProductsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return tableError("products", err)
	}
	if tag.RowsAffected() == 0 {
		return tableError("products", pgx.ErrNoRows)
	}
	return nil
}
