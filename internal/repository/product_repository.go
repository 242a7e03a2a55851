package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// ProductRepository defines persistence access for products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListByStoreID(ctx context.Context, storeID string) ([]*domain.Product, error)
	SearchByKeyword(ctx context.Context, storeID, keyword string) ([]*domain.Product, error)
}

type productRepository struct {
	pool *pgxpool.Pool
}

// NewProductRepository returns a Postgres-backed implementation.
func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productSelect = `
        SELECT id, name, description, sku, mrp, selling_price, brand, image,
               store_id, category_id, created_at, updated_at
        FROM products`

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	const query = `
        INSERT INTO products (name, description, sku, mrp, selling_price, brand, image, store_id, category_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.SKU,
		product.MRP,
		product.SellingPrice,
		product.Brand,
		product.Image,
		product.StoreID,
		product.CategoryID,
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	const query = `
        UPDATE products SET name=$1, description=$2, sku=$3, mrp=$4, selling_price=$5,
            brand=$6, image=$7, store_id=$8, category_id=$9, updated_at=NOW()
        WHERE id=$10`

	cmd, err := r.pool.Exec(ctx, query,
		product.Name,
		product.Description,
		product.SKU,
		product.MRP,
		product.SellingPrice,
		product.Brand,
		product.Image,
		product.StoreID,
		product.CategoryID,
		product.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.scanOne(r.pool.QueryRow(ctx, productSelect+` WHERE id=$1`, id))
}

func (r *productRepository) ListByStoreID(ctx context.Context, storeID string) ([]*domain.Product, error) {
	rows, err := r.pool.Query(ctx, productSelect+` WHERE store_id=$1 ORDER BY created_at`, storeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *productRepository) SearchByKeyword(ctx context.Context, storeID, keyword string) ([]*domain.Product, error) {
	const query = productSelect + `
        WHERE store_id=$1 AND (name ILIKE '%' || $2 || '%' OR brand ILIKE '%' || $2 || '%')
        ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, storeID, keyword)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.scanAll(rows)
}

func (r *productRepository) scanOne(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.SKU,
		&product.MRP,
		&product.SellingPrice,
		&product.Brand,
		&product.Image,
		&product.StoreID,
		&product.CategoryID,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) scanAll(rows pgx.Rows) ([]*domain.Product, error) {
	var products []*domain.Product
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.SKU,
			&product.MRP,
			&product.SellingPrice,
			&product.Brand,
			&product.Image,
			&product.StoreID,
			&product.CategoryID,
			&product.CreatedAt,
			&product.UpdatedAt,
		); err != nil {
			return nil, err
		}
		products = append(products, &product)
	}
	return products, rows.Err()
}
