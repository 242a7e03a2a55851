package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/storefront-service/internal/domain"
)

// StoreRepository defines persistence access for stores.
type StoreRepository interface {
	Create(ctx context.Context, store *domain.Store) error
	Update(ctx context.Context, store *domain.Store) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Store, error)
	GetByAdminID(ctx context.Context, adminID string) (*domain.Store, error)
	List(ctx context.Context) ([]*domain.Store, error)
}

type storeRepository struct {
	pool *pgxpool.Pool
}

// NewStoreRepository returns a Postgres-backed implementation.
func NewStoreRepository(pool *pgxpool.Pool) StoreRepository {
	return &storeRepository{pool: pool}
}

const storeSelect = `
        SELECT id, brand, description, store_type, status, store_admin_id,
               contact_address, contact_phone, contact_email, created_at, updated_at
        FROM stores`

func (r *storeRepository) Create(ctx context.Context, store *domain.Store) error {
	const query = `
        INSERT INTO stores (brand, description, store_type, status, store_admin_id,
                            contact_address, contact_phone, contact_email)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		store.Brand,
		store.Description,
		store.StoreType,
		store.Status,
		store.StoreAdminID,
		store.Contact.Address,
		store.Contact.Phone,
		store.Contact.Email,
	).Scan(&store.ID, &store.CreatedAt, &store.UpdatedAt)
}

func (r *storeRepository) Update(ctx context.Context, store *domain.Store) error {
	const query = `
        UPDATE stores SET brand=$1, description=$2, store_type=$3, status=$4,
            contact_address=$5, contact_phone=$6, contact_email=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		store.Brand,
		store.Description,
		store.StoreType,
		store.Status,
		store.Contact.Address,
		store.Contact.Phone,
		store.Contact.Email,
		store.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *storeRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM stores WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *storeRepository) GetByID(ctx context.Context, id string) (*domain.Store, error) {
	return r.scanOne(r.pool.QueryRow(ctx, storeSelect+` WHERE id=$1`, id))
}

func (r *storeRepository) GetByAdminID(ctx context.Context, adminID string) (*domain.Store, error) {
	return r.scanOne(r.pool.QueryRow(ctx, storeSelect+` WHERE store_admin_id=$1`, adminID))
}

func (r *storeRepository) List(ctx context.Context) ([]*domain.Store, error) {
	rows, err := r.pool.Query(ctx, storeSelect+` ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stores []*domain.Store
	for rows.Next() {
		var store domain.Store
		if err := rows.Scan(
			&store.ID,
			&store.Brand,
			&store.Description,
			&store.StoreType,
			&store.Status,
			&store.StoreAdminID,
			&store.Contact.Address,
			&store.Contact.Phone,
			&store.Contact.Email,
			&store.CreatedAt,
			&store.UpdatedAt,
		); err != nil {
			return nil, err
		}
		stores = append(stores, &store)
	}
	return stores, rows.Err()
}

func (r *storeRepository) scanOne(row pgx.Row) (*domain.Store, error) {
	var store domain.Store
	if err := row.Scan(
		&store.ID,
		&store.Brand,
		&store.Description,
		&store.StoreType,
		&store.Status,
		&store.StoreAdminID,
		&store.Contact.Address,
		&store.Contact.Phone,
		&store.Contact.Email,
		&store.CreatedAt,
		&store.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &store, nil
}
