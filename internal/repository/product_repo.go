package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/morerealm/vrlens-api/internal/models"
	"github.com/morerealm/vrlens-api/internal/utils"
)

// ProductRepository handles data access for products. It owns the
// serialization boundary for the images column: callers pass and receive
// decoded []string sequences, never the stored text blob.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// CreateProductParams are the fields the repository needs to insert a product.
// ID and timestamps are assigned by the store.
type CreateProductParams struct {
	Name        string
	Description *string
	BasePrice   float64
	Images      []string
	Active      bool
}

// productRow is the scan target for the products table. Images stays in its
// stored form here and is decoded on the way out.
type productRow struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Description sql.NullString `db:"description"`
	BasePrice   float64        `db:"base_price"`
	Images      sql.NullString `db:"images"`
	Active      bool           `db:"active"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (row *productRow) toModel() (*models.Product, error) {
	p := &models.Product{
		ID:        row.ID,
		Name:      row.Name,
		BasePrice: row.BasePrice,
		Active:    row.Active,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if row.Description.Valid {
		desc := row.Description.String
		p.Description = &desc
	}
	images, err := decodeImages(row.Images)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", row.ID, err)
	}
	p.Images = images
	return p, nil
}

// Create inserts a new product row and returns the persisted entity with
// store-assigned id and timestamps.
func (r *ProductRepository) Create(ctx context.Context, params CreateProductParams) (*models.Product, error) {
	const q = `
        INSERT INTO products (name, description, base_price, images, active)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`

	images, err := encodeImages(params.Images)
	if err != nil {
		return nil, fmt.Errorf("encode images: %w", err)
	}

	var description sql.NullString
	if params.Description != nil {
		description = sql.NullString{String: *params.Description, Valid: true}
	}

	p := &models.Product{
		Name:        params.Name,
		Description: params.Description,
		BasePrice:   params.BasePrice,
		Images:      params.Images,
		Active:      params.Active,
	}
	err = r.db.QueryRowxContext(ctx, q,
		params.Name,
		description,
		params.BasePrice,
		images,
		params.Active,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return p, nil
}

// ListActive returns all active products, newest first.
func (r *ProductRepository) ListActive(ctx context.Context) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        WHERE active = true
        ORDER BY created_at DESC`
	return r.list(ctx, q)
}

// ListAll returns every product regardless of visibility, newest first.
// Used by administrative views.
func (r *ProductRepository) ListAll(ctx context.Context) ([]models.Product, error) {
	const q = `
        SELECT * FROM products
        ORDER BY created_at DESC`
	return r.list(ctx, q)
}

func (r *ProductRepository) list(ctx context.Context, query string) ([]models.Product, error) {
	var rows []productRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}

	products := make([]models.Product, 0, len(rows))
	for i := range rows {
		p, err := rows[i].toModel()
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, nil
}

// GetByID returns a single product by primary key. Returns
// utils.ErrProductNotFound when no row matches. Malformed ids read as
// absent rather than erroring inside the driver.
func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	const q = `SELECT * FROM products WHERE id = $1 LIMIT 1`

	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrProductNotFound
	}

	var row productRow
	if err := r.db.GetContext(ctx, &row, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, utils.ErrProductNotFound
		}
		return nil, fmt.Errorf("select product %s: %w", id, err)
	}
	return row.toModel()
}

// Count returns the number of product rows.
func (r *ProductRepository) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(1) FROM products`); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// CountByStatus returns total/active/inactive counts for the admin dashboard.
func (r *ProductRepository) CountByStatus(ctx context.Context) (*models.CatalogStats, error) {
	const q = `
        SELECT
            COUNT(1) AS total,
            COUNT(1) FILTER (WHERE active) AS active,
            COUNT(1) FILTER (WHERE NOT active) AS inactive
        FROM products`

	var stats models.CatalogStats
	if err := r.db.GetContext(ctx, &stats, q); err != nil {
		return nil, fmt.Errorf("count products by status: %w", err)
	}
	return &stats, nil
}
