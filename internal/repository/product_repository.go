package repository

import (
	"context"
	"fmt"
	"strings"

	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = "id, name, price, description, category, in_stock, created_at, updated_at"

// productRepository implements the ProductRepository interface using PostgreSQL.
type productRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProductRepository creates a new PostgreSQL-backed product repository.
func NewProductRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProductRepository {
	return &productRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "product").Logger(),
	}
}

// scanProduct scans a single product row.
func scanProduct(row pgx.Row) (*model.Product, error) {
	var p model.Product
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category, &p.InStock, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// List retrieves products matching the filter with pagination.
func (r *productRepository) List(ctx context.Context, filter model.ListFilter) ([]model.Product, error) {
	var conditions []string
	var args []any

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conditions = append(conditions, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.InStock != nil {
		args = append(args, *filter.InStock)
		conditions = append(conditions, fmt.Sprintf("in_stock = $%d", len(args)))
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	args = append(args, filter.Limit)
	query += fmt.Sprintf(" ORDER BY id LIMIT $%d", len(args))
	args = append(args, filter.Skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error().Err(err).
			Int("limit", filter.Limit).
			Int("skip", filter.Skip).
			Msg("failed to query products")
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Description, &p.Category, &p.InStock, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan product row")
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating product rows")
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retrieves a single product by its ID.
func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := "SELECT " + productColumns + " FROM products WHERE id = $1"

	p, err := scanProduct(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to query product")
		return nil, fmt.Errorf("failed to query product: %w", err)
	}

	return p, nil
}

// Create inserts a new product and returns the stored record.
func (r *productRepository) Create(ctx context.Context, input *model.ProductCreate) (*model.Product, error) {
	query := `
		INSERT INTO products (name, price, description, category, in_stock)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + productColumns

	p, err := scanProduct(r.pool.QueryRow(ctx, query,
		input.Name, input.Price, input.Description, input.Category, *input.InStock))
	if err != nil {
		r.logger.Error().Err(err).Str("name", input.Name).Msg("failed to insert product")
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	r.logger.Debug().Int64("product_id", p.ID).Msg("product created")
	return p, nil
}

// Update applies the present patch fields in a single UPDATE statement so the
// mutation is atomic with respect to concurrent operations. updated_at is
// always bumped, even for an empty patch.
func (r *productRepository) Update(ctx context.Context, id int64, patch *model.ProductUpdate) (*model.Product, error) {
	var set []string
	var args []any

	appendSet := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.Price != nil {
		appendSet("price", *patch.Price)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if patch.Category != nil {
		appendSet("category", *patch.Category)
	}
	if patch.InStock != nil {
		appendSet("in_stock", *patch.InStock)
	}
	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $%d RETURNING %s",
		strings.Join(set, ", "), len(args), productColumns,
	)

	p, err := scanProduct(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int64("product_id", id).Msg("product not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return p, nil
}

// Delete removes a product permanently.
func (r *productRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, "DELETE FROM products WHERE id = $1", id)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return false, fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Debug().Int64("product_id", id).Msg("product not found for delete")
		return false, nil
	}

	return true, nil
}

// Categories retrieves distinct category values across all products.
func (r *productRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, "SELECT DISTINCT category FROM products ORDER BY category")
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query categories")
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := []string{}
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan category row")
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating category rows")
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}

	return categories, nil
}

// Ping issues a trivial liveness query against the database.
func (r *productRepository) Ping(ctx context.Context) error {
	var one int
	if err := r.pool.QueryRow(ctx, "SELECT 1").Scan(&one); err != nil {
		r.logger.Error().Err(err).Msg("database ping failed")
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}
