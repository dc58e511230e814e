package repository

import (
	"context"
	"testing"
	"time"

	"product-catalog/internal/database"
	"product-catalog/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer and returns a connection pool.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	ctx := context.Background()

	// Start PostgreSQL container
	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	// Get connection string
	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	// Create connection pool
	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	// Create schema
	require.NoError(t, database.EnsureSchema(ctx, pool, zerolog.Nop()))

	// Cleanup function
	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

// seedProduct inserts one product through the repository and returns it.
func seedProduct(t *testing.T, repo ProductRepository, name string, price float64, category string, inStock bool) *model.Product {
	t.Helper()

	product, err := repo.Create(context.Background(), &model.ProductCreate{
		Name:     name,
		Price:    price,
		Category: category,
		InStock:  boolPtr(inStock),
	})
	require.NoError(t, err)
	return product
}

func TestProductRepository_List(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	seedProduct(t, repo, "Laptop", 999.99, "Electronics", true)
	seedProduct(t, repo, "Mouse", 19.99, "Electronics", false)
	seedProduct(t, repo, "Mug", 7.50, "Kitchen", true)
	seedProduct(t, repo, "Kettle", 35.00, "Kitchen", true)
	seedProduct(t, repo, "Notebook", 3.99, "Stationery", true)

	tests := []struct {
		name          string
		filter        model.ListFilter
		expectedNames []string
	}{
		{
			name:          "All products in id order",
			filter:        model.ListFilter{Limit: 100},
			expectedNames: []string{"Laptop", "Mouse", "Mug", "Kettle", "Notebook"},
		},
		{
			name:          "Category filter",
			filter:        model.ListFilter{Limit: 100, Category: strPtr("Electronics")},
			expectedNames: []string{"Laptop", "Mouse"},
		},
		{
			name:          "In-stock filter",
			filter:        model.ListFilter{Limit: 100, InStock: boolPtr(false)},
			expectedNames: []string{"Mouse"},
		},
		{
			name:          "Both filters",
			filter:        model.ListFilter{Limit: 100, Category: strPtr("Electronics"), InStock: boolPtr(true)},
			expectedNames: []string{"Laptop"},
		},
		{
			name:          "Pagination window",
			filter:        model.ListFilter{Skip: 0, Limit: 2},
			expectedNames: []string{"Laptop", "Mouse"},
		},
		{
			name:          "Pagination second page",
			filter:        model.ListFilter{Skip: 2, Limit: 2},
			expectedNames: []string{"Mug", "Kettle"},
		},
		{
			name:          "Skip beyond result set returns empty, not error",
			filter:        model.ListFilter{Skip: 5, Limit: 100},
			expectedNames: []string{},
		},
		{
			name:          "Filter with no matches returns empty",
			filter:        model.ListFilter{Limit: 100, Category: strPtr("Garden")},
			expectedNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(products))
			for _, p := range products {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.expectedNames, names)
		})
	}
}

func TestProductRepository_GetByID(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	created := seedProduct(t, repo, "Widget", 9.99, "General", true)

	t.Run("Found", func(t *testing.T) {
		product, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, product)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, 9.99, product.Price)
	})

	t.Run("Not found returns nil without error", func(t *testing.T) {
		product, err := repo.GetByID(ctx, 99999)
		require.NoError(t, err)
		assert.Nil(t, product)
	})
}

func TestProductRepository_Create(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	t.Run("Assigns identifier and timestamps", func(t *testing.T) {
		description := "A fine widget"
		product, err := repo.Create(ctx, &model.ProductCreate{
			Name:        "Widget",
			Price:       9.99,
			Description: &description,
			Category:    "General",
			InStock:     boolPtr(true),
		})
		require.NoError(t, err)

		assert.Positive(t, product.ID)
		assert.Equal(t, "Widget", product.Name)
		assert.Equal(t, 9.99, product.Price)
		require.NotNil(t, product.Description)
		assert.Equal(t, "A fine widget", *product.Description)
		assert.False(t, product.CreatedAt.IsZero())
		assert.Equal(t, product.CreatedAt, product.UpdatedAt)
	})

	t.Run("Identifiers are unique and ascending", func(t *testing.T) {
		first := seedProduct(t, repo, "First", 1.00, "General", true)
		second := seedProduct(t, repo, "Second", 2.00, "General", true)
		assert.Greater(t, second.ID, first.ID)
	})
}

func TestProductRepository_Update(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	t.Run("Applies only present fields", func(t *testing.T) {
		created := seedProduct(t, repo, "Widget", 9.99, "General", true)

		price := 12.5
		updated, err := repo.Update(ctx, created.ID, &model.ProductUpdate{Price: &price})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, 12.5, updated.Price)
		assert.Equal(t, "Widget", updated.Name)
		assert.Equal(t, "General", updated.Category)
		assert.True(t, updated.InStock)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("Empty patch bumps only the modification timestamp", func(t *testing.T) {
		created := seedProduct(t, repo, "Gadget", 5.00, "General", true)

		updated, err := repo.Update(ctx, created.ID, &model.ProductUpdate{})
		require.NoError(t, err)
		require.NotNil(t, updated)

		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Price, updated.Price)
		assert.Equal(t, created.Category, updated.Category)
		assert.Equal(t, created.InStock, updated.InStock)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt) || updated.UpdatedAt.Equal(created.UpdatedAt))
	})

	t.Run("Not found returns nil without error", func(t *testing.T) {
		price := 10.0
		updated, err := repo.Update(ctx, 99999, &model.ProductUpdate{Price: &price})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})
}

func TestProductRepository_Delete(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	t.Run("Removes the record permanently", func(t *testing.T) {
		created := seedProduct(t, repo, "Widget", 9.99, "General", true)

		deleted, err := repo.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		product, err := repo.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, product)
	})

	t.Run("Unknown identifier reports false", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, 99999)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("Identifier is never reused after deletion", func(t *testing.T) {
		first := seedProduct(t, repo, "Ephemeral", 1.00, "General", true)

		deleted, err := repo.Delete(ctx, first.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		second := seedProduct(t, repo, "Successor", 2.00, "General", true)
		assert.Greater(t, second.ID, first.ID)
	})
}

func TestProductRepository_Categories(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	t.Run("Empty catalogue", func(t *testing.T) {
		categories, err := repo.Categories(ctx)
		require.NoError(t, err)
		assert.Empty(t, categories)
	})

	t.Run("No duplicates even when shared", func(t *testing.T) {
		seedProduct(t, repo, "Laptop", 999.99, "Electronics", true)
		seedProduct(t, repo, "Mouse", 19.99, "Electronics", true)
		seedProduct(t, repo, "Keyboard", 49.99, "Electronics", true)
		seedProduct(t, repo, "Mug", 7.50, "Kitchen", true)

		categories, err := repo.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"Electronics", "Kitchen"}, categories)
	})
}

func TestProductRepository_Ping(t *testing.T) {
	pool, cleanup := setupTestDB(t)

	ctx := context.Background()
	repo := NewProductRepository(pool, zerolog.Nop())

	assert.NoError(t, repo.Ping(ctx))

	// A closed pool must surface as a probe failure.
	cleanup()
	assert.Error(t, repo.Ping(ctx))
}
