package service

import (
	"context"
	"fmt"
	"time"

	"product-catalog/internal/model"
	"product-catalog/internal/repository"

	"github.com/rs/zerolog"
)

// Pagination bounds for listing products.
const (
	DefaultLimit = 100
	MaxLimit     = 500
)

// productService implements ProductService.
type productService struct {
	repo   repository.ProductRepository
	logger zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(repo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		repo:   repo,
		logger: logger.With().Str("service", "product").Logger(),
	}
}

// List retrieves a page of products matching the filter. Skip and limit are
// clamped into their valid ranges; an empty page is not an error.
func (s *productService) List(ctx context.Context, filter model.ListFilter) ([]model.Product, error) {
	if filter.Skip < 0 {
		filter.Skip = 0
	}
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}
	if filter.Limit > MaxLimit {
		filter.Limit = MaxLimit
	}

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).
			Int("limit", filter.Limit).
			Int("skip", filter.Skip).
			Msg("failed to list products")
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	s.logger.Debug().
		Int("count", len(products)).
		Int("limit", filter.Limit).
		Int("skip", filter.Skip).
		Msg("listed products")

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found")
		return nil, &model.NotFoundError{ID: id}
	}

	return product, nil
}

// Create validates the payload, applies defaults, and persists the product.
// Validation runs before any mutation.
func (s *productService) Create(ctx context.Context, input *model.ProductCreate) (*model.Product, error) {
	if err := input.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("product creation rejected")
		return nil, err
	}
	input.ApplyDefaults()

	product, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info().
		Int64("product_id", product.ID).
		Str("name", product.Name).
		Msg("product created")

	return product, nil
}

// Update validates the whole patch before applying it, so a failure on any
// one field leaves the record completely unmodified.
func (s *productService) Update(ctx context.Context, id int64, patch *model.ProductUpdate) (*model.Product, error) {
	if err := patch.Validate(); err != nil {
		s.logger.Warn().Err(err).Int64("product_id", id).Msg("product update rejected")
		return nil, err
	}

	product, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to update product")
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if product == nil {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for update")
		return nil, &model.NotFoundError{ID: id}
	}

	s.logger.Info().Int64("product_id", id).Msg("product updated")
	return product, nil
}

// Delete removes a product permanently.
func (s *productService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if !deleted {
		s.logger.Debug().Int64("product_id", id).Msg("product not found for delete")
		return &model.NotFoundError{ID: id}
	}

	s.logger.Info().Int64("product_id", id).Msg("product deleted")
	return nil
}

// Categories retrieves the distinct category values.
func (s *productService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.repo.Categories(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list categories")
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// Health probes the persistence layer and reports the current status.
func (s *productService) Health(ctx context.Context) (*model.HealthStatus, error) {
	if err := s.repo.Ping(ctx); err != nil {
		s.logger.Error().Err(err).Msg("health check failed")
		return nil, &model.UnavailableError{Cause: err}
	}

	return &model.HealthStatus{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: time.Now(),
	}, nil
}
