package services

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/validation"
)

// CatalogServiceImpl implements domain.CatalogService
type CatalogServiceImpl struct {
	productRepo domain.ProductRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(productRepo domain.ProductRepository) domain.CatalogService {
	return &CatalogServiceImpl{productRepo: productRepo}
}

// Create implements domain.CatalogService. NoToneName and the slug are
// derived from the name before the document is written.
func (s *CatalogServiceImpl) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	product.NoToneName = validation.RemoveVietnameseTones(product.Name)
	if product.URLString == "" {
		product.URLString = validation.Slugify(product.Name)
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// GetByID implements domain.CatalogService
func (s *CatalogServiceImpl) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// GetBySlug implements domain.CatalogService
func (s *CatalogServiceImpl) GetBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return s.productRepo.FindBySlug(ctx, slug)
}

// List implements domain.CatalogService. Search input is tone-stripped so it
// matches the indexed NoToneName form.
func (s *CatalogServiceImpl) List(ctx context.Context, filter domain.ProductFilter, opts domain.ListOptions) ([]*domain.Product, error) {
	if filter.Search != "" {
		filter.Search = validation.RemoveVietnameseTones(filter.Search)
	}
	return s.productRepo.List(ctx, filter, opts)
}

// Update implements domain.CatalogService. Renaming refreshes the derived
// search name but keeps the slug stable so existing links survive.
func (s *CatalogServiceImpl) Update(ctx context.Context, id primitive.ObjectID, upd domain.ProductUpdate) error {
	if upd.Name != nil {
		noTone := validation.RemoveVietnameseTones(*upd.Name)
		upd.NoToneName = &noTone
	}
	return s.productRepo.UpdateByID(ctx, id, upd)
}

// Delete implements domain.CatalogService
func (s *CatalogServiceImpl) Delete(ctx context.Context, id primitive.ObjectID) error {
	return s.productRepo.DeleteByID(ctx, id)
}
