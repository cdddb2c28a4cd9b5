package mocks

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// MockProductRepository implements domain.ProductRepository for testing
type MockProductRepository struct {
	CreateFunc     func(ctx context.Context, product *domain.Product) error
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	FindBySlugFunc func(ctx context.Context, slug string) (*domain.Product, error)
	UpdateByIDFunc func(ctx context.Context, id primitive.ObjectID, upd domain.ProductUpdate) error
	DeleteByIDFunc func(ctx context.Context, id primitive.ObjectID) error
	ListFunc       func(ctx context.Context, filter domain.ProductFilter, opts domain.ListOptions) ([]*domain.Product, error)
}

func NewMockProductRepository() *MockProductRepository { return &MockProductRepository{} }

func (m *MockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, product)
	}
	product.ID = primitive.NewObjectID()
	return nil
}

func (m *MockProductRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.NewNotFoundError("Product")
}

func (m *MockProductRepository) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	if m.FindBySlugFunc != nil {
		return m.FindBySlugFunc(ctx, slug)
	}
	return nil, domain.NewNotFoundError("Product")
}

func (m *MockProductRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, upd domain.ProductUpdate) error {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, upd)
	}
	return nil
}

func (m *MockProductRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockProductRepository) List(ctx context.Context, filter domain.ProductFilter, opts domain.ListOptions) ([]*domain.Product, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter, opts)
	}
	return nil, nil
}

// MockPostRepository implements domain.PostRepository for testing
type MockPostRepository struct {
	CreateFunc     func(ctx context.Context, post *domain.Post) error
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*domain.Post, error)
	UpdateByIDFunc func(ctx context.Context, id primitive.ObjectID, upd domain.PostUpdate) error
	DeleteByIDFunc func(ctx context.Context, id primitive.ObjectID) error
	ListFunc       func(ctx context.Context, opts domain.ListOptions) ([]*domain.Post, error)
}

func NewMockPostRepository() *MockPostRepository { return &MockPostRepository{} }

func (m *MockPostRepository) Create(ctx context.Context, post *domain.Post) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, post)
	}
	post.ID = primitive.NewObjectID()
	return nil
}

func (m *MockPostRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.NewNotFoundError("Post")
}

func (m *MockPostRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, upd domain.PostUpdate) error {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, upd)
	}
	return nil
}

func (m *MockPostRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockPostRepository) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Post, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, opts)
	}
	return nil, nil
}

// MockSiteInfoRepository implements domain.SiteInfoRepository for testing
type MockSiteInfoRepository struct {
	GetFunc    func(ctx context.Context) (*domain.SiteInfo, error)
	UpsertFunc func(ctx context.Context, upd domain.SiteInfoUpdate) (*domain.SiteInfo, error)
}

func NewMockSiteInfoRepository() *MockSiteInfoRepository { return &MockSiteInfoRepository{} }

func (m *MockSiteInfoRepository) Get(ctx context.Context) (*domain.SiteInfo, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, domain.NewNotFoundError("SiteInfo")
}

// Upsert defaults to applying the update onto an empty document.
func (m *MockSiteInfoRepository) Upsert(ctx context.Context, upd domain.SiteInfoUpdate) (*domain.SiteInfo, error) {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, upd)
	}
	info := &domain.SiteInfo{}
	if upd.Phone != nil {
		info.Phone = *upd.Phone
	}
	if upd.Email != nil {
		info.Email = *upd.Email
	}
	if upd.Address != nil {
		info.Address = *upd.Address
	}
	if upd.TaxCode != nil {
		info.TaxCode = *upd.TaxCode
	}
	return info, nil
}

// MockCarouselRepository implements domain.CarouselRepository for testing
type MockCarouselRepository struct {
	CreateFunc     func(ctx context.Context, item *domain.CarouselItem) error
	UpdateByIDFunc func(ctx context.Context, id primitive.ObjectID, upd domain.CarouselUpdate) error
	DeleteByIDFunc func(ctx context.Context, id primitive.ObjectID) error
	ListFunc       func(ctx context.Context) ([]*domain.CarouselItem, error)
}

func NewMockCarouselRepository() *MockCarouselRepository { return &MockCarouselRepository{} }

func (m *MockCarouselRepository) Create(ctx context.Context, item *domain.CarouselItem) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item)
	}
	item.ID = primitive.NewObjectID()
	return nil
}

func (m *MockCarouselRepository) UpdateByID(ctx context.Context, id primitive.ObjectID, upd domain.CarouselUpdate) error {
	if m.UpdateByIDFunc != nil {
		return m.UpdateByIDFunc(ctx, id, upd)
	}
	return nil
}

func (m *MockCarouselRepository) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteByIDFunc != nil {
		return m.DeleteByIDFunc(ctx, id)
	}
	return nil
}

func (m *MockCarouselRepository) List(ctx context.Context) ([]*domain.CarouselItem, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

// Compile-time interface compliance verification
var (
	_ domain.ProductRepository  = (*MockProductRepository)(nil)
	_ domain.PostRepository     = (*MockPostRepository)(nil)
	_ domain.SiteInfoRepository = (*MockSiteInfoRepository)(nil)
	_ domain.CarouselRepository = (*MockCarouselRepository)(nil)
)
