package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/mocks"
)

func newContentService(postRepo *mocks.MockPostRepository, siteRepo *mocks.MockSiteInfoRepository, carouselRepo *mocks.MockCarouselRepository, cache *mocks.MockCacheRepository) domain.ContentService {
	return NewContentService(postRepo, siteRepo, carouselRepo, cache, time.Minute, zap.NewNop())
}

func TestContentServiceImpl_SiteInfoCache(t *testing.T) {
	siteRepo := mocks.NewMockSiteInfoRepository()
	reads := 0
	siteRepo.GetFunc = func(ctx context.Context) (*domain.SiteInfo, error) {
		reads++
		return &domain.SiteInfo{Phone: "0912345678", Email: "shop@example.com"}, nil
	}

	svc := newContentService(mocks.NewMockPostRepository(), siteRepo, mocks.NewMockCarouselRepository(), mocks.NewMockCacheRepository())

	info, err := svc.GetSiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "shop@example.com", info.Email)

	// Second read is served from cache.
	_, err = svc.GetSiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, reads)
}

func TestContentServiceImpl_SiteInfoUpdateInvalidates(t *testing.T) {
	siteRepo := mocks.NewMockSiteInfoRepository()
	email := "old@example.com"
	siteRepo.GetFunc = func(ctx context.Context) (*domain.SiteInfo, error) {
		return &domain.SiteInfo{Email: email}, nil
	}
	siteRepo.UpsertFunc = func(ctx context.Context, upd domain.SiteInfoUpdate) (*domain.SiteInfo, error) {
		if upd.Email != nil {
			email = *upd.Email
		}
		return &domain.SiteInfo{Email: email}, nil
	}

	svc := newContentService(mocks.NewMockPostRepository(), siteRepo, mocks.NewMockCarouselRepository(), mocks.NewMockCacheRepository())

	_, err := svc.GetSiteInfo(context.Background())
	require.NoError(t, err)

	newEmail := "new@example.com"
	_, err = svc.UpdateSiteInfo(context.Background(), domain.SiteInfoUpdate{Email: &newEmail})
	require.NoError(t, err)

	info, err := svc.GetSiteInfo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", info.Email)
}

func TestContentServiceImpl_CarouselCacheInvalidation(t *testing.T) {
	carouselRepo := mocks.NewMockCarouselRepository()
	lists := 0
	carouselRepo.ListFunc = func(ctx context.Context) ([]*domain.CarouselItem, error) {
		lists++
		return []*domain.CarouselItem{{Title: "slide"}}, nil
	}

	svc := newContentService(mocks.NewMockPostRepository(), mocks.NewMockSiteInfoRepository(), carouselRepo, mocks.NewMockCacheRepository())

	_, err := svc.ListCarousel(context.Background())
	require.NoError(t, err)
	_, err = svc.ListCarousel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, lists, "second list should hit the cache")

	_, err = svc.CreateCarouselItem(context.Background(), &domain.CarouselItem{Title: "new"})
	require.NoError(t, err)

	_, err = svc.ListCarousel(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, lists, "mutation should invalidate the cache")
}

func TestContentServiceImpl_CreatePostDerivesSlug(t *testing.T) {
	postRepo := mocks.NewMockPostRepository()
	svc := newContentService(postRepo, mocks.NewMockSiteInfoRepository(), mocks.NewMockCarouselRepository(), mocks.NewMockCacheRepository())

	post, err := svc.CreatePost(context.Background(), &domain.Post{Title: "Đèn trang trí mới"})
	require.NoError(t, err)
	assert.Equal(t, "den-trang-tri-moi", post.URLString)
}

func TestCatalogServiceImpl_CreateDerivesSearchFields(t *testing.T) {
	productRepo := mocks.NewMockProductRepository()
	svc := NewCatalogService(productRepo)

	product, err := svc.Create(context.Background(), &domain.Product{Name: "Đèn Chùm Sơn Phương"})
	require.NoError(t, err)
	assert.Equal(t, "Den Chum Son Phuong", product.NoToneName)
	assert.Equal(t, "den-chum-son-phuong", product.URLString)
}

func TestCatalogServiceImpl_SearchIsToneStripped(t *testing.T) {
	productRepo := mocks.NewMockProductRepository()
	var gotFilter domain.ProductFilter
	productRepo.ListFunc = func(ctx context.Context, filter domain.ProductFilter, opts domain.ListOptions) ([]*domain.Product, error) {
		gotFilter = filter
		return nil, nil
	}

	svc := NewCatalogService(productRepo)
	_, err := svc.List(context.Background(), domain.ProductFilter{Search: "đèn chùm"}, domain.ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, "den chum", gotFilter.Search)
}
