package services

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/validation"
)

// Cache keys for the rarely changing public content
const (
	siteInfoCacheKey = "siteinfo"
	carouselCacheKey = "carousel"
)

// ContentServiceImpl implements domain.ContentService. Site info and the
// carousel list are read on nearly every page load, so both sit behind a
// read-through cache that mutations invalidate.
type ContentServiceImpl struct {
	postRepo     domain.PostRepository
	siteRepo     domain.SiteInfoRepository
	carouselRepo domain.CarouselRepository
	cache        domain.CacheRepository
	cacheTTL     time.Duration
	logger       *zap.Logger
}

// NewContentService creates a new content service
func NewContentService(
	postRepo domain.PostRepository,
	siteRepo domain.SiteInfoRepository,
	carouselRepo domain.CarouselRepository,
	cache domain.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) domain.ContentService {
	return &ContentServiceImpl{
		postRepo:     postRepo,
		siteRepo:     siteRepo,
		carouselRepo: carouselRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		logger:       logger,
	}
}

// CreatePost implements domain.ContentService
func (s *ContentServiceImpl) CreatePost(ctx context.Context, post *domain.Post) (*domain.Post, error) {
	if post.URLString == "" {
		post.URLString = validation.Slugify(post.Title)
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost implements domain.ContentService
func (s *ContentServiceImpl) GetPost(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	return s.postRepo.FindByID(ctx, id)
}

// ListPosts implements domain.ContentService
func (s *ContentServiceImpl) ListPosts(ctx context.Context, opts domain.ListOptions) ([]*domain.Post, error) {
	return s.postRepo.List(ctx, opts)
}

// UpdatePost implements domain.ContentService
func (s *ContentServiceImpl) UpdatePost(ctx context.Context, id primitive.ObjectID, upd domain.PostUpdate) error {
	return s.postRepo.UpdateByID(ctx, id, upd)
}

// DeletePost implements domain.ContentService
func (s *ContentServiceImpl) DeletePost(ctx context.Context, id primitive.ObjectID) error {
	return s.postRepo.DeleteByID(ctx, id)
}

// GetSiteInfo implements domain.ContentService
func (s *ContentServiceImpl) GetSiteInfo(ctx context.Context) (*domain.SiteInfo, error) {
	var cached domain.SiteInfo
	hit, err := s.cache.GetJSON(ctx, siteInfoCacheKey, &cached)
	if err != nil {
		// A broken cache must not take reads down.
		s.logger.Warn("site info cache read failed", zap.Error(err))
	}
	if hit {
		return &cached, nil
	}

	info, err := s.siteRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, siteInfoCacheKey, info, s.cacheTTL); err != nil {
		s.logger.Warn("site info cache write failed", zap.Error(err))
	}
	return info, nil
}

// UpdateSiteInfo implements domain.ContentService
func (s *ContentServiceImpl) UpdateSiteInfo(ctx context.Context, upd domain.SiteInfoUpdate) (*domain.SiteInfo, error) {
	info, err := s.siteRepo.Upsert(ctx, upd)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Del(ctx, siteInfoCacheKey); err != nil {
		s.logger.Warn("site info cache invalidation failed", zap.Error(err))
	}
	return info, nil
}

// ListCarousel implements domain.ContentService
func (s *ContentServiceImpl) ListCarousel(ctx context.Context) ([]*domain.CarouselItem, error) {
	var cached []*domain.CarouselItem
	hit, err := s.cache.GetJSON(ctx, carouselCacheKey, &cached)
	if err != nil {
		s.logger.Warn("carousel cache read failed", zap.Error(err))
	}
	if hit {
		return cached, nil
	}

	items, err := s.carouselRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, carouselCacheKey, items, s.cacheTTL); err != nil {
		s.logger.Warn("carousel cache write failed", zap.Error(err))
	}
	return items, nil
}

// CreateCarouselItem implements domain.ContentService
func (s *ContentServiceImpl) CreateCarouselItem(ctx context.Context, item *domain.CarouselItem) (*domain.CarouselItem, error) {
	if err := s.carouselRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	s.invalidateCarousel(ctx)
	return item, nil
}

// UpdateCarouselItem implements domain.ContentService
func (s *ContentServiceImpl) UpdateCarouselItem(ctx context.Context, id primitive.ObjectID, upd domain.CarouselUpdate) error {
	if err := s.carouselRepo.UpdateByID(ctx, id, upd); err != nil {
		return err
	}
	s.invalidateCarousel(ctx)
	return nil
}

// DeleteCarouselItem implements domain.ContentService
func (s *ContentServiceImpl) DeleteCarouselItem(ctx context.Context, id primitive.ObjectID) error {
	if err := s.carouselRepo.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateCarousel(ctx)
	return nil
}

func (s *ContentServiceImpl) invalidateCarousel(ctx context.Context) {
	if err := s.cache.Del(ctx, carouselCacheKey); err != nil {
		s.logger.Warn("carousel cache invalidation failed", zap.Error(err))
	}
}
