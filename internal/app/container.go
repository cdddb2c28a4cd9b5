package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/config"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/auth"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/database"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/identity"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/repositories"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/storage"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/services"
)

// Container holds all dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger

	// Infrastructure
	Mongo       *mongo.Database
	RedisClient *redis.Client

	// Repositories
	UserRepo     domain.UserRepository
	ProductRepo  domain.ProductRepository
	PostRepo     domain.PostRepository
	SiteRepo     domain.SiteInfoRepository
	CarouselRepo domain.CarouselRepository
	CacheRepo    domain.CacheRepository

	// Services
	PasswordSvc domain.PasswordService
	TokenSvc    domain.TokenService
	Providers   domain.ProviderClient
	FileStore   domain.FileStore
	AuthSvc     domain.AuthService
	UserSvc     domain.UserService
	CatalogSvc  domain.CatalogService
	ContentSvc  domain.ContentService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Container, error) {
	db, err := database.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB).Client
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	fileStore, err := storage.NewS3Service(ctx, cfg.S3Bucket, cfg.S3Region)
	if err != nil {
		return nil, err
	}

	c := &Container{
		Config:      cfg,
		Logger:      logger,
		Mongo:       db,
		RedisClient: rdb,

		UserRepo:     repositories.NewUserRepository(db),
		ProductRepo:  repositories.NewProductRepository(db),
		PostRepo:     repositories.NewPostRepository(db),
		SiteRepo:     repositories.NewSiteInfoRepository(db),
		CarouselRepo: repositories.NewCarouselRepository(db),
		CacheRepo:    repositories.NewCacheRepository(rdb),

		PasswordSvc: auth.NewPasswordService(),
		TokenSvc:    auth.NewJWTService(cfg.AccessSecret, cfg.RefreshSecret, cfg.JWTIssuer, cfg.AccessTTL, cfg.RefreshTTL),
		Providers:   identity.NewProviderClient(),
		FileStore:   fileStore,
	}

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.PasswordSvc, c.TokenSvc, c.Providers)
	c.UserSvc = services.NewUserService(c.UserRepo, c.PasswordSvc)
	c.CatalogSvc = services.NewCatalogService(c.ProductRepo)
	c.ContentSvc = services.NewContentService(c.PostRepo, c.SiteRepo, c.CarouselRepo, c.CacheRepo, cfg.CacheTTL, logger)

	return c, nil
}
