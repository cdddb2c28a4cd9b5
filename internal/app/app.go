package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/internal/config"
	httpx "github.com/robertnguyen279/son-phuong-nam-backend/internal/http"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/handlers"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/middleware"
)

// BuildEngine wires the container into a ready gin engine. The Lambda entry
// point and the plain HTTP server share it.
func BuildEngine(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*gin.Engine, *Container, error) {
	gin.SetMode(cfg.GinMode)

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	userH := handlers.NewUserHandlers(c.AuthSvc, c.UserSvc)
	catalogH := handlers.NewCatalogHandlers(c.CatalogSvc)
	contentH := handlers.NewContentHandlers(c.ContentSvc)
	uploadH := handlers.NewUploadHandlers(c.FileStore)
	authMW := middleware.NewAuthMW(c.TokenSvc)

	r := httpx.BuildRouter(userH, catalogH, contentH, uploadH, authMW, cfg.CORSOrigins, logger)
	return r, c, nil
}

// Run starts the HTTP server on the configured port.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	r, _, err := BuildEngine(ctx, cfg, logger)
	if err != nil {
		return err
	}

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
