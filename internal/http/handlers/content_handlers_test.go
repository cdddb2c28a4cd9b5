package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/middleware"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/mocks"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/services"
)

type contentFixture struct {
	posts    *mocks.MockPostRepository
	site     *mocks.MockSiteInfoRepository
	carousel *mocks.MockCarouselRepository
	router   *gin.Engine
}

func newContentFixture(t *testing.T) *contentFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &contentFixture{
		posts:    mocks.NewMockPostRepository(),
		site:     mocks.NewMockSiteInfoRepository(),
		carousel: mocks.NewMockCarouselRepository(),
	}
	svc := services.NewContentService(f.posts, f.site, f.carousel,
		mocks.NewMockCacheRepository(), time.Minute, zap.NewNop())

	tokens := mocks.NewMockTokenService()
	tokens.VerifyAccessFunc = verifyByRole(t)
	mw := middleware.NewAuthMW(tokens)
	h := NewContentHandlers(svc)

	r := gin.New()
	r.Use(middleware.ErrorResponder(zap.NewNop()))

	post := r.Group("/post")
	post.GET("", h.ListPosts)
	post.GET("/:id", h.GetPost)
	postMut := post.Group("").Use(mw.RequireAuth(), mw.RequireSuperviser())
	postMut.POST("", h.CreatePost)
	postMut.DELETE("/:id", h.DeletePost)

	r.GET("/site", h.GetSiteInfo)
	r.PATCH("/site", mw.RequireAuth(), mw.RequireAdmin(), h.UpdateSiteInfo)

	carousel := r.Group("/carousel")
	carousel.GET("", h.ListCarousel)
	carouselMut := carousel.Group("").Use(mw.RequireAuth(), mw.RequireSuperviser())
	carouselMut.POST("", h.CreateCarouselItem)

	f.router = r
	return f
}

func TestContentHandlers_CreatePost(t *testing.T) {
	f := newContentFixture(t)

	var created *domain.Post
	f.posts.CreateFunc = func(ctx context.Context, p *domain.Post) error {
		p.ID = primitive.NewObjectID()
		created = p
		return nil
	}

	w, body := performJSON(t, f.router, http.MethodPost, "/post", map[string]any{
		"title":   "Món ăn miền Tây",
		"content": "...",
	}, "tok_superviser")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %v", w.Code, http.StatusCreated, body)
	}
	if created.URLString != "mon-an-mien-tay" {
		t.Errorf("urlString = %q, want %q", created.URLString, "mon-an-mien-tay")
	}

	w, body = performJSON(t, f.router, http.MethodPost, "/post", map[string]any{
		"title": "no content",
	}, "tok_superviser")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing content: status = %d, want %d, body %v", w.Code, http.StatusBadRequest, body)
	}
}

func TestContentHandlers_SiteInfo(t *testing.T) {
	f := newContentFixture(t)

	f.site.GetFunc = func(ctx context.Context) (*domain.SiteInfo, error) {
		return &domain.SiteInfo{Phone: "0912345678", Email: "shop@example.com"}, nil
	}

	w, body := performJSON(t, f.router, http.MethodGet, "/site", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %v", w.Code, http.StatusOK, body)
	}
	view, _ := body["siteInfo"].(map[string]any)
	if view["email"] != "shop@example.com" {
		t.Errorf("email = %v, want %q", view["email"], "shop@example.com")
	}

	w, _ = performJSON(t, f.router, http.MethodPatch, "/site", map[string]any{
		"phone": "0987654321",
	}, "tok_superviser")
	if w.Code != http.StatusForbidden {
		t.Errorf("superviser updating site info: status = %d, want %d", w.Code, http.StatusForbidden)
	}

	var upserted domain.SiteInfoUpdate
	f.site.UpsertFunc = func(ctx context.Context, upd domain.SiteInfoUpdate) (*domain.SiteInfo, error) {
		upserted = upd
		return &domain.SiteInfo{Phone: *upd.Phone, Email: "shop@example.com", TaxCode: *upd.TaxCode}, nil
	}
	w, _ = performJSON(t, f.router, http.MethodPatch, "/site", map[string]any{
		"phone":   "0987654321",
		"taxCode": "123",
	}, "tok_admin")
	if w.Code != http.StatusOK {
		t.Fatalf("admin updating site info: status = %d, want %d", w.Code, http.StatusOK)
	}
	if upserted.Phone == nil || *upserted.Phone != "0987654321" {
		t.Errorf("upserted phone = %v, want 0987654321", upserted.Phone)
	}
	// A partial body must leave the unsent fields out of the update entirely.
	if upserted.Email != nil || upserted.Address != nil {
		t.Errorf("unsent fields reached the update: email=%v address=%v", upserted.Email, upserted.Address)
	}
}

func TestContentHandlers_Carousel(t *testing.T) {
	f := newContentFixture(t)

	f.carousel.ListFunc = func(ctx context.Context) ([]*domain.CarouselItem, error) {
		return []*domain.CarouselItem{
			{ID: primitive.NewObjectID(), ImageURL: "https://img/1", Order: 1},
			{ID: primitive.NewObjectID(), ImageURL: "https://img/2", Order: 2},
		}, nil
	}

	w, body := performJSON(t, f.router, http.MethodGet, "/carousel", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d, body %v", w.Code, http.StatusOK, body)
	}
	views, _ := body["carousel"].([]any)
	if len(views) != 2 {
		t.Fatalf("len(carousel) = %d, want 2", len(views))
	}

	w, body = performJSON(t, f.router, http.MethodPost, "/carousel", map[string]any{
		"title": "no image",
	}, "tok_superviser")
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing imageUrl: status = %d, want %d, body %v", w.Code, http.StatusBadRequest, body)
	}

	f.carousel.CreateFunc = func(ctx context.Context, item *domain.CarouselItem) error {
		item.ID = primitive.NewObjectID()
		return nil
	}
	w, body = performJSON(t, f.router, http.MethodPost, "/carousel", map[string]any{
		"imageUrl": "https://img/3",
		"order":    3,
	}, "tok_superviser")
	if w.Code != http.StatusCreated {
		t.Errorf("status = %d, want %d, body %v", w.Code, http.StatusCreated, body)
	}
}
