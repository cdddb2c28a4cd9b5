package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/middleware"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/mocks"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/services"
)

// newCatalogTestRouter runs the catalog handlers over the real catalog
// service and the in-memory product repository mock, so slug and search
// derivation are covered end to end.
func newCatalogTestRouter(repo domain.ProductRepository, tokens domain.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorResponder(zap.NewNop()))

	h := NewCatalogHandlers(services.NewCatalogService(repo))
	mw := middleware.NewAuthMW(tokens)

	product := r.Group("/product")
	product.GET("", h.List)
	product.GET("/:id", h.GetByID)
	product.GET("/url/:urlString", h.GetBySlug)

	mut := product.Group("").Use(mw.RequireAuth(), mw.RequireSuperviser())
	mut.POST("", h.Create)
	mut.PATCH("/:id", h.Update)
	mut.DELETE("/:id", h.Delete)
	return r
}

func TestCatalogHandlers_Create(t *testing.T) {
	tokens := mocks.NewMockTokenService()
	tokens.VerifyAccessFunc = verifyByRole(t)

	var created *domain.Product
	repo := mocks.NewMockProductRepository()
	repo.CreateFunc = func(ctx context.Context, p *domain.Product) error {
		p.ID = primitive.NewObjectID()
		created = p
		return nil
	}
	r := newCatalogTestRouter(repo, tokens)

	w, body := performJSON(t, r, http.MethodPost, "/product", map[string]any{
		"name":  "Gạo Sơn Phương Nam",
		"price": 25000,
	}, "tok_superviser")
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %v", w.Code, http.StatusCreated, body)
	}
	if created == nil {
		t.Fatal("product was not persisted")
	}
	if created.NoToneName != "Gao Son Phuong Nam" {
		t.Errorf("noToneName = %q, want %q", created.NoToneName, "Gao Son Phuong Nam")
	}
	if created.URLString != "gao-son-phuong-nam" {
		t.Errorf("urlString = %q, want %q", created.URLString, "gao-son-phuong-nam")
	}
	if created.Price != 25000 {
		t.Errorf("price = %d, want 25000", created.Price)
	}
}

func TestCatalogHandlers_CreateRequiresRole(t *testing.T) {
	tokens := mocks.NewMockTokenService()
	tokens.VerifyAccessFunc = verifyByRole(t)
	r := newCatalogTestRouter(mocks.NewMockProductRepository(), tokens)

	w, _ := performJSON(t, r, http.MethodPost, "/product", map[string]any{
		"name": "X", "price": 1,
	}, "tok_user")
	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}

	w, _ = performJSON(t, r, http.MethodPost, "/product", map[string]any{
		"name": "X", "price": 1,
	}, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestCatalogHandlers_RejectsUnknownFields(t *testing.T) {
	tokens := mocks.NewMockTokenService()
	tokens.VerifyAccessFunc = verifyByRole(t)
	r := newCatalogTestRouter(mocks.NewMockProductRepository(), tokens)

	w, body := performJSON(t, r, http.MethodPost, "/product", map[string]any{
		"name": "X", "price": 1, "sold": 9000,
	}, "tok_superviser")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d, body %v", w.Code, http.StatusBadRequest, body)
	}
}

func TestCatalogHandlers_PublicReads(t *testing.T) {
	id := primitive.NewObjectID()
	product := &domain.Product{
		ID:         id,
		Name:       "Cà phê",
		NoToneName: "Ca phe",
		URLString:  "ca-phe",
		Price:      10000,
	}
	repo := mocks.NewMockProductRepository()
	repo.FindByIDFunc = func(ctx context.Context, got primitive.ObjectID) (*domain.Product, error) {
		if got != id {
			return nil, domain.NewNotFoundError("Product")
		}
		return product, nil
	}
	repo.FindBySlugFunc = func(ctx context.Context, slug string) (*domain.Product, error) {
		if slug != "ca-phe" {
			return nil, domain.NewNotFoundError("Product")
		}
		return product, nil
	}
	r := newCatalogTestRouter(repo, mocks.NewMockTokenService())

	w, body := performJSON(t, r, http.MethodGet, "/product/"+id.Hex(), nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("by id: status = %d, body %v", w.Code, body)
	}

	w, body = performJSON(t, r, http.MethodGet, "/product/url/ca-phe", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("by slug: status = %d, body %v", w.Code, body)
	}
	view, _ := body["product"].(map[string]any)
	if view["urlString"] != "ca-phe" {
		t.Errorf("urlString = %v, want %q", view["urlString"], "ca-phe")
	}

	w, _ = performJSON(t, r, http.MethodGet, "/product/"+primitive.NewObjectID().Hex(), nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("missing product: status = %d, want %d", w.Code, http.StatusNotFound)
	}

	w, _ = performJSON(t, r, http.MethodGet, "/product/not-a-hex-id", nil, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("malformed id: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestCatalogHandlers_SearchQuery(t *testing.T) {
	var gotFilter domain.ProductFilter
	repo := mocks.NewMockProductRepository()
	repo.ListFunc = func(ctx context.Context, filter domain.ProductFilter, opts domain.ListOptions) ([]*domain.Product, error) {
		gotFilter = filter
		return nil, nil
	}
	r := newCatalogTestRouter(repo, mocks.NewMockTokenService())

	w, _ := performJSON(t, r, http.MethodGet, "/product?search=c%C3%A0%20ph%C3%AA", nil, "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}
	if gotFilter.Search != "ca phe" {
		t.Errorf("search reached repo as %q, want tone-stripped %q", gotFilter.Search, "ca phe")
	}

	w, _ = performJSON(t, r, http.MethodGet, "/product?category=nope", nil, "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad category: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
