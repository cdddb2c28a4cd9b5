package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/handlers"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/middleware"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/mocks"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/services"
)

func newRouter(t *testing.T, corsOrigins []string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userH := handlers.NewUserHandlers(mocks.NewMockAuthService(), mocks.NewMockUserService())
	catalogH := handlers.NewCatalogHandlers(services.NewCatalogService(mocks.NewMockProductRepository()))
	contentH := handlers.NewContentHandlers(services.NewContentService(
		mocks.NewMockPostRepository(), mocks.NewMockSiteInfoRepository(), mocks.NewMockCarouselRepository(),
		mocks.NewMockCacheRepository(), time.Minute, zap.NewNop()))
	uploadH := handlers.NewUploadHandlers(mocks.NewMockFileStore())
	authMW := middleware.NewAuthMW(mocks.NewMockTokenService())

	return BuildRouter(userH, catalogH, contentH, uploadH, authMW, corsOrigins, zap.NewNop())
}

func TestBuildRouter_Health(t *testing.T) {
	r := newRouter(t, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/no/such/path", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown path: status = %d, want %d", w.Code, http.StatusNotFound)
	}
}

func TestBuildRouter_CORS(t *testing.T) {
	// Default configuration serves any origin.
	r := newRouter(t, nil)
	req := httptest.NewRequest(http.MethodOptions, "/user/login", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}

	// An explicit origin list echoes the allowed origin and blocks others.
	r = newRouter(t, []string{"https://shop.example.com"})
	req = httptest.NewRequest(http.MethodOptions, "/user/login", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://shop.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q, want the configured origin", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/user/login", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Access-Control-Allow-Origin = %q", got)
	}
}
