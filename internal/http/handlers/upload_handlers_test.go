package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/robertnguyen279/son-phuong-nam-backend/internal/http/middleware"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/mocks"
)

func TestUploadHandlers_Upload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotFilename, gotContent string
	store := mocks.NewMockFileStore()
	store.UploadFunc = func(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
		gotFilename = filename
		data, err := io.ReadAll(body)
		if err != nil {
			return "", err
		}
		gotContent = string(data)
		return "https://bucket.s3.region.amazonaws.com/key.png", nil
	}

	tokens := mocks.NewMockTokenService()
	tokens.VerifyAccessFunc = verifyByRole(t)

	r := gin.New()
	r.Use(middleware.ErrorResponder(zap.NewNop()))
	mw := middleware.NewAuthMW(tokens)
	r.POST("/upload", mw.RequireAuth(), mw.RequireSuperviser(), NewUploadHandlers(store).Upload)

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "photo.png")
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("png-bytes")); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer tok_superviser")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d, body %s", w.Code, http.StatusCreated, w.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["url"] != "https://bucket.s3.region.amazonaws.com/key.png" {
		t.Errorf("url = %v", body["url"])
	}
	if gotFilename != "photo.png" || gotContent != "png-bytes" {
		t.Errorf("store received (%q, %q)", gotFilename, gotContent)
	}

	// Without a file part the request fails before touching the store.
	req = httptest.NewRequest(http.MethodPost, "/upload", nil)
	req.Header.Set("Authorization", "Bearer tok_superviser")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing file: status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
