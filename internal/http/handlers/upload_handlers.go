package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/response"
)

// UploadHandlers handles file upload HTTP requests
type UploadHandlers struct {
	fileStore domain.FileStore
}

// NewUploadHandlers creates new upload handlers
func NewUploadHandlers(fileStore domain.FileStore) *UploadHandlers {
	return &UploadHandlers{fileStore: fileStore}
}

// Upload stores the multipart file under the "file" form key and returns its
// public URL.
func (h *UploadHandlers) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.Error(&domain.InvalidFieldError{Field: "file", Reason: "required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.Error(err)
		return
	}
	defer file.Close()

	url, err := h.fileStore.Upload(c.Request.Context(), header.Filename,
		header.Header.Get("Content-Type"), file)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, response.New(http.StatusCreated, "upload file successfully").Set("url", url))
}
