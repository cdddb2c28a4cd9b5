package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/validation"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/pagination"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/response"
)

var (
	postCreateKeys = []string{"title*", "content*", "pictures"}
	postUpdateKeys = []string{"title", "content", "pictures"}
	siteInfoKeys   = []string{"phone", "email", "address", "taxCode"}
	carouselCreate = []string{"title", "imageUrl*", "linkUrl", "order"}
	carouselUpdate = []string{"title", "imageUrl", "linkUrl", "order"}
)

// ContentHandlers handles post, site-info and carousel HTTP requests
type ContentHandlers struct {
	contentSvc domain.ContentService
}

// NewContentHandlers creates new content handlers
func NewContentHandlers(contentSvc domain.ContentService) *ContentHandlers {
	return &ContentHandlers{contentSvc: contentSvc}
}

// CreatePost adds a post.
func (h *ContentHandlers) CreatePost(c *gin.Context) {
	body, ok := filteredBody(c, postCreateKeys)
	if !ok {
		return
	}

	post := &domain.Post{
		Title:    validation.StringField(body, "title"),
		Content:  validation.StringField(body, "content"),
		Pictures: stringSliceField(body, "pictures"),
	}
	created, err := h.contentSvc.CreatePost(c.Request.Context(), post)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.New(http.StatusCreated, "create post successfully").Set("post", postView(created)))
}

// ListPosts returns posts newest first.
func (h *ContentHandlers) ListPosts(c *gin.Context) {
	posts, err := h.contentSvc.ListPosts(c.Request.Context(), pagination.Parse(c))
	if err != nil {
		c.Error(err)
		return
	}
	views := make([]gin.H, 0, len(posts))
	for _, p := range posts {
		views = append(views, postView(p))
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "find posts successfully").Set("posts", views))
}

// GetPost returns one post by id.
func (h *ContentHandlers) GetPost(c *gin.Context) {
	id, ok := idParam(c, "Post")
	if !ok {
		return
	}
	post, err := h.contentSvc.GetPost(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "get post successfully").Set("post", postView(post)))
}

// UpdatePost patches a post.
func (h *ContentHandlers) UpdatePost(c *gin.Context) {
	id, ok := idParam(c, "Post")
	if !ok {
		return
	}
	body, ok := filteredBody(c, postUpdateKeys)
	if !ok {
		return
	}

	upd := domain.PostUpdate{
		Title:   validation.OptString(body, "title"),
		Content: validation.OptString(body, "content"),
	}
	if s := stringSliceField(body, "pictures"); s != nil {
		upd.Pictures = &s
	}

	if err := h.contentSvc.UpdatePost(c.Request.Context(), id, upd); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "update post successfully"))
}

// DeletePost removes a post.
func (h *ContentHandlers) DeletePost(c *gin.Context) {
	id, ok := idParam(c, "Post")
	if !ok {
		return
	}
	if err := h.contentSvc.DeletePost(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "delete post successfully"))
}

// GetSiteInfo returns the site contact document.
func (h *ContentHandlers) GetSiteInfo(c *gin.Context) {
	info, err := h.contentSvc.GetSiteInfo(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "get site info successfully").Set("siteInfo", siteInfoView(info)))
}

// UpdateSiteInfo patches the site contact document, creating it on first use.
// Unsent fields keep their stored values.
func (h *ContentHandlers) UpdateSiteInfo(c *gin.Context) {
	body, ok := filteredBody(c, siteInfoKeys)
	if !ok {
		return
	}

	upd := domain.SiteInfoUpdate{
		Phone:   validation.OptString(body, "phone"),
		Email:   validation.OptString(body, "email"),
		Address: validation.OptString(body, "address"),
		TaxCode: validation.OptString(body, "taxCode"),
	}
	updated, err := h.contentSvc.UpdateSiteInfo(c.Request.Context(), upd)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "update site info successfully").Set("siteInfo", siteInfoView(updated)))
}

// ListCarousel returns the carousel slides in display order.
func (h *ContentHandlers) ListCarousel(c *gin.Context) {
	items, err := h.contentSvc.ListCarousel(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	views := make([]gin.H, 0, len(items))
	for _, item := range items {
		views = append(views, carouselView(item))
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "find carousel successfully").Set("carousel", views))
}

// CreateCarouselItem adds a slide.
func (h *ContentHandlers) CreateCarouselItem(c *gin.Context) {
	body, ok := filteredBody(c, carouselCreate)
	if !ok {
		return
	}

	item := &domain.CarouselItem{
		Title:    validation.StringField(body, "title"),
		ImageURL: validation.StringField(body, "imageUrl"),
		LinkURL:  validation.StringField(body, "linkUrl"),
		Order:    intField(body, "order"),
	}
	created, err := h.contentSvc.CreateCarouselItem(c.Request.Context(), item)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.New(http.StatusCreated, "create carousel item successfully").
		Set("carouselItem", carouselView(created)))
}

// UpdateCarouselItem patches a slide.
func (h *ContentHandlers) UpdateCarouselItem(c *gin.Context) {
	id, ok := idParam(c, "CarouselItem")
	if !ok {
		return
	}
	body, ok := filteredBody(c, carouselUpdate)
	if !ok {
		return
	}

	upd := domain.CarouselUpdate{
		Title:    validation.OptString(body, "title"),
		ImageURL: validation.OptString(body, "imageUrl"),
		LinkURL:  validation.OptString(body, "linkUrl"),
		Order:    optIntField(body, "order"),
	}
	if err := h.contentSvc.UpdateCarouselItem(c.Request.Context(), id, upd); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "update carousel item successfully"))
}

// DeleteCarouselItem removes a slide.
func (h *ContentHandlers) DeleteCarouselItem(c *gin.Context) {
	id, ok := idParam(c, "CarouselItem")
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteCarouselItem(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "delete carousel item successfully"))
}

func postView(p *domain.Post) gin.H {
	return gin.H{
		"id":        p.ID.Hex(),
		"title":     p.Title,
		"urlString": p.URLString,
		"content":   p.Content,
		"pictures":  p.Pictures,
		"createdAt": p.CreatedAt,
		"updatedAt": p.UpdatedAt,
	}
}

func siteInfoView(info *domain.SiteInfo) gin.H {
	return gin.H{
		"phone":     info.Phone,
		"email":     info.Email,
		"address":   info.Address,
		"taxCode":   info.TaxCode,
		"updatedAt": info.UpdatedAt,
	}
}

func carouselView(item *domain.CarouselItem) gin.H {
	return gin.H{
		"id":        item.ID.Hex(),
		"title":     item.Title,
		"imageUrl":  item.ImageURL,
		"linkUrl":   item.LinkURL,
		"order":     item.Order,
		"createdAt": item.CreatedAt,
		"updatedAt": item.UpdatedAt,
	}
}
