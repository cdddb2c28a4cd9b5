package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/validation"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/pagination"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/response"
)

var (
	productCreateKeys = []string{"name*", "description", "price*", "discount", "pictures", "category", "available"}
	productUpdateKeys = []string{"name", "description", "price", "discount", "pictures", "category", "available"}
)

// CatalogHandlers handles product HTTP requests
type CatalogHandlers struct {
	catalogSvc domain.CatalogService
}

// NewCatalogHandlers creates new catalog handlers
func NewCatalogHandlers(catalogSvc domain.CatalogService) *CatalogHandlers {
	return &CatalogHandlers{catalogSvc: catalogSvc}
}

// Create adds a product to the catalog.
func (h *CatalogHandlers) Create(c *gin.Context) {
	body, ok := filteredBody(c, productCreateKeys)
	if !ok {
		return
	}

	product := &domain.Product{
		Name:        validation.StringField(body, "name"),
		Description: validation.StringField(body, "description"),
		Price:       int64Field(body, "price"),
		Discount:    intField(body, "discount"),
		Pictures:    stringSliceField(body, "pictures"),
	}
	if id, ok := objectIDField(body, "category"); ok {
		product.CategoryID = id
	}
	ids, err := objectIDSliceField(body, "available")
	if err != nil {
		c.Error(err)
		return
	}
	product.Available = ids

	created, err := h.catalogSvc.Create(c.Request.Context(), product)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, response.New(http.StatusCreated, "create product successfully").
		Set("product", productView(created)))
}

// List returns products, optionally narrowed by search text and category.
func (h *CatalogHandlers) List(c *gin.Context) {
	filter := domain.ProductFilter{Search: c.Query("search")}
	if raw := c.Query("category"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			c.Error(&domain.InvalidQueryError{Param: "category"})
			return
		}
		filter.CategoryID = &id
	}

	products, err := h.catalogSvc.List(c.Request.Context(), filter, pagination.Parse(c))
	if err != nil {
		c.Error(err)
		return
	}

	views := make([]gin.H, 0, len(products))
	for _, p := range products {
		views = append(views, productView(p))
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "find products successfully").Set("products", views))
}

// GetByID returns one product by id.
func (h *CatalogHandlers) GetByID(c *gin.Context) {
	id, ok := idParam(c, "Product")
	if !ok {
		return
	}
	product, err := h.catalogSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "get product successfully").Set("product", productView(product)))
}

// GetBySlug returns one product by its URL slug.
func (h *CatalogHandlers) GetBySlug(c *gin.Context) {
	product, err := h.catalogSvc.GetBySlug(c.Request.Context(), c.Param("urlString"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "get product successfully").Set("product", productView(product)))
}

// Update patches a product.
func (h *CatalogHandlers) Update(c *gin.Context) {
	id, ok := idParam(c, "Product")
	if !ok {
		return
	}
	body, ok := filteredBody(c, productUpdateKeys)
	if !ok {
		return
	}

	upd := domain.ProductUpdate{
		Name:        validation.OptString(body, "name"),
		Description: validation.OptString(body, "description"),
		Price:       optInt64Field(body, "price"),
		Discount:    optIntField(body, "discount"),
	}
	if s := stringSliceField(body, "pictures"); s != nil {
		upd.Pictures = &s
	}
	if cid, ok := objectIDField(body, "category"); ok {
		upd.CategoryID = &cid
	}
	if _, present := body["available"]; present {
		ids, err := objectIDSliceField(body, "available")
		if err != nil {
			c.Error(err)
			return
		}
		upd.Available = &ids
	}

	if err := h.catalogSvc.Update(c.Request.Context(), id, upd); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "update product successfully"))
}

// Delete removes a product.
func (h *CatalogHandlers) Delete(c *gin.Context) {
	id, ok := idParam(c, "Product")
	if !ok {
		return
	}
	if err := h.catalogSvc.Delete(c.Request.Context(), id); err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, response.New(http.StatusOK, "delete product successfully"))
}

func productView(p *domain.Product) gin.H {
	view := gin.H{
		"id":          p.ID.Hex(),
		"name":        p.Name,
		"noToneName":  p.NoToneName,
		"description": p.Description,
		"urlString":   p.URLString,
		"discount":    p.Discount,
		"pictures":    p.Pictures,
		"price":       p.Price,
		"sold":        p.Sold,
		"createdAt":   p.CreatedAt,
		"updatedAt":   p.UpdatedAt,
	}
	if !p.CategoryID.IsZero() {
		view["category"] = p.CategoryID.Hex()
	}
	if len(p.Available) > 0 {
		hexes := make([]string, len(p.Available))
		for i, id := range p.Available {
			hexes[i] = id.Hex()
		}
		view["available"] = hexes
	}
	return view
}

func idParam(c *gin.Context, entity string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.Error(domain.NewNotFoundError(entity))
		return primitive.NilObjectID, false
	}
	return id, true
}

// JSON numbers arrive as float64; the helpers below narrow them.

func intField(body map[string]any, key string) int {
	if v, ok := body[key].(float64); ok {
		return int(v)
	}
	return 0
}

func int64Field(body map[string]any, key string) int64 {
	if v, ok := body[key].(float64); ok {
		return int64(v)
	}
	return 0
}

func optIntField(body map[string]any, key string) *int {
	if v, ok := body[key].(float64); ok {
		n := int(v)
		return &n
	}
	return nil
}

func optInt64Field(body map[string]any, key string) *int64 {
	if v, ok := body[key].(float64); ok {
		n := int64(v)
		return &n
	}
	return nil
}

func stringSliceField(body map[string]any, key string) []string {
	raw, ok := body[key].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func objectIDField(body map[string]any, key string) (primitive.ObjectID, bool) {
	s, ok := body[key].(string)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return id, true
}

func objectIDSliceField(body map[string]any, key string) ([]primitive.ObjectID, error) {
	raw, ok := body[key].([]any)
	if !ok {
		return nil, nil
	}
	out := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		s, ok := v.(string)
		if !ok {
			return nil, &domain.InvalidFieldError{Field: key, Reason: "invalid"}
		}
		id, err := primitive.ObjectIDFromHex(s)
		if err != nil {
			return nil, &domain.InvalidFieldError{Field: key, Reason: "invalid"}
		}
		out = append(out, id)
	}
	return out, nil
}
