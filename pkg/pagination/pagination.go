package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// Parse extracts and validates skip/limit/sortBy/order query parameters.
func Parse(c *gin.Context) domain.ListOptions {
	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", strconv.Itoa(DefaultLimit)), 10, 64)

	if skip < 0 {
		skip = 0
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	order := c.DefaultQuery("order", "desc")
	if order != "asc" {
		order = "desc"
	}

	return domain.ListOptions{
		Skip:   skip,
		Limit:  limit,
		SortBy: c.DefaultQuery("sortBy", "createdAt"),
		Order:  order,
	}
}
