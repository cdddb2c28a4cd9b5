package repositories

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// findOptions translates a paginated sorted scan into driver options.
// Defaults: sort by createdAt descending, limit 10.
func findOptions(opts domain.ListOptions) *options.FindOptions {
	sortBy := opts.SortBy
	if sortBy == "" {
		sortBy = "createdAt"
	}
	dir := -1
	if opts.Order == "asc" {
		dir = 1
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = 10
	}

	return options.Find().
		SetSkip(opts.Skip).
		SetLimit(limit).
		SetSort(bson.D{{Key: sortBy, Value: dir}})
}
