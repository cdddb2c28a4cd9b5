package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/database"
)

// CarouselRepositoryImpl implements domain.CarouselRepository
type CarouselRepositoryImpl struct {
	col *mongo.Collection
}

type dbCarouselItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	ImageURL  string             `bson:"imageUrl"`
	LinkURL   string             `bson:"linkUrl,omitempty"`
	Order     int                `bson:"order"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// NewCarouselRepository creates a new carousel repository
func NewCarouselRepository(db *mongo.Database) domain.CarouselRepository {
	return &CarouselRepositoryImpl{col: db.Collection(database.CarouselCollection)}
}

// Create implements domain.CarouselRepository
func (r *CarouselRepositoryImpl) Create(ctx context.Context, item *domain.CarouselItem) error {
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, &dbCarouselItem{
		Title:     item.Title,
		ImageURL:  item.ImageURL,
		LinkURL:   item.LinkURL,
		Order:     item.Order,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	})
	if err != nil {
		return err
	}
	item.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// UpdateByID implements domain.CarouselRepository
func (r *CarouselRepositoryImpl) UpdateByID(ctx context.Context, id primitive.ObjectID, upd domain.CarouselUpdate) error {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.ImageURL != nil {
		set["imageUrl"] = *upd.ImageURL
	}
	if upd.LinkURL != nil {
		set["linkUrl"] = *upd.LinkURL
	}
	if upd.Order != nil {
		set["order"] = *upd.Order
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("Carousel")
	}
	return nil
}

// DeleteByID implements domain.CarouselRepository
func (r *CarouselRepositoryImpl) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFoundError("Carousel")
	}
	return nil
}

// List implements domain.CarouselRepository, ordered by the Order field.
func (r *CarouselRepositoryImpl) List(ctx context.Context) ([]*domain.CarouselItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "order", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []*domain.CarouselItem
	for cursor.Next(ctx) {
		var doc dbCarouselItem
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		items = append(items, &domain.CarouselItem{
			ID:        doc.ID,
			Title:     doc.Title,
			ImageURL:  doc.ImageURL,
			LinkURL:   doc.LinkURL,
			Order:     doc.Order,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}
	return items, cursor.Err()
}
