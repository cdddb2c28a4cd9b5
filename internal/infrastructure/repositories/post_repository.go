package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/database"
)

// PostRepositoryImpl implements domain.PostRepository
type PostRepositoryImpl struct {
	col *mongo.Collection
}

type dbPost struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	URLString string             `bson:"urlString"`
	Content   string             `bson:"content"`
	Pictures  []string           `bson:"pictures"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// NewPostRepository creates a new post repository
func NewPostRepository(db *mongo.Database) domain.PostRepository {
	return &PostRepositoryImpl{col: db.Collection(database.PostsCollection)}
}

// Create implements domain.PostRepository
func (r *PostRepositoryImpl) Create(ctx context.Context, post *domain.Post) error {
	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	res, err := r.col.InsertOne(ctx, &dbPost{
		Title:     post.Title,
		URLString: post.URLString,
		Content:   post.Content,
		Pictures:  post.Pictures,
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrNameTaken
		}
		return err
	}
	post.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID implements domain.PostRepository
func (r *PostRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Post, error) {
	var doc dbPost
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NewNotFoundError("Post")
		}
		return nil, err
	}
	return postToDomain(&doc), nil
}

// UpdateByID implements domain.PostRepository
func (r *PostRepositoryImpl) UpdateByID(ctx context.Context, id primitive.ObjectID, upd domain.PostUpdate) error {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Pictures != nil {
		set["pictures"] = *upd.Pictures
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("Post")
	}
	return nil
}

// DeleteByID implements domain.PostRepository
func (r *PostRepositoryImpl) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFoundError("Post")
	}
	return nil
}

// List implements domain.PostRepository
func (r *PostRepositoryImpl) List(ctx context.Context, opts domain.ListOptions) ([]*domain.Post, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, findOptions(opts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var posts []*domain.Post
	for cursor.Next(ctx) {
		var doc dbPost
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		posts = append(posts, postToDomain(&doc))
	}
	return posts, cursor.Err()
}

func postToDomain(doc *dbPost) *domain.Post {
	return &domain.Post{
		ID:        doc.ID,
		Title:     doc.Title,
		URLString: doc.URLString,
		Content:   doc.Content,
		Pictures:  doc.Pictures,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
}
