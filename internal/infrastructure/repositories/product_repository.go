package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/database"
)

// ProductRepositoryImpl implements domain.ProductRepository
type ProductRepositoryImpl struct {
	col *mongo.Collection
}

type dbProduct struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty"`
	Name        string               `bson:"name"`
	NoToneName  string               `bson:"noToneName"`
	Description string               `bson:"description"`
	URLString   string               `bson:"urlString"`
	Discount    int                  `bson:"discount"`
	Pictures    []string             `bson:"pictures"`
	Price       int64                `bson:"price"`
	Sold        int                  `bson:"sold"`
	CategoryID  primitive.ObjectID   `bson:"category"`
	Available   []primitive.ObjectID `bson:"available"`
	CreatedAt   time.Time            `bson:"createdAt"`
	UpdatedAt   time.Time            `bson:"updatedAt"`
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *mongo.Database) domain.ProductRepository {
	return &ProductRepositoryImpl{col: db.Collection(database.ProductsCollection)}
}

// Create implements domain.ProductRepository
func (r *ProductRepositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	doc := productToDB(product)
	doc.ID = primitive.NilObjectID

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrNameTaken
		}
		return err
	}
	product.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

// FindBySlug implements domain.ProductRepository
func (r *ProductRepositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.findOne(ctx, bson.M{"urlString": slug})
}

func (r *ProductRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*domain.Product, error) {
	var doc dbProduct
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NewNotFoundError("Product")
		}
		return nil, err
	}
	return productToDomain(&doc), nil
}

// UpdateByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) UpdateByID(ctx context.Context, id primitive.ObjectID, upd domain.ProductUpdate) error {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Name != nil {
		set["name"] = *upd.Name
	}
	if upd.NoToneName != nil {
		set["noToneName"] = *upd.NoToneName
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Discount != nil {
		set["discount"] = *upd.Discount
	}
	if upd.Pictures != nil {
		set["pictures"] = *upd.Pictures
	}
	if upd.Price != nil {
		set["price"] = *upd.Price
	}
	if upd.Sold != nil {
		set["sold"] = *upd.Sold
	}
	if upd.CategoryID != nil {
		set["category"] = *upd.CategoryID
	}
	if upd.Available != nil {
		set["available"] = *upd.Available
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("Product")
	}
	return nil
}

// DeleteByID implements domain.ProductRepository
func (r *ProductRepositoryImpl) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFoundError("Product")
	}
	return nil
}

// List implements domain.ProductRepository. Search matches the tone-stripped
// name case-insensitively.
func (r *ProductRepositoryImpl) List(ctx context.Context, filter domain.ProductFilter, opts domain.ListOptions) ([]*domain.Product, error) {
	query := bson.M{}
	if filter.Search != "" {
		query["noToneName"] = bson.M{"$regex": regexp.QuoteMeta(filter.Search), "$options": "i"}
	}
	if filter.CategoryID != nil {
		query["category"] = *filter.CategoryID
	}

	cursor, err := r.col.Find(ctx, query, findOptions(opts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []*domain.Product
	for cursor.Next(ctx) {
		var doc dbProduct
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		products = append(products, productToDomain(&doc))
	}
	return products, cursor.Err()
}

func productToDB(p *domain.Product) *dbProduct {
	return &dbProduct{
		ID:          p.ID,
		Name:        p.Name,
		NoToneName:  p.NoToneName,
		Description: p.Description,
		URLString:   p.URLString,
		Discount:    p.Discount,
		Pictures:    p.Pictures,
		Price:       p.Price,
		Sold:        p.Sold,
		CategoryID:  p.CategoryID,
		Available:   p.Available,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func productToDomain(doc *dbProduct) *domain.Product {
	return &domain.Product{
		ID:          doc.ID,
		Name:        doc.Name,
		NoToneName:  doc.NoToneName,
		Description: doc.Description,
		URLString:   doc.URLString,
		Discount:    doc.Discount,
		Pictures:    doc.Pictures,
		Price:       doc.Price,
		Sold:        doc.Sold,
		CategoryID:  doc.CategoryID,
		Available:   doc.Available,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}
