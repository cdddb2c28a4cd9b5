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

// SiteInfoRepositoryImpl implements domain.SiteInfoRepository. The collection
// holds at most one document.
type SiteInfoRepositoryImpl struct {
	col *mongo.Collection
}

type dbSiteInfo struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email"`
	Address   string             `bson:"address"`
	TaxCode   string             `bson:"taxCode"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

// NewSiteInfoRepository creates a new site info repository
func NewSiteInfoRepository(db *mongo.Database) domain.SiteInfoRepository {
	return &SiteInfoRepositoryImpl{col: db.Collection(database.SiteInfoCollection)}
}

// Get implements domain.SiteInfoRepository
func (r *SiteInfoRepositoryImpl) Get(ctx context.Context) (*domain.SiteInfo, error) {
	var doc dbSiteInfo
	err := r.col.FindOne(ctx, bson.M{}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NewNotFoundError("SiteInfo")
		}
		return nil, err
	}
	return &domain.SiteInfo{
		ID:        doc.ID,
		Phone:     doc.Phone,
		Email:     doc.Email,
		Address:   doc.Address,
		TaxCode:   doc.TaxCode,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}

// Upsert implements domain.SiteInfoRepository. Only the non-nil fields are
// written, so a partial update never blanks the rest of the document.
func (r *SiteInfoRepositoryImpl) Upsert(ctx context.Context, upd domain.SiteInfoUpdate) (*domain.SiteInfo, error) {
	set := bson.M{"updatedAt": time.Now()}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Address != nil {
		set["address"] = *upd.Address
	}
	if upd.TaxCode != nil {
		set["taxCode"] = *upd.TaxCode
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)
	var doc dbSiteInfo
	if err := r.col.FindOneAndUpdate(ctx, bson.M{}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		return nil, err
	}
	return &domain.SiteInfo{
		ID:        doc.ID,
		Phone:     doc.Phone,
		Email:     doc.Email,
		Address:   doc.Address,
		TaxCode:   doc.TaxCode,
		UpdatedAt: doc.UpdatedAt,
	}, nil
}
