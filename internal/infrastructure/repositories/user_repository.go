package repositories

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/internal/infrastructure/database"
)

// UserRepositoryImpl implements domain.UserRepository over a mongo collection
type UserRepositoryImpl struct {
	col *mongo.Collection
}

// dbUser is the persisted shape of a user document
type dbUser struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	FirstName    string             `bson:"firstName"`
	LastName     string             `bson:"lastName"`
	Email        string             `bson:"email"`
	Phone        string             `bson:"phone,omitempty"`
	PasswordHash string             `bson:"password,omitempty"`
	AvatarURL    string             `bson:"avatarUrl,omitempty"`
	Role         string             `bson:"role"`
	RefreshToken string             `bson:"refreshToken,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *mongo.Database) domain.UserRepository {
	return &UserRepositoryImpl{col: db.Collection(database.UsersCollection)}
}

// Create implements domain.UserRepository. Unique-index violations are
// translated to ErrEmailTaken / ErrPhoneTaken.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now
	doc := r.domainToDB(user)
	doc.ID = primitive.NilObjectID

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "phone") {
				return domain.ErrPhoneTaken
			}
			return domain.ErrEmailTaken
		}
		return err
	}

	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

// FindByPhone implements domain.UserRepository
func (r *UserRepositoryImpl) FindByPhone(ctx context.Context, phone string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"phone": phone})
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *UserRepositoryImpl) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var doc dbUser
	err := r.col.FindOne(ctx, filter).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, domain.NewNotFoundError("User")
		}
		return nil, err
	}
	return r.dbToDomain(&doc), nil
}

// UpdateByID implements domain.UserRepository
func (r *UserRepositoryImpl) UpdateByID(ctx context.Context, id primitive.ObjectID, upd domain.UserUpdate) error {
	return r.update(ctx, bson.M{"_id": id}, upd)
}

// UpdateByIDWithRoles implements domain.UserRepository. The compound filter
// merges "id not found" and "role outside allowed set" into one NotFound.
func (r *UserRepositoryImpl) UpdateByIDWithRoles(ctx context.Context, id primitive.ObjectID, allowedRoles []string, upd domain.UserUpdate) error {
	return r.update(ctx, bson.M{"_id": id, "role": bson.M{"$in": allowedRoles}}, upd)
}

func (r *UserRepositoryImpl) update(ctx context.Context, filter bson.M, upd domain.UserUpdate) error {
	set := bson.M{"updatedAt": time.Now()}
	if upd.FirstName != nil {
		set["firstName"] = *upd.FirstName
	}
	if upd.LastName != nil {
		set["lastName"] = *upd.LastName
	}
	if upd.Email != nil {
		set["email"] = *upd.Email
	}
	if upd.Phone != nil {
		set["phone"] = *upd.Phone
	}
	if upd.PasswordHash != nil {
		set["password"] = *upd.PasswordHash
	}
	if upd.AvatarURL != nil {
		set["avatarUrl"] = *upd.AvatarURL
	}
	if upd.Role != nil {
		set["role"] = *upd.Role
	}

	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "phone") {
				return domain.ErrPhoneTaken
			}
			return domain.ErrEmailTaken
		}
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("User")
	}
	return nil
}

// DeleteByIDWithRoles implements domain.UserRepository
func (r *UserRepositoryImpl) DeleteByIDWithRoles(ctx context.Context, id primitive.ObjectID, allowedRoles []string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id, "role": bson.M{"$in": allowedRoles}})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return domain.NewNotFoundError("User")
	}
	return nil
}

// List implements domain.UserRepository
func (r *UserRepositoryImpl) List(ctx context.Context, opts domain.ListOptions) ([]*domain.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, findOptions(opts))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []*domain.User
	for cursor.Next(ctx) {
		var doc dbUser
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		users = append(users, r.dbToDomain(&doc))
	}
	return users, cursor.Err()
}

// SetRefreshToken implements domain.UserRepository. Overwrites the single
// refresh-token slot; last write wins under concurrent refreshes.
func (r *UserRepositoryImpl) SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error {
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set": bson.M{"refreshToken": token, "updatedAt": time.Now()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("User")
	}
	return nil
}

// ClearRefreshToken implements domain.UserRepository
func (r *UserRepositoryImpl) ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$unset": bson.M{"refreshToken": 1},
		"$set":   bson.M{"updatedAt": time.Now()},
	})
	return err
}

// domainToDB converts a domain user to its persisted shape
func (r *UserRepositoryImpl) domainToDB(user *domain.User) *dbUser {
	return &dbUser{
		ID:           user.ID,
		FirstName:    user.FirstName,
		LastName:     user.LastName,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		AvatarURL:    user.AvatarURL,
		Role:         user.Role,
		RefreshToken: user.RefreshToken,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

// dbToDomain converts a persisted document to a domain user
func (r *UserRepositoryImpl) dbToDomain(doc *dbUser) *domain.User {
	return &domain.User{
		ID:           doc.ID,
		FirstName:    doc.FirstName,
		LastName:     doc.LastName,
		Email:        doc.Email,
		Phone:        doc.Phone,
		PasswordHash: doc.PasswordHash,
		AvatarURL:    doc.AvatarURL,
		Role:         doc.Role,
		RefreshToken: doc.RefreshToken,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}
}
