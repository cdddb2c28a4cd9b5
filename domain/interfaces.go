package domain

import (
	"context"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines user data access operations. The *WithRoles variants
// only match documents whose role is in allowedRoles and return
// NotFoundError("User") otherwise, without distinguishing why.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByPhone(ctx context.Context, phone string) (*User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, upd UserUpdate) error
	UpdateByIDWithRoles(ctx context.Context, id primitive.ObjectID, allowedRoles []string, upd UserUpdate) error
	DeleteByIDWithRoles(ctx context.Context, id primitive.ObjectID, allowedRoles []string) error
	List(ctx context.Context, opts ListOptions) ([]*User, error)
	SetRefreshToken(ctx context.Context, id primitive.ObjectID, token string) error
	ClearRefreshToken(ctx context.Context, id primitive.ObjectID) error
}

// ProductRepository defines catalog data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	FindBySlug(ctx context.Context, slug string) (*Product, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, filter ProductFilter, opts ListOptions) ([]*Product, error)
}

// PostRepository defines post data access operations
type PostRepository interface {
	Create(ctx context.Context, post *Post) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*Post, error)
	UpdateByID(ctx context.Context, id primitive.ObjectID, upd PostUpdate) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context, opts ListOptions) ([]*Post, error)
}

// SiteInfoRepository stores the single site-information document. Upsert
// applies only the update's non-nil fields and returns the resulting document.
type SiteInfoRepository interface {
	Get(ctx context.Context) (*SiteInfo, error)
	Upsert(ctx context.Context, upd SiteInfoUpdate) (*SiteInfo, error)
}

// CarouselRepository defines carousel data access operations
type CarouselRepository interface {
	Create(ctx context.Context, item *CarouselItem) error
	UpdateByID(ctx context.Context, id primitive.ObjectID, upd CarouselUpdate) error
	DeleteByID(ctx context.Context, id primitive.ObjectID) error
	List(ctx context.Context) ([]*CarouselItem, error)
}

// CacheRepository is a JSON value cache with TTL, used in front of rarely
// changing collections (site info, carousel).
type CacheRepository interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

// PasswordService defines password operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(hashedPassword, password string) bool
}

// TokenService defines token operations. VerifyRefresh checks signature and
// expiry only; the stored-value revocation check belongs to AuthService.
type TokenService interface {
	IssueAccess(userID primitive.ObjectID, role string) (string, error)
	IssueRefresh(userID primitive.ObjectID) (string, error)
	VerifyAccess(token string) (*TokenClaims, error)
	VerifyRefresh(token string) (*TokenClaims, error)
	AccessTTL() time.Duration
}

// ProviderClient validates third-party login tokens against the provider's
// introspection endpoint.
type ProviderClient interface {
	Validate(ctx context.Context, provider, token string) error
}

// FileStore persists uploaded files and returns their public URL
type FileStore interface {
	Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error)
}

// AuthService defines authentication business logic
type AuthService interface {
	Signup(ctx context.Context, input SignupInput) (*AuthResult, error)
	Login(ctx context.Context, emailOrPhone, password string) (*AuthResult, error)
	LoginByThirdParty(ctx context.Context, provider string, input ThirdPartyInput) (*AuthResult, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID primitive.ObjectID) error
	ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*User, error)
}

// SignupInput carries the whitelisted signup fields
type SignupInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// ThirdPartyInput carries the whitelisted third-party login fields
type ThirdPartyInput struct {
	FirstName string
	LastName  string
	Email     string
	AvatarURL string
	Token     string
}

// UserService defines directory management business logic. Actor role scoping:
// a superviser may only touch role=user targets, an admin may touch
// role∈{user, superviser} targets, nobody touches admin targets.
type UserService interface {
	CreateByAdmin(ctx context.Context, input SignupInput, role string) (*User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)
	List(ctx context.Context, opts ListOptions) ([]*User, error)
	UpdateWithScope(ctx context.Context, actorRole string, id primitive.ObjectID, upd UserUpdate, plainPassword string) error
	DeleteWithScope(ctx context.Context, actorRole string, id primitive.ObjectID) error
	UpdateSelf(ctx context.Context, id primitive.ObjectID, upd UserUpdate, plainPassword string) error
}

// CatalogService defines product business logic
type CatalogService interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, filter ProductFilter, opts ListOptions) ([]*Product, error)
	Update(ctx context.Context, id primitive.ObjectID, upd ProductUpdate) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ContentService defines post, site-info and carousel business logic
type ContentService interface {
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	GetPost(ctx context.Context, id primitive.ObjectID) (*Post, error)
	ListPosts(ctx context.Context, opts ListOptions) ([]*Post, error)
	UpdatePost(ctx context.Context, id primitive.ObjectID, upd PostUpdate) error
	DeletePost(ctx context.Context, id primitive.ObjectID) error

	GetSiteInfo(ctx context.Context) (*SiteInfo, error)
	UpdateSiteInfo(ctx context.Context, upd SiteInfoUpdate) (*SiteInfo, error)

	ListCarousel(ctx context.Context) ([]*CarouselItem, error)
	CreateCarouselItem(ctx context.Context, item *CarouselItem) (*CarouselItem, error)
	UpdateCarouselItem(ctx context.Context, id primitive.ObjectID, upd CarouselUpdate) error
	DeleteCarouselItem(ctx context.Context, id primitive.ObjectID) error
}
