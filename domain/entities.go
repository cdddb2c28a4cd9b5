package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles form a total linear hierarchy: user < superviser < admin.
const (
	RoleUser       = "user"
	RoleSuperviser = "superviser"
	RoleAdmin      = "admin"
)

var roleLevels = map[string]int{
	RoleUser:       0,
	RoleSuperviser: 1,
	RoleAdmin:      2,
}

// RoleAtLeast reports whether role sits at or above min in the hierarchy.
// Unknown roles never satisfy any level.
func RoleAtLeast(role, min string) bool {
	lvl, ok := roleLevels[role]
	if !ok {
		return false
	}
	return lvl >= roleLevels[min]
}

// User represents a user in the system. RefreshToken holds the single live
// refresh token; empty means no refresh token is valid for this user.
type User struct {
	ID           primitive.ObjectID
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PasswordHash string
	AvatarURL    string
	Role         string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FullName returns the display name used in user views.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserUpdate enumerates the independently settable user fields. Nil fields
// are left untouched. PasswordHash must already be hashed by the caller.
type UserUpdate struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        *string
	PasswordHash *string
	AvatarURL    *string
	Role         *string
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims represents the verified content of a token
type TokenClaims struct {
	UserID    primitive.ObjectID
	Role      string
	IssuedAt  int64
	ExpiresAt int64
}

// Product is a catalog item. NoToneName is the diacritics-stripped name used
// for search; URLString is the unique slug derived from it.
type Product struct {
	ID          primitive.ObjectID
	Name        string
	NoToneName  string
	Description string
	URLString   string
	Discount    int
	Pictures    []string
	Price       int64
	Sold        int
	CategoryID  primitive.ObjectID
	Available   []primitive.ObjectID
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductUpdate enumerates the settable product fields. NoToneName is
// derived from Name by the service layer, never taken from a request.
type ProductUpdate struct {
	Name        *string
	NoToneName  *string
	Description *string
	Discount    *int
	Pictures    *[]string
	Price       *int64
	Sold        *int
	CategoryID  *primitive.ObjectID
	Available   *[]primitive.ObjectID
}

// ProductFilter narrows product listings. Search matches against NoToneName.
type ProductFilter struct {
	Search     string
	CategoryID *primitive.ObjectID
}

// Post is an article shown on the site.
type Post struct {
	ID        primitive.ObjectID
	Title     string
	URLString string
	Content   string
	Pictures  []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PostUpdate enumerates the settable post fields.
type PostUpdate struct {
	Title    *string
	Content  *string
	Pictures *[]string
}

// SiteInfo is the single contact-information document.
type SiteInfo struct {
	ID        primitive.ObjectID
	Phone     string
	Email     string
	Address   string
	TaxCode   string
	UpdatedAt time.Time
}

// SiteInfoUpdate enumerates the settable site-info fields. Nil fields keep
// their stored value.
type SiteInfoUpdate struct {
	Phone   *string
	Email   *string
	Address *string
	TaxCode *string
}

// CarouselItem is one slide of the landing-page carousel, ordered by Order.
type CarouselItem struct {
	ID        primitive.ObjectID
	Title     string
	ImageURL  string
	LinkURL   string
	Order     int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CarouselUpdate enumerates the settable carousel fields.
type CarouselUpdate struct {
	Title    *string
	ImageURL *string
	LinkURL  *string
	Order    *int
}

// ListOptions describes a paginated sorted scan.
type ListOptions struct {
	Skip   int64
	Limit  int64
	SortBy string
	Order  string // "asc" or "desc"
}
