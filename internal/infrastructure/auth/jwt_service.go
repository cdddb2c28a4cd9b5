package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	accessSecret  []byte
	refreshSecret []byte
	issuer        string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService creates a new JWT service. Access and refresh tokens are
// signed with separate secrets so neither kind verifies as the other.
func NewJWTService(accessSecret, refreshSecret, issuer string, accessTTL, refreshTTL time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		issuer:        issuer,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

// IssueAccess implements domain.TokenService
func (j *JWTServiceImpl) IssueAccess(userID primitive.ObjectID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID.Hex(),
		"role": role,
		"iss":  j.issuer,
		"iat":  now.Unix(),
		"exp":  now.Add(j.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.accessSecret)
}

// IssueRefresh implements domain.TokenService. The caller must persist the
// returned value on the user record, overwriting any prior value.
func (j *JWTServiceImpl) IssueRefresh(userID primitive.ObjectID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": userID.Hex(),
		"iss": j.issuer,
		"iat": now.Unix(),
		"exp": now.Add(j.refreshTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.refreshSecret)
}

// VerifyAccess implements domain.TokenService
func (j *JWTServiceImpl) VerifyAccess(tokenString string) (*domain.TokenClaims, error) {
	return j.verify(tokenString, j.accessSecret)
}

// VerifyRefresh implements domain.TokenService
func (j *JWTServiceImpl) VerifyRefresh(tokenString string) (*domain.TokenClaims, error) {
	return j.verify(tokenString, j.refreshSecret)
}

// AccessTTL implements domain.TokenService
func (j *JWTServiceImpl) AccessTTL() time.Duration {
	return j.accessTTL
}

// verify validates a signed token and extracts its claims
func (j *JWTServiceImpl) verify(tokenString string, secret []byte) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
		}
		return secret, nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.NewInvalidTokenError(domain.TokenExpired)
		}
		return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
	}

	if !token.Valid {
		return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
	}

	userID, err := primitive.ObjectIDFromHex(sub)
	if err != nil {
		return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.NewInvalidTokenError(domain.TokenMalformed)
	}

	if time.Unix(int64(exp), 0).Before(time.Now()) {
		return nil, domain.NewInvalidTokenError(domain.TokenExpired)
	}

	tokenClaims := &domain.TokenClaims{
		UserID:    userID,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}

	// Role claim is only present on access tokens.
	if role, ok := claims["role"].(string); ok {
		tokenClaims.Role = role
	}

	return tokenClaims, nil
}
