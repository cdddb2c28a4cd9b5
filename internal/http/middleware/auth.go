package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
	"github.com/robertnguyen279/son-phuong-nam-backend/pkg/response"
)

// Context keys for the authenticated identity.
const (
	ctxUserIDKey = "authUserID"
	ctxRoleKey   = "authRole"
)

// AuthMW guards routes with access-token verification.
type AuthMW struct {
	tokens domain.TokenService
}

func NewAuthMW(tokens domain.TokenService) *AuthMW {
	return &AuthMW{tokens: tokens}
}

// RequireAuth verifies the bearer token and attaches the caller's identity
// to the request context. Requests without a valid access token are aborted.
func (m *AuthMW) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			abort(c, domain.ErrUnauthorized)
			return
		}

		claims, err := m.tokens.VerifyAccess(token)
		if err != nil {
			abort(c, err)
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated user's ID set by RequireAuth.
func UserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, ok := c.Get(ctxUserIDKey)
	if !ok {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

// Role returns the authenticated user's role set by RequireAuth.
func Role(c *gin.Context) string {
	return c.GetString(ctxRoleKey)
}

func extractBearer(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}

func abort(c *gin.Context, err error) {
	status, message := MapError(err)
	if status == http.StatusInternalServerError {
		status, message = http.StatusUnauthorized, "unauthorized"
	}
	c.AbortWithStatusJSON(status, response.New(status, message))
}
