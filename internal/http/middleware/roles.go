package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/robertnguyen279/son-phuong-nam-backend/domain"
)

// RequireRole aborts requests whose caller does not hold at least the given
// role. Must run after RequireAuth.
func (m *AuthMW) RequireRole(min string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !domain.RoleAtLeast(Role(c), min) {
			abort(c, domain.ErrForbidden)
			return
		}
		c.Next()
	}
}

// RequireSuperviser allows supervisers and admins through.
func (m *AuthMW) RequireSuperviser() gin.HandlerFunc {
	return m.RequireRole(domain.RoleSuperviser)
}

// RequireAdmin allows admins only.
func (m *AuthMW) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(domain.RoleAdmin)
}
