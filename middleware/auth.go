package middleware

import (
	"strings"

	"portfolio-api/helper"
	"portfolio-api/models"
	"portfolio-api/services"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "user_id"
	ContextEmail    = "email"
	ContextRole     = "role"
	ContextIdentity = "identity"
)

// AuthMiddleware reads the bearer token; 401 when absent, 403 when it does not verify.
func AuthMiddleware(tokens services.TokenManager, h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := BearerToken(c.GetHeader("Authorization"))
		if tokenString == "" {
			h.SendError(c, models.ErrorMissingToken{})
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			h.SendError(c, err)
			return
		}

		c.Set(ContextUserID, identity.ID)
		c.Set(ContextEmail, identity.Email)
		c.Set(ContextRole, identity.Role)
		c.Set(ContextIdentity, identity)

		c.Next()
	}
}

// RequireAdmin must run after AuthMiddleware.
func RequireAdmin(h *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			h.SendError(c, models.ErrorMissingToken{})
			return
		}
		if !identity.IsAdmin() {
			h.SendError(c, models.ErrorForbiddenRole{Required: models.RoleAdmin})
			return
		}
		c.Next()
	}
}

func GetIdentity(c *gin.Context) (services.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return services.Identity{}, false
	}
	identity, ok := v.(services.Identity)
	return identity, ok
}

// BearerToken extracts the token from an Authorization header value, or returns "".
func BearerToken(header string) string {
	const prefix = "bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
