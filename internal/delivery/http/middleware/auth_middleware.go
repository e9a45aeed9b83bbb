package middleware

import (
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/security"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthCookieName is read when no Authorization header is sent.
const AuthCookieName = "auth_token"

// AuthMiddleware verifies the bearer token and stores the caller's id and
// role on the context.
func AuthMiddleware(tokens domain.TokenManager, secLog *security.SecurityLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			c.Error(apperror.Unauthorized("Authentication required"))
			c.Abort()
			return
		}

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			if secLog != nil {
				secLog.LogUnauthorizedAccess(c.Request.Context(), c.ClientIP(), response.RequestID(c), c.FullPath(), err.Error())
			}
			c.Error(apperror.Unauthorized("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), identity.ID)
		c.Set(string(domain.KeyUserRole), string(identity.Role))
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		const prefix = "Bearer "
		if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
			return strings.TrimSpace(header[len(prefix):])
		}
		return ""
	}
	if cookie, err := c.Cookie(AuthCookieName); err == nil {
		return cookie
	}
	return ""
}

// CurrentIdentity returns the caller set by AuthMiddleware. It is empty on
// routes without authentication.
func CurrentIdentity(c *gin.Context) domain.Identity {
	return domain.Identity{
		ID:   c.GetString(string(domain.KeyUserID)),
		Role: domain.Role(c.GetString(string(domain.KeyUserRole))),
	}
}
