package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-matcher/internal/session"
	"resume-matcher/internal/shared/server/respond"
)

const (
	userIDKey    = "userId"
	userEmailKey = "userEmail"
	principalKey = "principal"
)

// Auth validates the session cookie and stores the principal in context.
func Auth(codec *session.Codec) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		token, err := c.Cookie(session.CookieName)
		if err != nil || token == "" {
			respond.Error(c, http.StatusUnauthorized, "Not authenticated")
			return
		}

		principal, err := codec.Verify(token)
		if err != nil {
			switch {
			case errors.Is(err, session.ErrExpired):
				respond.Error(c, http.StatusUnauthorized, "Token expired")
			default:
				respond.Error(c, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		c.Set(userIDKey, principal.Sub)
		if principal.Email != "" {
			c.Set(userEmailKey, principal.Email)
		}
		c.Set(principalKey, principal)
		c.Next()
	}
}

// UserIDFromContext fetches the user ID set by the auth middleware.
func UserIDFromContext(c *gin.Context) string {
	if c == nil {
		return ""
	}
	val, _ := c.Get(userIDKey)
	if id, ok := val.(string); ok {
		return id
	}
	return ""
}

// PrincipalFromContext fetches the principal set by the auth middleware.
func PrincipalFromContext(c *gin.Context) (session.Principal, bool) {
	if c == nil {
		return session.Principal{}, false
	}
	val, _ := c.Get(principalKey)
	p, ok := val.(session.Principal)
	return p, ok
}
