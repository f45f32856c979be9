package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// authorityTokenKey is the context key holding the bearer authority token
const authorityTokenKey = "authorityToken"

// AuthorityMiddleware extracts the bearer authority token from the
// Authorization header. The token is verified downstream together with the
// caller identity; here we only require its presence.
func AuthorityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization header is required"})
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			return
		}

		c.Set(authorityTokenKey, strings.TrimPrefix(authHeader, "Bearer "))

		c.Next()
	}
}
