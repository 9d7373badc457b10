package auth

import (
	"context"
	"net/http"
	"strings"

	"codeberg.org/quickai/server/internal/quota"
	"github.com/gin-gonic/gin"
)

// resolves a user's current plan and free-tier consumption.
// Implemented by the users repository.
type AccountResolver interface {
	FindAccount(ctx context.Context, userID string) (quota.Account, error)
}

// validates JWT tokens and adds user info to context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization header format"})
			c.Abort()
			return
		}

		token := parts[1]
		claims, err := ValidateJWT(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)

		c.Next()
	}
}

// extracts user_id from context after AuthMiddleware
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get("user_id")

	if !exists {
		return "", false
	}

	return userID.(string), true
}

// loads the caller's plan and free-tier usage into the context so the
// gateway receives a normalized account. Runs after AuthMiddleware.
func AccountMiddleware(resolver AccountResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := GetUserID(c)

		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		account, err := resolver.FindAccount(c.Request.Context(), userID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			c.Abort()
			return
		}

		c.Set("account", account)
		c.Next()
	}
}

// extracts the normalized account from context after AccountMiddleware
func CurrentAccount(c *gin.Context) (quota.Account, bool) {
	v, exists := c.Get("account")

	if !exists {
		return quota.Account{}, false
	}

	account, ok := v.(quota.Account)

	return account, ok
}
