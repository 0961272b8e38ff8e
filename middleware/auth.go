package middleware

import (
	"errors"
	"net/http"
	"strings"

	"game-store-service/services"

	"github.com/gin-gonic/gin"
)

const UserContextKey = "userID"

// AuthMiddleware requires a valid Bearer token and stores the caller's
// identity in the Gin context.
func AuthMiddleware(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c, tokens)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

// OptionalAuth stores the caller's identity when a valid token is present
// but lets anonymous requests through. Checkout uses it: orders may carry an
// owning user id or none.
func OptionalAuth(tokens *services.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := parseBearer(c, tokens); ok {
			setIdentity(c, claims)
		}
		c.Next()
	}
}

// AdminOnly restricts access to admin role.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists || role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}
		c.Next()
	}
}

// GetUserID extracts the user ID from the Gin context.
func GetUserID(c *gin.Context) (string, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if id, ok := val.(string); ok && id != "" {
			return id, nil
		}
	}
	return "", errors.New("user ID not found in context")
}

func parseBearer(c *gin.Context, tokens *services.TokenService) (map[string]interface{}, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}
	tokenStr := strings.TrimPrefix(header, "Bearer ")

	claims, err := tokens.Validate(tokenStr)
	if err != nil {
		return nil, false
	}
	return claims, true
}

func setIdentity(c *gin.Context, claims map[string]interface{}) {
	if id, ok := claims["user_id"].(string); ok {
		c.Set(UserContextKey, id)
	}
	if role, ok := claims["role"].(string); ok {
		c.Set("role", role)
	}
}
