package middleware

import (
	"net/http"
	"strings"

	"ripple/config"
	"ripple/internal/auth"

	"github.com/gin-gonic/gin"
)

// AuthRequired validates the bearer token and sets UserID and Username
// in the request context.
func AuthRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := bearerClaims(cfg, c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			return
		}
		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// AuthOptional sets the identity when a valid bearer token is present and
// continues anonymously otherwise. Used on public reads whose response
// shape depends on the viewer (is_liked, is_following, ...).
func AuthOptional(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, ok := bearerClaims(cfg, c); ok {
			c.Set("user_id", claims.UserID)
			c.Set("username", claims.Username)
		}
		c.Next()
	}
}

func bearerClaims(cfg *config.JWTConfig, c *gin.Context) (*auth.Claims, bool) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, false
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	claims, err := auth.ParseAccessToken(cfg, parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetUserID returns the authenticated user ID from context, 0 when the
// request is anonymous.
func GetUserID(c *gin.Context) uint {
	v, _ := c.Get("user_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}
