package middleware

import (
	"context"
	"net/http"
	"strings"

	"tutorhive/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token and sets userID and role on
// the request context. Token hashes are cached in the dedicated auth Redis
// database so a rotated token for the same subject is rejected before it can
// be replayed.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient authorization"})
			return
		}

		subject, role, err := utils.ExtractIDFromToken(tokenString)
		if err != nil || subject == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "insufficient authorization"})
			return
		}

		if authCache := utils.GetAuthCacheClient(); authCache != nil {
			ctx := context.Background()
			cacheKey := utils.AuthCachePrefix + subject
			computedHash := utils.HashToken(tokenString)

			cachedHash, err := authCache.Get(ctx, cacheKey).Result()
			switch {
			case err == nil && cachedHash != computedHash:
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token superseded"})
				return
			case err == nil:
				_ = authCache.Expire(ctx, cacheKey, utils.AuthCacheTTL).Err()
			case err == redis.Nil:
				_ = authCache.Set(ctx, cacheKey, computedHash, utils.AuthCacheTTL).Err()
			default:
				utils.GetLogger().Warn("auth cache lookup failed", zap.Error(err))
			}
		}

		c.Set("userID", subject)
		c.Set("role", role)
		c.Next()
	}
}

// RequireRole gates a route group to one role. Runs after JWTAuthMiddleware.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
