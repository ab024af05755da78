package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const (
	// L'émission de token est le seul endpoint non authentifié qui signe
	// quelque chose : on le limite par IP.
	TokenMaxRequests = 100
	TokenWindow      = 1 * time.Minute
)

// TokenRateLimit limite les demandes de token par IP (fenêtre fixe Redis).
func TokenRateLimit(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background()
		key := "jwt_requests:" + c.ClientIP()

		attempts, err := rdb.Incr(ctx, key).Result()
		if err != nil {
			// Redis indisponible : on laisse passer plutôt que de bloquer
			// toute émission de token.
			c.Next()
			return
		}
		if attempts == 1 {
			rdb.Expire(ctx, key, TokenWindow)
		}

		if attempts > TokenMaxRequests {
			ttl := rdb.TTL(ctx, key).Val()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       fmt.Sprintf("Trop de demandes de token. Réessayez dans %d secondes", int(ttl.Seconds())),
				"retry_after": int(ttl.Seconds()),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
