package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"tradeport.backend/pkg/redis"
)

const (
	IdempotencyHeader = "Idempotency-Key"
	// LockDuration is the time the lock is held while processing
	LockDuration = 30 * time.Second
	// RetentionDuration is how long the cached response is kept
	RetentionDuration = 24 * time.Hour
)

var (
	redisGet   = redis.Get
	redisSet   = redis.Set
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

// decodeCached splits a cached "status\nbody" entry. Entries written before
// statuses were recorded replay as 200.
func decodeCached(val string) (int, string) {
	i := strings.IndexByte(val, '\n')
	if i > 0 {
		if status, err := strconv.Atoi(val[:i]); err == nil && status >= 100 && status < 600 {
			return status, val[i+1:]
		}
	}
	return http.StatusOK, val
}

type responseWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseWriter) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// IdempotencyMiddleware replays the cached response when a request carrying
// the same Idempotency-Key from the same user arrives again. Must run after
// AuthMiddleware so the key is scoped per user.
func IdempotencyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(IdempotencyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID := ""
		if id, ok := GetUserID(c); ok {
			userID = id.String()
		}
		storageKey := fmt.Sprintf("idempotency:%s:%s", userID, key)

		ctx := c.Request.Context()

		val, err := redisGet(ctx, storageKey)
		if err == nil {
			if val == "processing" {
				c.AbortWithStatusJSON(http.StatusConflict, gin.H{
					"success": false,
					"error":   gin.H{"code": "CONFLICT", "message": "request already in progress"},
				})
				return
			}

			status, body := decodeCached(val)
			c.Header("Content-Type", "application/json")
			c.Header("X-Idempotency-Hit", "true")
			c.String(status, body)
			c.Abort()
			return
		} else if err.Error() != "redis: nil" {
			// Redis unavailable; let the request through rather than block
			// checkout on the cache.
			c.Next()
			return
		}

		success, err := redisSetNX(ctx, storageKey, "processing", LockDuration)
		if err != nil || !success {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"success": false,
				"error":   gin.H{"code": "CONFLICT", "message": "request already in progress"},
			})
			return
		}

		w := &responseWriter{body: &bytes.Buffer{}, ResponseWriter: c.Writer}
		c.Writer = w

		c.Next()

		if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
			cached := fmt.Sprintf("%d\n%s", c.Writer.Status(), w.body.String())
			_ = redisSet(ctx, storageKey, cached, RetentionDuration)
		} else {
			// Failed attempts release the key so the client can retry.
			_ = redisDel(ctx, storageKey)
		}
	}
}
