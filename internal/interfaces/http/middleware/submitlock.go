package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"motor-kita.backend/pkg/redis"
)

// LockDuration is the time we hold the submit lock while processing
const LockDuration = 30 * time.Second

var (
	redisSetNX = redis.SetNX
	redisDel   = redis.Del
)

// SubmitLockMiddleware allows one in-flight submission per session. The
// record-level pending flag catches sequential double clicks; this lock
// catches two requests racing through the same check.
func SubmitLockMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("id")
		if sessionID == "" {
			c.Next()
			return
		}

		key := fmt.Sprintf("submitlock:%s", sessionID)
		ctx := c.Request.Context()

		ok, err := redisSetNX(ctx, key, "processing", LockDuration)
		if err != nil {
			// Redis being down must not block submissions; the pending flag
			// still guards the sequential case.
			c.Next()
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"code":    "ERR_SUBMISSION_IN_PROGRESS",
				"message": "A submission is already in progress for this session",
			})
			return
		}

		defer func() { _ = redisDel(ctx, key) }()
		c.Next()
	}
}
