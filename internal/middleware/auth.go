package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/inkwave/inkwave-api/pkg/response"
	"github.com/inkwave/inkwave-api/pkg/session"
)

const userIDKey = "userID"

// RequireAuth 校验会话Cookie，通过后将用户ID写入上下文
func RequireAuth(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(store.CookieName())
		if err != nil || sid == "" {
			response.Unauthorized(c, "Authentication required", err)
			c.Abort()
			return
		}

		userID, err := store.Resolve(sid)
		if err != nil {
			response.Unauthorized(c, "Authentication required", err)
			c.Abort()
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserID 取出RequireAuth写入的用户ID
func GetUserID(c *gin.Context) uint {
	if v, ok := c.Get(userIDKey); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
