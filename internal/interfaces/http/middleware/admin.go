package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"scheme-sense.backend/internal/interfaces/http/response"
)

// AdminTokenHeader carries the shared administrative credential
const AdminTokenHeader = "X-Admin-Token"

// AdminMiddleware guards administrative endpoints with a shared token
// configured out of band. An empty configured token means no admin surface
// exists: every request is rejected.
func AdminMiddleware(token string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			response.Forbidden(c, "Administrative access is not enabled")
			return
		}

		presented := c.GetHeader(AdminTokenHeader)
		if subtle.ConstantTimeCompare([]byte(presented), []byte(token)) != 1 {
			response.Forbidden(c, "Administrative access required")
			return
		}

		c.Next()
	}
}
