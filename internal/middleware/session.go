package middleware

import (
	"net/http"

	"placementhub/internal/modules/auth"

	"github.com/gin-gonic/gin"
)

// RequireSession guards a route group behind a valid session cookie. Every
// mutating operation goes through this guard; reads stay public.
func RequireSession(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "UNAUTHORIZED",
				"message": "Login required",
			})
			return
		}

		sess, ok := sessions.Get(token)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"code":    "UNAUTHORIZED",
				"message": "Login required",
			})
			return
		}

		c.Set("user_id", sess.UserID)
		c.Set("role", string(sess.Role))
		c.Set("session_token", token)

		c.Next()
	}
}
