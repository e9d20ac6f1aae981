package middleware

import (
	"net/http"

	"starcatalog/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "user_id"

// CurrentUser is the authentication seam: it attaches a fixed identity to
// every request. A real authenticator replaces it and sets the same key.
func CurrentUser(userID int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// UserID reads the identity set by CurrentUser.
func UserID(c *gin.Context) (int64, bool) {
	id := c.GetInt64(UserIDKey)
	return id, id > 0
}

// RequireUser aborts with 401 when no identity is attached.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserID(c); !ok {
			response.AbortWithMessage(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		c.Next()
	}
}
