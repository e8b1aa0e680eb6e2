package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/zigac9/ElectricalCarBlog-backend/internal/domain/repository"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/helpers"
	"github.com/zigac9/ElectricalCarBlog-backend/pkg/response"
)

// Auth validates the access token, checks the server-side session and loads
// the account. Blocked accounts are rejected here so no protected endpoint
// ever sees them. Sets "userID", "isAdmin", "isVerified" in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := tokenFromRequest(c)
		if token == "" {
			abort(c, http.StatusUnauthorized, "missing access token")
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "invalid access token")
			return
		}

		ctx := c.Request.Context()
		userID, err := rdb.Get(ctx, "session:"+claims.SessionID).Result()
		if err != nil || userID != claims.UserID {
			abort(c, http.StatusUnauthorized, "session not found")
			return
		}

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			abort(c, http.StatusUnauthorized, "session not found")
			return
		}
		if user.IsBlocked {
			abort(c, http.StatusForbidden, "You are blocked! Contact the administrator to unblock you.")
			return
		}

		c.Set("userID", user.ID)
		c.Set("sessionID", claims.SessionID)
		c.Set("isAdmin", user.IsAdmin)
		c.Set("isVerified", user.IsAccountVerified)
		c.Next()
	}
}

// RequireAdmin must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool("isAdmin") {
			abort(c, http.StatusForbidden, "Admin access required")
			return
		}
		c.Next()
	}
}

func tokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie("access_token"); err == nil && token != "" {
		return token
	}
	if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return ""
}

func abort(c *gin.Context, status int, msg string) {
	response.Error[any](c, status, msg, nil)
	c.Abort()
}
