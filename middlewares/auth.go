package middlewares

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/repository"
	"github.com/Jead100/restaurant-api/utils"
)

// Auth validates the Bearer access token, loads the user with their
// groups, and resolves roles for the request. Roles come from group
// membership at request time, never from token claims, so a group
// change takes effect on the very next request.
func Auth(users *repository.UserRepository, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "Authentication credentials were not provided.")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(strings.TrimPrefix(h, "Bearer "), jwtSecret)
		if err != nil || claims.TokenType != utils.TokenAccess {
			resp.Unauthorized(c, "Invalid or expired token.")
			c.Abort()
			return
		}

		user, err := users.FindByID(claims.UserID)
		if err != nil {
			resp.Unauthorized(c, "Invalid or expired token.")
			c.Abort()
			return
		}
		if user.DemoExpired(time.Now()) {
			resp.Unauthorized(c, "Demo session expired.")
			c.Abort()
			return
		}

		c.Set(utils.CtxUser, user)
		c.Set(utils.CtxRoles, entity.ResolveRoles(user))
		c.Next()
	}
}
