package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/entity"
)

// Context keys set by the auth middleware.
const (
	CtxUser  = "user"
	CtxRoles = "roles"
)

// CurrentUser returns the authenticated user, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get(CtxUser); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

// CurrentUserID returns the authenticated user's ID, or 0.
func CurrentUserID(c *gin.Context) uint {
	if u := CurrentUser(c); u != nil {
		return u.ID
	}
	return 0
}

// CurrentRoles returns the roles resolved for this request.
func CurrentRoles(c *gin.Context) []entity.Role {
	if v, ok := c.Get(CtxRoles); ok {
		if roles, ok := v.([]entity.Role); ok {
			return roles
		}
	}
	return nil
}

// PrimaryRole returns the highest-priority resolved role.
func PrimaryRole(c *gin.Context) entity.Role {
	roles := CurrentRoles(c)
	if len(roles) == 0 {
		return entity.RoleCustomer
	}
	return roles[0]
}
