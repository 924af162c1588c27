package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/utils"
)

// Permission is one access predicate plus the 403 message shown when
// it fails.
type Permission struct {
	Message string
	Check   func(c *gin.Context) bool
}

// Require composes permissions with AND semantics. All must pass; the
// first failure's message becomes the 403 detail.
func Require(perms ...Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, p := range perms {
			if !p.Check(c) {
				resp.Forbidden(c, p.Message)
				c.Abort()
				return
			}
		}
		c.Next()
	}
}

func hasRole(c *gin.Context, role entity.Role) bool {
	for _, r := range utils.CurrentRoles(c) {
		if r == role {
			return true
		}
	}
	return false
}

func isAdmin(c *gin.Context) bool {
	u := utils.CurrentUser(c)
	return u != nil && u.IsAdmin
}

func isReadOnly(c *gin.Context) bool {
	switch c.Request.Method {
	case "GET", "HEAD", "OPTIONS":
		return true
	}
	return false
}

var IsManager = Permission{
	Message: "You must be a manager to perform this action.",
	Check: func(c *gin.Context) bool {
		return hasRole(c, entity.RoleManager)
	},
}

var IsDeliveryCrew = Permission{
	Message: "You must be a delivery crew member to perform this action.",
	Check: func(c *gin.Context) bool {
		return hasRole(c, entity.RoleDeliveryCrew)
	},
}

// IsCustomer rejects managers and delivery crew; the cart and order
// placement belong to plain customers.
var IsCustomer = Permission{
	Message: "You must be a customer to perform this action.",
	Check: func(c *gin.Context) bool {
		return !hasRole(c, entity.RoleManager) && !hasRole(c, entity.RoleDeliveryCrew)
	},
}

var IsAdmin = Permission{
	Message: "You must be an admin to perform this action.",
	Check:   isAdmin,
}

var IsManagerOrDeliveryCrew = Permission{
	Message: "You must be a manager or delivery crew member to perform this action.",
	Check: func(c *gin.Context) bool {
		return hasRole(c, entity.RoleManager) || hasRole(c, entity.RoleDeliveryCrew)
	},
}

var IsManagerOrAdmin = Permission{
	Message: "You must be a manager to perform this action.",
	Check: func(c *gin.Context) bool {
		return hasRole(c, entity.RoleManager) || isAdmin(c)
	},
}

// IsManagerOrReadOnly lets anyone read but only managers write.
var IsManagerOrReadOnly = Permission{
	Message: "You must be a manager to perform this action.",
	Check: func(c *gin.Context) bool {
		return isReadOnly(c) || hasRole(c, entity.RoleManager)
	},
}

// IsManagerForReadOnlyOrAdmin lets managers read while only admins
// write.
var IsManagerForReadOnlyOrAdmin = Permission{
	Message: "You must be an admin to perform this action.",
	Check: func(c *gin.Context) bool {
		if isAdmin(c) {
			return true
		}
		return isReadOnly(c) && hasRole(c, entity.RoleManager)
	},
}
