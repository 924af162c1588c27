package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/pkg/resp"
	"github.com/Jead100/restaurant-api/services"
)

// handleError maps service errors onto the response envelope. Anything
// unrecognized is a 500.
func handleError(c *gin.Context, err error) {
	var fields services.FieldErrors
	var conflict *services.ConflictError

	switch {
	case errors.As(err, &fields):
		resp.ValidationError(c, fields)
	case errors.As(err, &conflict):
		resp.Conflict(c, conflict.Detail)
	case errors.Is(err, services.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		resp.NotFound(c)
	case errors.Is(err, services.ErrDuplicateCartItem):
		resp.Conflict(c, "This item is already in your cart.")
	case errors.Is(err, services.ErrCategoryInUse):
		resp.Conflict(c, "Cannot delete category: menu items still reference it.")
	case errors.Is(err, services.ErrCartEmpty):
		resp.BadRequest(c, "Your cart is empty. Add items to your cart before placing an order.")
	case errors.Is(err, services.ErrDemoModify):
		resp.Forbidden(c, "Cannot modify production data in demo mode.")
	case errors.Is(err, services.ErrDemoDelete):
		resp.Forbidden(c, "Cannot delete production data in demo mode.")
	case errors.Is(err, services.ErrDemoDisabled):
		resp.Forbidden(c, "Demo mode is disabled.")
	case errors.Is(err, services.ErrInvalidCreds):
		resp.Unauthorized(c, "Invalid username or password.")
	case errors.Is(err, services.ErrInvalidToken):
		resp.Unauthorized(c, "Invalid or expired token.")
	default:
		resp.ServerError(c, err)
	}
}

// idParam parses a numeric path parameter. Non-numeric ids read as a
// lookup miss, not a validation failure.
func idParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		resp.NotFound(c)
		return 0, false
	}
	return uint(v), true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.BadRequest(c, err.Error())
		return false
	}
	return true
}
