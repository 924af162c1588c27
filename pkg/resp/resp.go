package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Every response carries {detail, data}; data is null when there is no
// payload. Field-level validation failures add an errors map.

func JSON(c *gin.Context, status int, detail string, data any) {
	c.JSON(status, gin.H{"detail": detail, "data": data})
}

func OK(c *gin.Context, detail string, data any) {
	JSON(c, http.StatusOK, detail, data)
}

func Created(c *gin.Context, detail string, data any) {
	JSON(c, http.StatusCreated, detail, data)
}

func BadRequest(c *gin.Context, detail string) {
	JSON(c, http.StatusBadRequest, detail, nil)
}

// ValidationError returns a field-scoped error map, e.g.
// {"detail": "Invalid input.", "errors": {"price": ["Must not exceed 100.00."]}}
func ValidationError(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid input.", "errors": fields})
}

func Unauthorized(c *gin.Context, detail string) {
	JSON(c, http.StatusUnauthorized, detail, nil)
}

func Forbidden(c *gin.Context, detail string) {
	JSON(c, http.StatusForbidden, detail, nil)
}

func NotFound(c *gin.Context) {
	JSON(c, http.StatusNotFound, "Not found.", nil)
}

func Conflict(c *gin.Context, detail string) {
	JSON(c, http.StatusConflict, detail, nil)
}

func ServerError(c *gin.Context, err error) {
	JSON(c, http.StatusInternalServerError, err.Error(), nil)
}
