package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/utils"
)

func perform(t *testing.T, method string, roles []entity.Role, user *entity.User, perms ...Permission) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()

	r := gin.New()
	r.Use(func(c *gin.Context) {
		if user != nil {
			c.Set(utils.CtxUser, user)
		}
		c.Set(utils.CtxRoles, roles)
	})
	handler := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.Handle(method, "/probe", Require(perms...), handler)

	req := httptest.NewRequest(method, "/probe", nil)
	r.ServeHTTP(w, req)
	return w
}

func forbiddenDetail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Detail string `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Detail
}

func TestIsManagerGate(t *testing.T) {
	w := perform(t, "POST", []entity.Role{entity.RoleManager}, nil, IsManager)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, "POST", []entity.Role{entity.RoleCustomer}, nil, IsManager)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You must be a manager to perform this action.", forbiddenDetail(t, w))
}

func TestIsCustomerExcludesStaff(t *testing.T) {
	w := perform(t, "POST", []entity.Role{entity.RoleCustomer}, nil, IsCustomer)
	assert.Equal(t, http.StatusNoContent, w.Code)

	for _, roles := range [][]entity.Role{
		{entity.RoleManager},
		{entity.RoleDeliveryCrew},
		{entity.RoleManager, entity.RoleDeliveryCrew},
	} {
		w = perform(t, "POST", roles, nil, IsCustomer)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "You must be a customer to perform this action.", forbiddenDetail(t, w))
	}
}

func TestIsManagerOrReadOnly(t *testing.T) {
	w := perform(t, "GET", []entity.Role{entity.RoleCustomer}, nil, IsManagerOrReadOnly)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, "POST", []entity.Role{entity.RoleCustomer}, nil, IsManagerOrReadOnly)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = perform(t, "POST", []entity.Role{entity.RoleManager}, nil, IsManagerOrReadOnly)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestIsManagerForReadOnlyOrAdmin(t *testing.T) {
	admin := &entity.User{IsAdmin: true}

	w := perform(t, "GET", []entity.Role{entity.RoleManager}, nil, IsManagerForReadOnlyOrAdmin)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = perform(t, "POST", []entity.Role{entity.RoleManager}, nil, IsManagerForReadOnlyOrAdmin)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You must be an admin to perform this action.", forbiddenDetail(t, w))

	w = perform(t, "POST", []entity.Role{entity.RoleCustomer}, admin, IsManagerForReadOnlyOrAdmin)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRequireAndSemanticsFirstFailureWins(t *testing.T) {
	// Both fail; the first predicate supplies the message.
	w := perform(t, "POST", []entity.Role{entity.RoleCustomer}, nil, IsManager, IsDeliveryCrew)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You must be a manager to perform this action.", forbiddenDetail(t, w))

	// First passes, second still gates.
	w = perform(t, "POST", []entity.Role{entity.RoleManager}, nil, IsManager, IsDeliveryCrew)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You must be a delivery crew member to perform this action.", forbiddenDetail(t, w))
}
