package routes

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/configs"
)

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedGroups(db))

	cfg := &configs.Config{
		JWTSecret:  "test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
	r := gin.New()
	RegisterRoutes(r, db, cfg)
	return r
}

func statusFor(r *gin.Engine, method, path string) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w.Code
}

// Unauthenticated requests to wired routes answer 401, never 404, so
// the status distinguishes "registered" from "missing".
func TestProtectedRoutesAreRegistered(t *testing.T) {
	r := newTestEngine(t)

	for _, route := range []struct{ method, path string }{
		{"GET", "/cart"},
		{"POST", "/cart"},
		{"DELETE", "/cart"},
		{"DELETE", "/cart/clear"},
		{"DELETE", "/cart/5"},
		{"GET", "/orders"},
		{"POST", "/orders"},
		{"GET", "/items"},
		{"GET", "/categories"},
		{"GET", "/users/customers"},
		{"GET", "/groups/manager/users"},
		{"GET", "/groups/delivery-crew/users"},
		{"POST", "/demo/purge"},
	} {
		assert.Equal(t, http.StatusUnauthorized, statusFor(r, route.method, route.path),
			"%s %s", route.method, route.path)
	}
}

func TestPublicRoutes(t *testing.T) {
	r := newTestEngine(t)

	assert.Equal(t, http.StatusOK, statusFor(r, "GET", "/health"))
	// Demo mode is off in this config; the route exists but denies.
	assert.Equal(t, http.StatusForbidden, statusFor(r, "POST", "/demo/login/manager"))
}
