package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jead100/restaurant-api/configs"
	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
	"github.com/Jead100/restaurant-api/utils"
)

func newAuthService(t *testing.T) (*AuthService, *configs.Config) {
	t.Helper()
	db := newTestDB(t)
	cfg := &configs.Config{
		JWTSecret:  "test-secret",
		AccessTTL:  time.Hour,
		RefreshTTL: 24 * time.Hour,
	}
	return NewAuthService(repository.NewUserRepository(db), cfg), cfg
}

func TestRegisterAndLogin(t *testing.T) {
	svc, cfg := newAuthService(t)

	out, err := svc.Register(&RegisterIn{Username: "alice", Email: "A@Example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.Equal(t, "alice", out.Username)
	assert.Equal(t, "a@example.com", out.Email)
	assert.Equal(t, entity.RoleCustomer, out.Role)

	pair, err := svc.Login(&LoginIn{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	claims, err := utils.ParseToken(pair.Access, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenAccess, claims.TokenType)
	assert.False(t, claims.IsDemo)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(&RegisterIn{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Register(&RegisterIn{Username: "alice", Password: "different1"})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, []string{"A user with that username already exists."}, fields["username"])
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, err := svc.Register(&RegisterIn{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Login(&LoginIn{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, err = svc.Login(&LoginIn{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, cfg := newAuthService(t)

	_, err := svc.Register(&RegisterIn{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)
	pair, err := svc.Login(&LoginIn{Username: "alice", Password: "supersecret"})
	require.NoError(t, err)

	_, err = svc.Refresh(pair.Access)
	assert.ErrorIs(t, err, ErrInvalidToken)

	access, err := svc.Refresh(pair.Refresh)
	require.NoError(t, err)
	claims, err := utils.ParseToken(access, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, utils.TokenAccess, claims.TokenType)
}

func TestDemoTokenLifetimesAreCapped(t *testing.T) {
	svc, _ := newAuthService(t)

	expires := time.Now().Add(10 * time.Minute)
	user := &entity.User{IsDemo: true, DemoExpiresAt: &expires}

	access, refresh := svc.tokenTTLs(user)
	assert.LessOrEqual(t, access, 10*time.Minute)
	assert.LessOrEqual(t, refresh, 10*time.Minute)

	later := time.Now().Add(48 * time.Hour)
	user.DemoExpiresAt = &later
	access, refresh = svc.tokenTTLs(user)
	assert.Equal(t, demoAccessMax, access)
	assert.Equal(t, demoRefreshMax, refresh)
}
