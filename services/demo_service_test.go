package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/configs"
	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
	"github.com/Jead100/restaurant-api/utils"
)

func newDemoService(t *testing.T, enabled bool) (*DemoService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	cfg := &configs.Config{
		JWTSecret:   "test-secret",
		DemoMode:    enabled,
		DemoUserTTL: 12 * time.Hour,
	}
	svc := NewDemoService(db, repository.NewUserRepository(db), repository.NewGroupRepository(db), cfg)
	return svc, db
}

func TestDemoLoginDisabled(t *testing.T) {
	svc, _ := newDemoService(t, false)

	_, err := svc.Login("manager")
	assert.ErrorIs(t, err, ErrDemoDisabled)
}

func TestDemoLoginInvalidRole(t *testing.T) {
	svc, _ := newDemoService(t, true)

	_, err := svc.Login("astronaut")
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	require.Len(t, fields["role"], 1)
}

func TestDemoLoginCreatesExpiringStaffAccount(t *testing.T) {
	svc, db := newDemoService(t, true)

	// Dashes in the URL slug normalize to the underscore role name.
	out, err := svc.Login("delivery-crew")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDeliveryCrew, out.Role)
	assert.True(t, strings.HasPrefix(out.Username, "demo_"))
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), out.ExpiresAt, time.Minute)

	var user entity.User
	require.NoError(t, db.Preload("Groups").
		Where("username = ?", out.Username).First(&user).Error)
	assert.True(t, user.IsDemo)
	require.NotNil(t, user.DemoExpiresAt)
	assert.Equal(t, entity.RoleDeliveryCrew, entity.PrimaryRole(&user))

	claims, err := utils.ParseToken(out.Access, svc.Cfg.JWTSecret)
	require.NoError(t, err)
	assert.True(t, claims.IsDemo)
	// Access tokens are capped well below the account TTL.
	assert.WithinDuration(t, time.Now().Add(demoAccessMax), claims.ExpiresAt.Time, time.Minute)
}

func TestDemoLoginCustomerHasNoGroups(t *testing.T) {
	svc, db := newDemoService(t, true)

	out, err := svc.Login("customer")
	require.NoError(t, err)

	var user entity.User
	require.NoError(t, db.Preload("Groups").
		Where("username = ?", out.Username).First(&user).Error)
	assert.Empty(t, user.Groups)
	assert.Equal(t, entity.RoleCustomer, entity.PrimaryRole(&user))
}

func TestDemoPurgeSweepsExpiredUsersOnly(t *testing.T) {
	svc, db := newDemoService(t, true)

	past := time.Now().Add(-time.Hour)
	expired := &entity.User{Username: "demo_old", Password: "hashed", IsDemo: true, DemoExpiresAt: &past}
	require.NoError(t, db.Create(expired).Error)

	// Give the expired user the full footprint a demo customer leaves
	// behind: a cart line, an order with a line, plus a crew assignment
	// pointing at them. All of it must go with the user.
	item := createMenuItem(t, db, "Pasta", 9.50,
		createCategory(t, db, "mains", "Mains").ID)
	require.NoError(t, db.Create(&entity.CartItem{
		UserID: expired.ID, MenuItemID: item.ID,
		Quantity: 1, UnitPrice: 9.50, Price: 9.50,
	}).Error)
	order := &entity.Order{UserID: expired.ID, Total: 9.50}
	require.NoError(t, db.Create(order).Error)
	itemID := item.ID
	require.NoError(t, db.Create(&entity.OrderItem{
		OrderID: order.ID, MenuItemID: &itemID,
		ItemTitle: "Pasta", Quantity: 1, UnitPrice: 9.50, Price: 9.50,
	}).Error)
	customer := createUser(t, db, "alice")
	expiredID := expired.ID
	assigned := &entity.Order{UserID: customer.ID, DeliveryCrewID: &expiredID}
	require.NoError(t, db.Create(assigned).Error)

	active, err := svc.Login("customer")
	require.NoError(t, err)

	count, err := svc.Purge(time.Now())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	var gone int64
	require.NoError(t, db.Unscoped().Model(&entity.User{}).
		Where("username = ?", "demo_old").Count(&gone).Error)
	assert.EqualValues(t, 0, gone)

	var orders, lines int64
	require.NoError(t, db.Unscoped().Model(&entity.Order{}).
		Where("user_id = ?", expired.ID).Count(&orders).Error)
	require.NoError(t, db.Unscoped().Model(&entity.OrderItem{}).Count(&lines).Error)
	assert.EqualValues(t, 0, orders)
	assert.EqualValues(t, 0, lines)

	var unassigned entity.Order
	require.NoError(t, db.First(&unassigned, assigned.ID).Error)
	assert.Nil(t, unassigned.DeliveryCrewID)

	var kept int64
	require.NoError(t, db.Model(&entity.User{}).
		Where("username = ?", active.Username).Count(&kept).Error)
	assert.EqualValues(t, 1, kept)
}

func TestTTLHint(t *testing.T) {
	assert.Equal(t, "expired", ttlHint(0))
	assert.Equal(t, "expired", ttlHint(-time.Minute))
	assert.Equal(t, "~5m left", ttlHint(5*time.Minute+30*time.Second))
	assert.Equal(t, "~2h left", ttlHint(2*time.Hour))
	assert.Equal(t, "~1h 3m left", ttlHint(63*time.Minute))
}

func TestDemoMeReportsRemainingTTL(t *testing.T) {
	svc, db := newDemoService(t, true)

	out, err := svc.Login("manager")
	require.NoError(t, err)

	var user entity.User
	require.NoError(t, db.Preload("Groups").
		Where("username = ?", out.Username).First(&user).Error)

	me := svc.Me(&user)
	assert.True(t, me.IsDemo)
	assert.Equal(t, entity.RoleManager, me.Role)
	assert.Greater(t, me.TTLSecondsRemaining, int64(11*3600))
	assert.True(t, strings.HasSuffix(me.TTLHint, "left"))
}
