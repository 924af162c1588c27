package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
)

func newGroupService(db *gorm.DB, groupName string) *GroupService {
	return NewGroupService(db,
		repository.NewGroupRepository(db),
		repository.NewUserRepository(db),
		repository.NewOrderRepository(db),
		groupName)
}

func TestGroupAddUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db, entity.GroupManager)

	_, err := svc.Add(&GroupAddIn{Username: "ghost"})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, []string{"User 'ghost' does not exist."}, fields["username"])
}

func TestGroupAddExistingMemberIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db, entity.GroupManager)
	createUser(t, db, "meg", entity.GroupManager)

	_, err := svc.Add(&GroupAddIn{Username: "meg"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "User 'meg' is already in the Manager group.", conflict.Detail)
}

func TestGroupAddAndListMembers(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db, entity.GroupDeliveryCrew)
	createUser(t, db, "carl")

	username, err := svc.Add(&GroupAddIn{Username: "carl"})
	require.NoError(t, err)
	assert.Equal(t, "carl", username)

	members, count, err := svc.Members(0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, members, 1)
	assert.Equal(t, "carl", members[0].Username)
}

func TestGroupMemberLookupScopedToGroup(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db, entity.GroupManager)
	outsider := createUser(t, db, "alice")

	_, err := svc.Member(outsider.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Remove(outsider.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoveCrewMemberUnassignsOrders(t *testing.T) {
	db := newTestDB(t)
	svc := newGroupService(db, entity.GroupDeliveryCrew)

	customer := createUser(t, db, "alice")
	crew := createUser(t, db, "carl", entity.GroupDeliveryCrew)

	crewID := crew.ID
	order := &entity.Order{UserID: customer.ID, DeliveryCrewID: &crewID}
	require.NoError(t, db.Create(order).Error)

	username, err := svc.Remove(crew.ID)
	require.NoError(t, err)
	assert.Equal(t, "carl", username)

	var reloaded entity.Order
	require.NoError(t, db.First(&reloaded, order.ID).Error)
	assert.Nil(t, reloaded.DeliveryCrewID)

	_, err = svc.Member(crew.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCustomersListExcludesStaff(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	createUser(t, db, "alice")
	createUser(t, db, "meg", entity.GroupManager)
	createUser(t, db, "carl", entity.GroupDeliveryCrew)
	admin := &entity.User{Username: "root", Password: "hashed", IsAdmin: true}
	require.NoError(t, db.Create(admin).Error)

	out, count, err := svc.Customers(0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
	require.Len(t, out, 1)
	assert.Equal(t, "alice", out[0].Username)
}
