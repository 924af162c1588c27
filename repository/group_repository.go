package repository

import (
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
)

type GroupRepository struct{ DB *gorm.DB }

func NewGroupRepository(db *gorm.DB) *GroupRepository { return &GroupRepository{DB: db} }

func (r *GroupRepository) FindByName(name string) (*entity.Group, error) {
	var g entity.Group
	if err := r.DB.Where("name = ?", name).First(&g).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// ListMembers returns the group's users ordered by ID.
func (r *GroupRepository) ListMembers(groupID uint, offset, limit int) ([]entity.User, int64, error) {
	base := r.DB.Model(&entity.User{}).
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Where("ug.group_id = ?", groupID)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err := base.Order("users.id").Offset(offset).Limit(limit).Find(&users).Error
	return users, count, err
}

// MemberByID returns a user only if it belongs to the group.
func (r *GroupRepository) MemberByID(groupID, userID uint) (*entity.User, error) {
	var u entity.User
	err := r.DB.
		Joins("JOIN user_groups ug ON ug.user_id = users.id").
		Where("ug.group_id = ? AND users.id = ?", groupID, userID).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *GroupRepository) IsMember(groupID, userID uint) (bool, error) {
	var count int64
	err := r.DB.Table("user_groups").
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Count(&count).Error
	return count > 0, err
}

func (r *GroupRepository) AddUser(tx *gorm.DB, group *entity.Group, user *entity.User) error {
	return tx.Model(group).Association("Users").Append(user)
}

func (r *GroupRepository) RemoveUser(tx *gorm.DB, group *entity.Group, user *entity.User) error {
	return tx.Model(group).Association("Users").Delete(user)
}
