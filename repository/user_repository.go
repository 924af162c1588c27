package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
)

type UserRepository struct{ DB *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{DB: db} }

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

// FindByID loads a user with its group memberships preloaded, which the
// role resolver needs.
func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Groups").First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Preload("Groups").Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&count).Error
	return count, err
}

// ListCustomers returns users that belong to no group and are not
// admin-level, i.e. plain customers.
func (r *UserRepository) ListCustomers(offset, limit int) ([]entity.User, int64, error) {
	base := r.DB.Model(&entity.User{}).
		Where("is_admin = ?", false).
		Where("id NOT IN (SELECT user_id FROM user_groups)")

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	err := base.Order("id").Offset(offset).Limit(limit).Find(&users).Error
	return users, count, err
}

// DeleteExpiredDemo removes demo users whose expiry has passed, together
// with their cart lines, orders, group memberships, and any crew
// assignments they held. Hard deletes throughout: nothing may keep a
// foreign key onto the users about to go. Returns the number of users
// deleted.
func (r *UserRepository) DeleteExpiredDemo(tx *gorm.DB, now time.Time) (int64, error) {
	var ids []uint
	err := tx.Model(&entity.User{}).
		Where("is_demo = ? AND demo_expires_at IS NOT NULL AND demo_expires_at < ?", true, now).
		Pluck("id", &ids).Error
	if err != nil || len(ids) == 0 {
		return 0, err
	}

	if err := tx.Unscoped().Where("user_id IN ?", ids).Delete(&entity.CartItem{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Unscoped().
		Where("order_id IN (SELECT id FROM orders WHERE user_id IN ?)", ids).
		Delete(&entity.OrderItem{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Unscoped().Where("user_id IN ?", ids).Delete(&entity.Order{}).Error; err != nil {
		return 0, err
	}
	if err := tx.Model(&entity.Order{}).
		Where("delivery_crew_id IN ?", ids).
		Update("delivery_crew_id", nil).Error; err != nil {
		return 0, err
	}
	if err := tx.Exec("DELETE FROM user_groups WHERE user_id IN ?", ids).Error; err != nil {
		return 0, err
	}
	res := tx.Unscoped().Where("id IN ?", ids).Delete(&entity.User{})
	return res.RowsAffected, res.Error
}
