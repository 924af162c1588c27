package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jead100/restaurant-api/entity"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// ListForUser returns the user's cart lines with menu items preloaded.
func (r *CartRepository) ListForUser(userID uint, offset, limit int) ([]entity.CartItem, int64, error) {
	base := r.DB.Model(&entity.CartItem{}).Where("user_id = ?", userID)

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var items []entity.CartItem
	err := base.Preload("MenuItem").Order("id").Offset(offset).Limit(limit).Find(&items).Error
	return items, count, err
}

// AllForUser returns every cart line of the user (used by order creation).
func (r *CartRepository) AllForUser(tx *gorm.DB, userID uint) ([]entity.CartItem, error) {
	var items []entity.CartItem
	err := tx.Where("user_id = ?", userID).Preload("MenuItem").Order("id").Find(&items).Error
	return items, err
}

// ItemForUser returns a line only if it belongs to the user.
func (r *CartRepository) ItemForUser(userID, itemID uint) (*entity.CartItem, error) {
	var item entity.CartItem
	err := r.DB.Where("id = ? AND user_id = ?", itemID, userID).
		Preload("MenuItem").First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *CartRepository) Exists(userID, menuItemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.CartItem{}).
		Where("user_id = ? AND menu_item_id = ?", userID, menuItemID).
		Count(&count).Error
	return count > 0, err
}

func (r *CartRepository) Create(item *entity.CartItem) error {
	return r.DB.Omit(clause.Associations).Create(item).Error
}

func (r *CartRepository) Save(item *entity.CartItem) error {
	return r.DB.Omit(clause.Associations).Save(item).Error
}

func (r *CartRepository) Delete(item *entity.CartItem) error {
	return r.DB.Unscoped().Delete(item).Error
}

// ClearForUser bulk-deletes the user's cart lines and reports how many
// were removed. Clearing an already-empty cart is not an error.
func (r *CartRepository) ClearForUser(tx *gorm.DB, userID uint) (int64, error) {
	res := tx.Unscoped().Where("user_id = ?", userID).Delete(&entity.CartItem{})
	return res.RowsAffected, res.Error
}
