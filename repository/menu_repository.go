package repository

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Jead100/restaurant-api/entity"
)

type MenuRepository struct{ DB *gorm.DB }

func NewMenuRepository(db *gorm.DB) *MenuRepository { return &MenuRepository{DB: db} }

// MenuItemFilter holds pre-validated list filters for menu items.
type MenuItemFilter struct {
	PriceLTE   *float64
	Featured   *bool
	CategoryID *uint
	Search     string   // title substring, case-insensitive
	OrderBy    []string // validated order clauses
}

func (r *MenuRepository) List(f MenuItemFilter, offset, limit int) ([]entity.MenuItem, int64, error) {
	q := r.DB.Model(&entity.MenuItem{}).Preload("Category")
	if f.PriceLTE != nil {
		q = q.Where("price <= ?", *f.PriceLTE)
	}
	if f.Featured != nil {
		q = q.Where("featured = ?", *f.Featured)
	}
	if f.CategoryID != nil {
		q = q.Where("category_id = ?", *f.CategoryID)
	}
	if f.Search != "" {
		q = q.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(f.Search)+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	for _, clause := range f.OrderBy {
		q = q.Order(clause)
	}

	var items []entity.MenuItem
	err := q.Offset(offset).Limit(limit).Find(&items).Error
	return items, count, err
}

func (r *MenuRepository) ByID(id uint) (*entity.MenuItem, error) {
	var item entity.MenuItem
	if err := r.DB.Preload("Category").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *MenuRepository) Create(item *entity.MenuItem) error {
	return r.DB.Omit(clause.Associations).Create(item).Error
}

func (r *MenuRepository) Save(item *entity.MenuItem) error {
	return r.DB.Omit(clause.Associations).Save(item).Error
}

// Delete hard-deletes the item. Order lines referencing it keep their
// snapshots; their menu item reference is nulled by the FK.
func (r *MenuRepository) Delete(item *entity.MenuItem) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.OrderItem{}).
			Where("menu_item_id = ?", item.ID).
			Update("menu_item_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Unscoped().Where("menu_item_id = ?", item.ID).
			Delete(&entity.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(item).Error
	})
}
