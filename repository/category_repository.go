package repository

import (
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
)

type CategoryRepository struct{ DB *gorm.DB }

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

// List returns categories matching an optional slug search, ordered by
// pre-validated order clauses.
func (r *CategoryRepository) List(search string, orderBy []string, offset, limit int) ([]entity.Category, int64, error) {
	q := r.DB.Model(&entity.Category{})
	if search != "" {
		q = q.Where("slug LIKE ?", "%"+search+"%")
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	for _, clause := range orderBy {
		q = q.Order(clause)
	}

	var cats []entity.Category
	err := q.Offset(offset).Limit(limit).Find(&cats).Error
	return cats, count, err
}

func (r *CategoryRepository) BySlug(slug string) (*entity.Category, error) {
	var cat entity.Category
	if err := r.DB.Where("slug = ?", slug).First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *CategoryRepository) Create(cat *entity.Category) error {
	return r.DB.Create(cat).Error
}

func (r *CategoryRepository) Save(cat *entity.Category) error {
	return r.DB.Save(cat).Error
}

// Delete removes the category. The foreign key on menu items is
// RESTRICT, so the store itself refuses the delete while items still
// reference the category.
func (r *CategoryRepository) Delete(cat *entity.Category) error {
	return r.DB.Unscoped().Delete(cat).Error
}

// HasItems reports whether any menu item references the category.
func (r *CategoryRepository) HasItems(catID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&entity.MenuItem{}).Where("category_id = ?", catID).Count(&count).Error
	return count > 0, err
}
