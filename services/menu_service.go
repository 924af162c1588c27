package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
)

var menuOrderFields = []string{"id", "title", "price"}

const maxMenuItemPrice = 100.00

type MenuService struct {
	Repo     *repository.MenuRepository
	CatRepo  *repository.CategoryRepository
	DemoMode bool
}

func NewMenuService(repo *repository.MenuRepository, catRepo *repository.CategoryRepository, demoMode bool) *MenuService {
	return &MenuService{Repo: repo, CatRepo: catRepo, DemoMode: demoMode}
}

type MenuItemListIn struct {
	PriceLTE   *float64
	Featured   *bool
	CategoryID *uint
	Search     string
	OrderBy    string
	Offset     int
	Limit      int
}

type MenuItemWriteIn struct {
	Title    string  `json:"title" binding:"required"`
	Price    float64 `json:"price" binding:"required"`
	Featured bool    `json:"featured"`
	Category uint    `json:"category" binding:"required"`
}

type MenuItemPatchIn struct {
	Title    *string  `json:"title"`
	Price    *float64 `json:"price"`
	Featured *bool    `json:"featured"`
	Category *uint    `json:"category"`
}

type CategoryTinyOut struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type MenuItemOut struct {
	ID       uint            `json:"id"`
	Title    string          `json:"title"`
	Price    float64         `json:"price"`
	Featured bool            `json:"featured"`
	Category CategoryTinyOut `json:"category"`
}

func menuItemOut(item *entity.MenuItem) *MenuItemOut {
	return &MenuItemOut{
		ID:       item.ID,
		Title:    item.Title,
		Price:    item.Price,
		Featured: item.Featured,
		Category: CategoryTinyOut{Title: item.Category.Title, Slug: item.Category.Slug},
	}
}

func (s *MenuService) List(in MenuItemListIn) ([]MenuItemOut, int64, error) {
	orderBy, err := validateOrderBy(in.OrderBy, menuOrderFields)
	if err != nil {
		return nil, 0, err
	}

	items, count, err := s.Repo.List(repository.MenuItemFilter{
		PriceLTE:   in.PriceLTE,
		Featured:   in.Featured,
		CategoryID: in.CategoryID,
		Search:     in.Search,
		OrderBy:    orderBy,
	}, in.Offset, in.Limit)
	if err != nil {
		return nil, 0, err
	}

	out := make([]MenuItemOut, 0, len(items))
	for i := range items {
		out = append(out, *menuItemOut(&items[i]))
	}
	return out, count, nil
}

func (s *MenuService) Get(id uint) (*MenuItemOut, error) {
	item, err := s.Repo.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return menuItemOut(item), nil
}

func (s *MenuService) Create(in *MenuItemWriteIn) (*MenuItemOut, error) {
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	cat, err := s.categoryByID(in.Category)
	if err != nil {
		return nil, err
	}

	item := &entity.MenuItem{
		Title:      in.Title,
		Price:      in.Price,
		Featured:   in.Featured,
		CategoryID: cat.ID,
		Category:   *cat,
		IsDemo:     s.DemoMode,
	}
	if err := s.Repo.Create(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Detail: "A menu item with this title already exists."}
		}
		return nil, err
	}
	return menuItemOut(item), nil
}

func (s *MenuService) Update(id uint, in *MenuItemWriteIn) (*MenuItemOut, error) {
	item, err := s.loadWritable(id)
	if err != nil {
		return nil, err
	}
	if err := validatePrice(in.Price); err != nil {
		return nil, err
	}
	cat, err := s.categoryByID(in.Category)
	if err != nil {
		return nil, err
	}

	item.Title = in.Title
	item.Price = in.Price
	item.Featured = in.Featured
	item.CategoryID = cat.ID
	item.Category = *cat
	if err := s.Repo.Save(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Detail: "A menu item with this title already exists."}
		}
		return nil, err
	}
	return menuItemOut(item), nil
}

func (s *MenuService) PartialUpdate(id uint, in *MenuItemPatchIn) (*MenuItemOut, error) {
	item, err := s.loadWritable(id)
	if err != nil {
		return nil, err
	}
	if in.Price != nil {
		if err := validatePrice(*in.Price); err != nil {
			return nil, err
		}
		item.Price = *in.Price
	}
	if in.Title != nil {
		item.Title = *in.Title
	}
	if in.Featured != nil {
		item.Featured = *in.Featured
	}
	if in.Category != nil {
		cat, err := s.categoryByID(*in.Category)
		if err != nil {
			return nil, err
		}
		item.CategoryID = cat.ID
		item.Category = *cat
	}
	if err := s.Repo.Save(item); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Detail: "A menu item with this title already exists."}
		}
		return nil, err
	}
	return menuItemOut(item), nil
}

// Delete removes the item from the catalog. Past order lines keep
// their snapshots; only their menu item reference is nulled.
func (s *MenuService) Delete(id uint) error {
	item, err := s.Repo.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if s.DemoMode && !item.IsDemo {
		return ErrDemoDelete
	}
	return s.Repo.Delete(item)
}

func (s *MenuService) loadWritable(id uint) (*entity.MenuItem, error) {
	item, err := s.Repo.ByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.DemoMode && !item.IsDemo {
		return nil, ErrDemoModify
	}
	return item, nil
}

func (s *MenuService) categoryByID(id uint) (*entity.Category, error) {
	var cat entity.Category
	err := s.CatRepo.DB.First(&cat, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fieldError("category", "Category does not exist.")
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return fieldError("price", "Must be a positive number.")
	}
	if price > maxMenuItemPrice {
		return fieldError("price", "Must not exceed 100.00.")
	}
	return nil
}
