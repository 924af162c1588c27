package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
)

const (
	minCartQuantity = 1
	maxCartQuantity = 99
)

type CartService struct {
	Repo     *repository.CartRepository
	MenuRepo *repository.MenuRepository
	DemoMode bool
}

func NewCartService(repo *repository.CartRepository, menuRepo *repository.MenuRepository, demoMode bool) *CartService {
	return &CartService{Repo: repo, MenuRepo: menuRepo, DemoMode: demoMode}
}

type CartAddIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity" binding:"required"`
}

type CartUpdateIn struct {
	Quantity *int `json:"quantity"`
}

type MenuItemTinyOut struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type CartItemOut struct {
	ID        uint            `json:"id"`
	MenuItem  MenuItemTinyOut `json:"menuItem"`
	Quantity  int             `json:"quantity"`
	UnitPrice float64         `json:"unitPrice"`
	Price     float64         `json:"price"`
}

func cartItemOut(it *entity.CartItem) *CartItemOut {
	return &CartItemOut{
		ID:        it.ID,
		MenuItem:  MenuItemTinyOut{ID: it.MenuItemID, Name: it.MenuItem.Title},
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		Price:     it.Price,
	}
}

// List returns the requester's cart lines only.
func (s *CartService) List(userID uint, offset, limit int) ([]CartItemOut, int64, error) {
	items, count, err := s.Repo.ListForUser(userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CartItemOut, 0, len(items))
	for i := range items {
		out = append(out, *cartItemOut(&items[i]))
	}
	return out, count, nil
}

// Add inserts a cart line, snapshotting the menu item's current price.
// A second line for the same (user, menu item) pair is a conflict, not
// a merge; the uniqueness constraint backs this under concurrency.
func (s *CartService) Add(userID uint, in *CartAddIn) (*CartItemOut, error) {
	if err := validateQuantity(in.Quantity); err != nil {
		return nil, err
	}

	item, err := s.MenuRepo.ByID(in.MenuItemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fieldError("menuItemId", "Menu item does not exist.")
	}
	if err != nil {
		return nil, err
	}

	exists, err := s.Repo.Exists(userID, item.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateCartItem
	}

	line := &entity.CartItem{
		UserID:     userID,
		MenuItemID: item.ID,
		MenuItem:   *item,
		Quantity:   in.Quantity,
		UnitPrice:  item.Price,
		Price:      item.Price * float64(in.Quantity),
		IsDemo:     s.DemoMode,
	}
	if err := s.Repo.Create(line); err != nil {
		// Lost a race against a concurrent insert of the same pair.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateCartItem
		}
		return nil, err
	}
	return cartItemOut(line), nil
}

// UpdateQuantity changes the only mutable cart field. The price is
// recomputed from the frozen unit price; quantity is mandatory even on
// a partial update.
func (s *CartService) UpdateQuantity(userID, itemID uint, in *CartUpdateIn) (*CartItemOut, error) {
	if in.Quantity == nil {
		return nil, fieldError("quantity", "This field is required.")
	}
	if err := validateQuantity(*in.Quantity); err != nil {
		return nil, err
	}

	line, err := s.Repo.ItemForUser(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.DemoMode && !line.IsDemo {
		return nil, ErrDemoModify
	}

	line.Quantity = *in.Quantity
	line.Price = line.UnitPrice * float64(*in.Quantity)
	if err := s.Repo.Save(line); err != nil {
		return nil, err
	}
	return cartItemOut(line), nil
}

func (s *CartService) Remove(userID, itemID uint) error {
	line, err := s.Repo.ItemForUser(userID, itemID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if s.DemoMode && !line.IsDemo {
		return ErrDemoDelete
	}
	return s.Repo.Delete(line)
}

// Clear removes every line in the requester's cart. Clearing an empty
// cart succeeds with zero deletions.
func (s *CartService) Clear(userID uint) (int64, error) {
	return s.Repo.ClearForUser(s.Repo.DB, userID)
}

func validateQuantity(q int) error {
	if q < minCartQuantity || q > maxCartQuantity {
		return fieldError("quantity", "Must be between 1 and 99.")
	}
	return nil
}
