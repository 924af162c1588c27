package entity

import (
	"gorm.io/gorm"
)

// CartItem is one (user, menu item) line in a cart.
//
// UnitPrice is snapshotted from the menu item at insert time and never
// recomputed afterwards; Price = UnitPrice * Quantity.
type CartItem struct {
	gorm.Model
	UserID uint `gorm:"uniqueIndex:uniq_user_menuitem" json:"userId"`
	User   User `json:"-"`

	MenuItemID uint     `gorm:"uniqueIndex:uniq_user_menuitem" json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`

	Quantity  int     `json:"quantity"` // 1..99
	UnitPrice float64 `json:"unitPrice"`
	Price     float64 `json:"price"`

	IsDemo bool `gorm:"index;default:false" json:"-"`
}
