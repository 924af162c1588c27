package entity

import (
	"gorm.io/gorm"
)

// OrderItem is an immutable historical record copied from a cart line.
// ItemTitle/UnitPrice/Price snapshot the menu item at order time, so
// later catalog edits never alter past orders. MenuItemID is nulled if
// the item is later deleted; the snapshot fields survive.
type OrderItem struct {
	gorm.Model
	OrderID uint  `gorm:"uniqueIndex:uniq_order_menuitem" json:"orderId"`
	Order   Order `json:"-"`

	MenuItemID *uint     `gorm:"uniqueIndex:uniq_order_menuitem" json:"menuItemId"`
	MenuItem   *MenuItem `gorm:"constraint:OnDelete:SET NULL;" json:"-"`

	ItemTitle string  `json:"itemTitle"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Price     float64 `json:"price"`
}
