package entity

import (
	"gorm.io/gorm"
)

// Group is a named role container ("Manager", "Delivery crew").
// Customers don't belong to one.
type Group struct {
	gorm.Model
	Name string `gorm:"uniqueIndex;not null" json:"name"`

	Users []User `gorm:"many2many:user_groups;" json:"-"`
}
