package entity

import (
	"gorm.io/gorm"
)

// Category groups menu items (e.g. Appetizers, Desserts).
type Category struct {
	gorm.Model
	Slug  string `gorm:"uniqueIndex;not null" json:"slug"`
	Title string `gorm:"uniqueIndex;not null" json:"title"`

	IsDemo bool `gorm:"index;default:false" json:"-"`

	// RESTRICT: a category cannot be deleted while items reference it.
	Items []MenuItem `gorm:"constraint:OnDelete:RESTRICT;" json:"-"`
}
