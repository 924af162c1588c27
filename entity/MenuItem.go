package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Title    string  `gorm:"uniqueIndex;not null" json:"title"`
	Price    float64 `gorm:"index" json:"price"` // validated 0 < price <= 100.00
	Featured bool    `gorm:"index" json:"featured"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `json:"-"`

	IsDemo bool `gorm:"index;default:false" json:"-"`
}
