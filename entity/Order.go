package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order is created only from a cart and is immutable afterwards except
// for Status and DeliveryCrewID.
type Order struct {
	gorm.Model
	UserID uint `json:"userId"`
	User   User `json:"-"`

	DeliveryCrewID *uint `json:"deliveryCrewId"`
	DeliveryCrew   *User `gorm:"foreignKey:DeliveryCrewID;constraint:OnDelete:SET NULL;" json:"-"`

	Status bool      `gorm:"index" json:"status"` // false = pending, true = completed
	Total  float64   `json:"total"`
	Date   time.Time `gorm:"index;type:date" json:"date"`

	IsDemo bool `gorm:"index;default:false" json:"-"`

	OrderItems []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"orderItems"`
}
