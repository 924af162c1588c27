package entity

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Email    string `json:"email"`
	Password string `json:"-"`

	// Admin-equivalent elevated role (roster administration).
	IsAdmin bool `gorm:"default:false" json:"-"`

	// Demo sandbox flags; demo users are purged once expired.
	IsDemo        bool       `gorm:"index;default:false" json:"isDemo"`
	DemoExpiresAt *time.Time `json:"-"`

	// Role derivation inputs. Roles are never stored directly.
	Groups []Group `gorm:"many2many:user_groups;" json:"-"`

	CartItems []CartItem `json:"-"`
	Orders    []Order    `json:"-"`
}

// DemoExpired reports whether the user is a demo account past its expiry.
func (u *User) DemoExpired(now time.Time) bool {
	return u.IsDemo && u.DemoExpiresAt != nil && now.After(*u.DemoExpiresAt)
}
