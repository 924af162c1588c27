package configs

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
)

// SeedGroups creates the role-backing groups if they don't exist yet.
func SeedGroups(db *gorm.DB) error {
	for _, name := range []string{entity.GroupManager, entity.GroupDeliveryCrew} {
		var g entity.Group
		err := db.Where("name = ?", name).First(&g).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := db.Create(&entity.Group{Name: name}).Error; err != nil {
				return err
			}
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the elevated admin account if ADMIN_PASSWORD is set
// and no user with ADMIN_USERNAME exists yet.
func SeedAdmin(db *gorm.DB, cfg *Config) error {
	if cfg.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&entity.User{}).
		Where("username = ?", cfg.AdminUsername).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return db.Create(&entity.User{
		Username: cfg.AdminUsername,
		Password: string(hashed),
		IsAdmin:  true,
	}).Error
}
