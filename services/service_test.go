package services

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/configs"
	"github.com/Jead100/restaurant-api/entity"
)

// newTestDB opens a private in-memory database with foreign keys on.
// The unique name keeps parallel tests from sharing state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, configs.Migrate(db))
	require.NoError(t, configs.SeedGroups(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string, groups ...string) *entity.User {
	t.Helper()
	u := &entity.User{Username: username, Password: "hashed"}
	require.NoError(t, db.Create(u).Error)
	for _, name := range groups {
		var g entity.Group
		require.NoError(t, db.Where("name = ?", name).First(&g).Error)
		require.NoError(t, db.Model(&g).Association("Users").Append(u))
	}
	var out entity.User
	require.NoError(t, db.Preload("Groups").First(&out, u.ID).Error)
	return &out
}

func createCategory(t *testing.T, db *gorm.DB, slug, title string) *entity.Category {
	t.Helper()
	cat := &entity.Category{Slug: slug, Title: title}
	require.NoError(t, db.Create(cat).Error)
	return cat
}

func createMenuItem(t *testing.T, db *gorm.DB, title string, price float64, categoryID uint) *entity.MenuItem {
	t.Helper()
	item := &entity.MenuItem{Title: title, Price: price, CategoryID: categoryID}
	require.NoError(t, db.Create(item).Error)
	return item
}
