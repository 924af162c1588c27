package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jead100/restaurant-api/repository"
)

func TestCategoryDuplicateSlugIsConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db), false)

	_, err := svc.Create(&CategoryWriteIn{Slug: "mains", Title: "Mains"})
	require.NoError(t, err)

	_, err = svc.Create(&CategoryWriteIn{Slug: "mains", Title: "Mains again"})
	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
}

func TestCategoryDeleteBlockedWhileReferenced(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db), false)

	cat := createCategory(t, db, "mains", "Mains")
	item := createMenuItem(t, db, "Pasta", 9.50, cat.ID)

	err := svc.Delete("mains")
	assert.ErrorIs(t, err, ErrCategoryInUse)

	require.NoError(t, db.Unscoped().Delete(item).Error)
	require.NoError(t, svc.Delete("mains"))

	_, err = svc.Get("mains")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryListOrderingWhitelist(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db), false)

	createCategory(t, db, "mains", "Mains")
	createCategory(t, db, "desserts", "Desserts")

	out, count, err := svc.List(CategoryListIn{OrderBy: "slug", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
	require.Len(t, out, 2)
	assert.Equal(t, "desserts", out[0].Slug)

	_, _, err = svc.List(CategoryListIn{OrderBy: "id", Limit: 10})
	var fields FieldErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t,
		[]string{"Invalid ordering field(s): id. Expected one of: slug, title."},
		fields["ordering"])
}

func TestCategoryPartialUpdate(t *testing.T) {
	db := newTestDB(t)
	svc := NewCategoryService(repository.NewCategoryRepository(db), false)
	createCategory(t, db, "mains", "Mains")

	title := "Main courses"
	out, err := svc.PartialUpdate("mains", &CategoryPatchIn{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "mains", out.Slug)
	assert.Equal(t, "Main courses", out.Title)
}
