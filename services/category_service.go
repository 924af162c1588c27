package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Jead100/restaurant-api/entity"
	"github.com/Jead100/restaurant-api/repository"
)

var categoryOrderFields = []string{"slug", "title"}

type CategoryService struct {
	Repo     *repository.CategoryRepository
	DemoMode bool
}

func NewCategoryService(repo *repository.CategoryRepository, demoMode bool) *CategoryService {
	return &CategoryService{Repo: repo, DemoMode: demoMode}
}

type CategoryListIn struct {
	Search  string
	OrderBy string
	Offset  int
	Limit   int
}

type CategoryWriteIn struct {
	Slug  string `json:"slug" binding:"required"`
	Title string `json:"title" binding:"required"`
}

type CategoryOut struct {
	ID    uint   `json:"id"`
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func categoryOut(cat *entity.Category) *CategoryOut {
	return &CategoryOut{ID: cat.ID, Slug: cat.Slug, Title: cat.Title}
}

func (s *CategoryService) List(in CategoryListIn) ([]CategoryOut, int64, error) {
	orderBy, err := validateOrderBy(in.OrderBy, categoryOrderFields)
	if err != nil {
		return nil, 0, err
	}
	cats, count, err := s.Repo.List(in.Search, orderBy, in.Offset, in.Limit)
	if err != nil {
		return nil, 0, err
	}
	out := make([]CategoryOut, 0, len(cats))
	for i := range cats {
		out = append(out, *categoryOut(&cats[i]))
	}
	return out, count, nil
}

func (s *CategoryService) Get(slug string) (*CategoryOut, error) {
	cat, err := s.Repo.BySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return categoryOut(cat), nil
}

func (s *CategoryService) Create(in *CategoryWriteIn) (*CategoryOut, error) {
	cat := &entity.Category{Slug: in.Slug, Title: in.Title, IsDemo: s.DemoMode}
	if err := s.Repo.Create(cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Detail: "A category with this slug or title already exists."}
		}
		return nil, err
	}
	return categoryOut(cat), nil
}

func (s *CategoryService) Update(slug string, in *CategoryWriteIn) (*CategoryOut, error) {
	cat, err := s.loadWritable(slug)
	if err != nil {
		return nil, err
	}
	cat.Slug = in.Slug
	cat.Title = in.Title
	if err := s.Repo.Save(cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Detail: "A category with this slug or title already exists."}
		}
		return nil, err
	}
	return categoryOut(cat), nil
}

type CategoryPatchIn struct {
	Slug  *string `json:"slug"`
	Title *string `json:"title"`
}

func (s *CategoryService) PartialUpdate(slug string, in *CategoryPatchIn) (*CategoryOut, error) {
	cat, err := s.loadWritable(slug)
	if err != nil {
		return nil, err
	}
	if in.Slug != nil {
		cat.Slug = *in.Slug
	}
	if in.Title != nil {
		cat.Title = *in.Title
	}
	if err := s.Repo.Save(cat); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &ConflictError{Detail: "A category with this slug or title already exists."}
		}
		return nil, err
	}
	return categoryOut(cat), nil
}

// Delete refuses to remove a category still referenced by menu items.
// The FK is RESTRICT, so the store enforces this even under races.
func (s *CategoryService) Delete(slug string) error {
	cat, err := s.Repo.BySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if s.DemoMode && !cat.IsDemo {
		return ErrDemoDelete
	}
	inUse, err := s.Repo.HasItems(cat.ID)
	if err != nil {
		return err
	}
	if inUse {
		return ErrCategoryInUse
	}
	// The RESTRICT constraint backs this check under races.
	if err := s.Repo.Delete(cat); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return ErrCategoryInUse
		}
		return err
	}
	return nil
}

func (s *CategoryService) loadWritable(slug string) (*entity.Category, error) {
	cat, err := s.Repo.BySlug(slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if s.DemoMode && !cat.IsDemo {
		return nil, ErrDemoModify
	}
	return cat, nil
}
