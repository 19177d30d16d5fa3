package repository

import (
	"context"

	"github.com/matheuseschaves/supermarket-tracker/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository defines the operations on categories. Categories are
// never deleted.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	List(ctx context.Context) ([]model.Category, error)
	FindByName(ctx context.Context, nome string) (*model.Category, error)
}

type categoryRepository struct{ db *gorm.DB }

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepository) List(ctx context.Context) ([]model.Category, error) {
	var list []model.Category
	err := r.db.WithContext(ctx).Order("nome asc").Find(&list).Error
	return list, err
}

// FindByName matches the name exactly.
func (r *categoryRepository) FindByName(ctx context.Context, nome string) (*model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).Where("nome = ?", nome).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}
