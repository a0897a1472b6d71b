package repository

import (
	"context"
	"errors"
	"time"

	"sportrent/internal/domain"

	"gorm.io/gorm"
)

type CategoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

type categoryModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (categoryModel) TableName() string { return "categories" }

func toDomainCategory(m categoryModel) *domain.Category {
	return &domain.Category{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, c *domain.Category) error {
	m := categoryModel{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*c = *toDomainCategory(m)
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var m categoryModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainCategory(m), nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	var rows []categoryModel
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Category, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainCategory(m))
	}
	return out, nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&categoryModel{}, id).Error
}
