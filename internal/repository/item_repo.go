package repository

import (
	"context"
	"errors"
	"time"

	"sportrent/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

type itemModel struct {
	ID           int64           `gorm:"column:id;primaryKey"`
	Name         string          `gorm:"column:name"`
	Brand        string          `gorm:"column:brand"`
	PricePerHour decimal.Decimal `gorm:"column:price_per_hour;type:numeric"`
	Available    bool            `gorm:"column:available"`
	CategoryID   *int64          `gorm:"column:category_id"`
	CreatedAt    time.Time       `gorm:"column:created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at"`
}

func (itemModel) TableName() string { return "items" }

func toDomainItem(m itemModel) *domain.Item {
	return &domain.Item{
		ID:           m.ID,
		Name:         m.Name,
		Brand:        m.Brand,
		PricePerHour: m.PricePerHour,
		Available:    m.Available,
		CategoryID:   m.CategoryID,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toItemModel(it *domain.Item) itemModel {
	return itemModel{
		ID:           it.ID,
		Name:         it.Name,
		Brand:        it.Brand,
		PricePerHour: it.PricePerHour,
		Available:    it.Available,
		CategoryID:   it.CategoryID,
		CreatedAt:    it.CreatedAt,
		UpdatedAt:    it.UpdatedAt,
	}
}

func (r *ItemRepository) Create(ctx context.Context, it *domain.Item) error {
	m := toItemModel(it)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*it = *toDomainItem(m)
	return nil
}

// GetByID returns (nil, nil) when the item does not exist; absence is a
// caller-checked condition, not an error.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	var m itemModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainItem(m), nil
}

// List returns items in insertion (id) order, optionally filtered by
// category and/or availability. Filters are conjunctive.
func (r *ItemRepository) List(ctx context.Context, categoryID *int64, availableOnly bool) ([]domain.Item, error) {
	q := r.db.WithContext(ctx).Model(&itemModel{}).Order("id ASC")
	if categoryID != nil {
		q = q.Where("category_id = ?", *categoryID)
	}
	if availableOnly {
		q = q.Where("available = ?", true)
	}

	var rows []itemModel
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]domain.Item, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainItem(m))
	}
	return out, nil
}

func (r *ItemRepository) Update(ctx context.Context, it *domain.Item) error {
	m := toItemModel(it)
	return r.db.WithContext(ctx).Model(&itemModel{}).
		Where("id = ?", m.ID).
		Select("name", "brand", "price_per_hour", "available", "category_id", "updated_at").
		Updates(map[string]any{
			"name":           m.Name,
			"brand":          m.Brand,
			"price_per_hour": m.PricePerHour,
			"available":      m.Available,
			"category_id":    m.CategoryID,
			"updated_at":     time.Now(),
		}).Error
}

// SetAvailability flips the availability flag unconditionally. Used both by
// reservation transitions and by the administrative toggle.
func (r *ItemRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	return r.db.WithContext(ctx).Model(&itemModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"available": available, "updated_at": time.Now()}).Error
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&itemModel{}, id).Error
}

// CountByCategory is the live membership count behind Category.ItemCount.
func (r *ItemRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&itemModel{}).
		Where("category_id = ?", categoryID).
		Count(&cnt)
	return cnt, tx.Error
}
