package catalog

import (
	"context"

	"sportrent/internal/domain"
)

// ItemRepository is the persistence boundary for items.
type ItemRepository interface {
	Create(ctx context.Context, it *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	List(ctx context.Context, categoryID *int64, availableOnly bool) ([]domain.Item, error)
	Update(ctx context.Context, it *domain.Item) error
	SetAvailability(ctx context.Context, id int64, available bool) error
	Delete(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// CategoryRepository is the persistence boundary for categories.
type CategoryRepository interface {
	Create(ctx context.Context, c *domain.Category) error
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Delete(ctx context.Context, id int64) error
}

// ReservationGuard answers whether an item is currently claimed, so item
// deletion cannot leave an active reservation holding a dangling id.
type ReservationGuard interface {
	IsItemHeld(ctx context.Context, itemID int64) (bool, error)
}
