package catalog

import (
	"context"
	"strings"

	"sportrent/internal/domain"
)

type Service struct {
	items        ItemRepository
	categories   CategoryRepository
	reservations ReservationGuard
}

func NewService(items ItemRepository, categories CategoryRepository, reservations ReservationGuard) *Service {
	return &Service{
		items:        items,
		categories:   categories,
		reservations: reservations,
	}
}

/* ---------- ITEMS ---------- */

func (s *Service) CreateItem(ctx context.Context, req CreateItemRequest) (*domain.Item, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}
	if req.PricePerHour.IsNegative() {
		return nil, ErrValidation
	}

	if req.CategoryID != nil {
		cat, err := s.categories.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, ErrNotFound
		}
	}

	item := &domain.Item{
		Name:         name,
		Brand:        strings.TrimSpace(req.Brand),
		PricePerHour: req.PricePerHour,
		Available:    true,
		CategoryID:   req.CategoryID,
	}

	if err := s.items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) ListItems(ctx context.Context, categoryID *int64, availableOnly bool) ([]domain.Item, error) {
	return s.items.List(ctx, categoryID, availableOnly)
}

func (s *Service) GetItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *Service) UpdateItem(ctx context.Context, id int64, req UpdateItemRequest) (*domain.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, ErrValidation
		}
		item.Name = name
	}
	if req.Brand != nil {
		item.Brand = strings.TrimSpace(*req.Brand)
	}
	if req.PricePerHour != nil {
		if req.PricePerHour.IsNegative() {
			return nil, ErrValidation
		}
		item.PricePerHour = *req.PricePerHour
	}
	if req.CategoryID != nil {
		cat, err := s.categories.GetByID(ctx, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		if cat == nil {
			return nil, ErrNotFound
		}
		item.CategoryID = req.CategoryID
	}

	if err := s.items.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetAvailability is the unconditional administrative toggle. Reservation
// transitions go through the reservation service, not through here.
func (s *Service) SetAvailability(ctx context.Context, id int64, available bool) (*domain.Item, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.items.SetAvailability(ctx, id, available); err != nil {
		return nil, err
	}
	item.Available = available
	return item, nil
}

// DeleteItem removes an item from the catalog. Items held by an active
// reservation are refused; item ids on terminal reservations are snapshot
// data and never block deletion.
func (s *Service) DeleteItem(ctx context.Context, id int64) error {
	if _, err := s.GetItem(ctx, id); err != nil {
		return err
	}

	held, err := s.reservations.IsItemHeld(ctx, id)
	if err != nil {
		return err
	}
	if held {
		return ErrItemReserved
	}

	return s.items.Delete(ctx, id)
}

/* ---------- CATEGORIES ---------- */

func (s *Service) CreateCategory(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrValidation
	}

	cat := &domain.Category{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.categories.Create(ctx, cat); err != nil {
		return nil, err
	}
	return cat, nil
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *Service) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	cat, err := s.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cat == nil {
		return nil, ErrNotFound
	}
	return cat, nil
}

// ItemCount is a live query against the catalog, never a stored counter.
func (s *Service) ItemCount(ctx context.Context, categoryID int64) (int64, error) {
	return s.items.CountByCategory(ctx, categoryID)
}

// DeleteCategory re-validates the non-empty rule even though the UI checks
// it first; any caller must hit the same constraint.
func (s *Service) DeleteCategory(ctx context.Context, id int64) error {
	if _, err := s.GetCategory(ctx, id); err != nil {
		return err
	}

	count, err := s.items.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryNotEmpty
	}

	return s.categories.Delete(ctx, id)
}
