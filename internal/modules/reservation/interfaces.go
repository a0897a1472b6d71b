package reservation

import (
	"context"

	"sportrent/internal/domain"
)

// ReservationRepository is the persistence boundary for reservations.
type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) error
	// UpdateReleasing persists the reservation and releases the given items
	// atomically; ids that no longer resolve are skipped.
	UpdateReleasing(ctx context.Context, res *domain.Reservation, itemIDs []int64) error
	List(ctx context.Context, clientID *int64, state *domain.ReservationState) ([]domain.Reservation, error)
}

// ItemRepository is the slice of the catalog the engine needs: resolving
// item ids and flipping availability as reservations claim and release.
type ItemRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	SetAvailability(ctx context.Context, id int64, available bool) error
}

// UserFinder resolves client ids. The engine consumes identity, it never
// mutates it.
type UserFinder interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotificationSender pushes lifecycle events to connected clients. Failures
// are ignored by the engine; notifying is best effort.
type NotificationSender interface {
	NotifyReservationCreated(ctx context.Context, clientID, reservationID int64) error
	NotifyReservationStateChanged(ctx context.Context, clientID, reservationID int64, state domain.ReservationState) error
}
