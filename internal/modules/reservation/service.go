package reservation

import (
	"context"

	"sportrent/internal/domain"

	"github.com/shopspring/decimal"
)

// Service drives the reservation lifecycle. State transitions are guarded
// boolean no-ops (false, nil) when the rules refuse them; errors are
// reserved for malformed input, missing records and persistence failures.
type Service struct {
	reservations ReservationRepository
	items        ItemRepository
	users        UserFinder
	notifs       NotificationSender
}

func NewService(reservations ReservationRepository, items ItemRepository, users UserFinder, notifs NotificationSender) *Service {
	return &Service{
		reservations: reservations,
		items:        items,
		users:        users,
		notifs:       notifs,
	}
}

// Create starts a Pending reservation with an empty item set and zero
// total. end > start is enforced here, not just at the edge, so no caller
// can construct a reservation with an inverted or empty time span.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if !req.EndDate.After(req.StartDate) {
		return nil, ErrValidation
	}

	client, err := s.users.GetByID(ctx, req.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, ErrNotFound
	}

	res := &domain.Reservation{
		ClientID:   req.ClientID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		ItemIDs:    []int64{},
		TotalValue: decimal.Zero,
		State:      domain.ReservationPending,
	}

	if err := s.reservations.Create(ctx, res); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyReservationCreated(ctx, res.ClientID, res.ID)
	}

	return res, nil
}

// AddItem claims an item for a Pending reservation. False means the claim
// was refused: the item is unavailable, already in the set, or the
// reservation is past Pending.
func (s *Service) AddItem(ctx context.Context, reservationID, itemID int64) (bool, error) {
	res, err := s.getExisting(ctx, reservationID)
	if err != nil {
		return false, err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, ErrNotFound
	}

	if !res.AddItem(item) {
		return false, nil
	}

	if err := s.recomputeTotal(ctx, res); err != nil {
		return false, err
	}

	if err := s.items.SetAvailability(ctx, item.ID, false); err != nil {
		return false, err
	}
	if err := s.reservations.Update(ctx, res); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveItem releases an item from a Pending reservation.
func (s *Service) RemoveItem(ctx context.Context, reservationID, itemID int64) (bool, error) {
	res, err := s.getExisting(ctx, reservationID)
	if err != nil {
		return false, err
	}

	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return false, err
	}
	if item == nil {
		return false, ErrNotFound
	}

	if !res.RemoveItem(item) {
		return false, nil
	}

	if err := s.recomputeTotal(ctx, res); err != nil {
		return false, err
	}

	if err := s.items.SetAvailability(ctx, item.ID, true); err != nil {
		return false, err
	}
	if err := s.reservations.Update(ctx, res); err != nil {
		return false, err
	}
	return true, nil
}

// Confirm transitions Pending -> Confirmed; requires a non-empty item set.
func (s *Service) Confirm(ctx context.Context, reservationID int64) (bool, error) {
	res, err := s.getExisting(ctx, reservationID)
	if err != nil {
		return false, err
	}

	if !res.Confirm() {
		return false, nil
	}

	if err := s.reservations.Update(ctx, res); err != nil {
		return false, err
	}
	s.notifyState(ctx, res)
	return true, nil
}

// Cancel transitions Pending or Confirmed -> Cancelled and releases every
// held item. A second cancel is a false no-op.
func (s *Service) Cancel(ctx context.Context, reservationID int64) (bool, error) {
	return s.finish(ctx, reservationID, (*domain.Reservation).Cancel)
}

// Complete transitions Confirmed -> Completed, releasing items like Cancel.
func (s *Service) Complete(ctx context.Context, reservationID int64) (bool, error) {
	return s.finish(ctx, reservationID, (*domain.Reservation).Complete)
}

func (s *Service) finish(ctx context.Context, reservationID int64, transition func(*domain.Reservation) bool) (bool, error) {
	res, err := s.getExisting(ctx, reservationID)
	if err != nil {
		return false, err
	}

	if !transition(res) {
		return false, nil
	}

	// Release every held item together with the state change, so a failed
	// write cannot strand released items on an active reservation. Ids that
	// no longer resolve are skipped: historical item_ids are snapshot data.
	if err := s.reservations.UpdateReleasing(ctx, res, res.ItemIDs); err != nil {
		return false, err
	}
	s.notifyState(ctx, res)
	return true, nil
}

func (s *Service) Get(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	return s.getExisting(ctx, reservationID)
}

// List returns reservations with optional client/state filters, applied
// conjunctively when both are given.
func (s *Service) List(ctx context.Context, clientID *int64, state *domain.ReservationState) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, clientID, state)
}

func (s *Service) FindByClient(ctx context.Context, clientID int64) ([]domain.Reservation, error) {
	return s.reservations.List(ctx, &clientID, nil)
}

func (s *Service) getExisting(ctx context.Context, reservationID int64) (*domain.Reservation, error) {
	res, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return nil, ErrNotFound
	}
	return res, nil
}

func (s *Service) recomputeTotal(ctx context.Context, res *domain.Reservation) error {
	items := make([]*domain.Item, 0, len(res.ItemIDs))
	for _, id := range res.ItemIDs {
		item, err := s.items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		items = append(items, item)
	}
	res.CalculateTotal(items)
	return nil
}

func (s *Service) notifyState(ctx context.Context, res *domain.Reservation) {
	if s.notifs == nil {
		return
	}
	_ = s.notifs.NotifyReservationStateChanged(ctx, res.ClientID, res.ID, res.State)
}
