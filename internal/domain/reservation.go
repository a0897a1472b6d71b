package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type ReservationState string

const (
	ReservationPending   ReservationState = "Pending"
	ReservationConfirmed ReservationState = "Confirmed"
	ReservationCancelled ReservationState = "Cancelled"
	ReservationCompleted ReservationState = "Completed"
)

// ParseReservationState validates a state string coming from a caller.
func ParseReservationState(s string) (ReservationState, bool) {
	switch ReservationState(s) {
	case ReservationPending, ReservationConfirmed, ReservationCancelled, ReservationCompleted:
		return ReservationState(s), true
	}
	return "", false
}

// Reservation associates a client with one or more items over a time span.
//
// Lifecycle: Pending -> Confirmed -> Completed, with Cancelled reachable
// from Pending and Confirmed. Cancelled and Completed are terminal.
// Transitions are guarded methods returning false instead of mutating.
type Reservation struct {
	ID         int64            `json:"id"`
	ClientID   int64            `json:"client_id"`
	StartDate  time.Time        `json:"start_date"`
	EndDate    time.Time        `json:"end_date"`
	ItemIDs    []int64          `json:"item_ids"`
	TotalValue decimal.Decimal  `json:"total_value"`
	State      ReservationState `json:"state"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
}

func (r *Reservation) IsTerminal() bool {
	return r.State == ReservationCancelled || r.State == ReservationCompleted
}

// IsActive reports whether the reservation currently holds its items.
func (r *Reservation) IsActive() bool {
	return r.State == ReservationPending || r.State == ReservationConfirmed
}

func (r *Reservation) HasItem(itemID int64) bool {
	for _, id := range r.ItemIDs {
		if id == itemID {
			return true
		}
	}
	return false
}

// AddItem claims an item for this reservation: the item is appended to the
// set and flipped to unavailable. Returns false without mutating anything
// when the reservation is not Pending, the item is already in the set, or
// the item is not available.
func (r *Reservation) AddItem(item *Item) bool {
	if r.State != ReservationPending {
		return false
	}
	if item == nil || !item.Available {
		return false
	}
	if r.HasItem(item.ID) {
		return false
	}
	r.ItemIDs = append(r.ItemIDs, item.ID)
	item.Available = false
	return true
}

// RemoveItem releases an item back to the catalog. Only valid while Pending.
func (r *Reservation) RemoveItem(item *Item) bool {
	if r.State != ReservationPending || item == nil {
		return false
	}
	for i, id := range r.ItemIDs {
		if id == item.ID {
			r.ItemIDs = append(r.ItemIDs[:i], r.ItemIDs[i+1:]...)
			item.Available = true
			return true
		}
	}
	return false
}

// DurationHours is (end - start) as a fractional number of hours. The same
// figure is used for the stored total and for display, so they cannot drift.
func (r *Reservation) DurationHours() decimal.Decimal {
	seconds := r.EndDate.Sub(r.StartDate).Seconds()
	return decimal.NewFromFloat(seconds).Div(decimal.NewFromInt(3600))
}

// CalculateTotal recomputes and stores the total from the given resolved
// items: sum of price_per_hour times duration hours. Nil entries (items
// deleted since the reservation was made) contribute nothing.
func (r *Reservation) CalculateTotal(items []*Item) decimal.Decimal {
	hours := r.DurationHours()
	total := decimal.Zero
	for _, it := range items {
		if it == nil {
			continue
		}
		total = total.Add(it.PricePerHour.Mul(hours))
	}
	r.TotalValue = total
	return total
}

// Confirm transitions Pending -> Confirmed. Requires at least one item.
func (r *Reservation) Confirm() bool {
	if r.State != ReservationPending || len(r.ItemIDs) == 0 {
		return false
	}
	r.State = ReservationConfirmed
	return true
}

// Cancel transitions Pending or Confirmed -> Cancelled. The caller is
// responsible for releasing the held items afterwards.
func (r *Reservation) Cancel() bool {
	if !r.IsActive() {
		return false
	}
	r.State = ReservationCancelled
	return true
}

// Complete transitions Confirmed -> Completed. Held items are released by
// the caller, as with Cancel.
func (r *Reservation) Complete() bool {
	if r.State != ReservationConfirmed {
		return false
	}
	r.State = ReservationCompleted
	return true
}
