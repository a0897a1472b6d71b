package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func pendingReservation() *Reservation {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return &Reservation{
		ID:        101,
		ClientID:  1,
		StartDate: start,
		EndDate:   start.Add(2 * time.Hour),
		ItemIDs:   []int64{},
		State:     ReservationPending,
	}
}

func racket() *Item {
	return &Item{
		ID:           1,
		Name:         "Racket",
		Brand:        "Wilson",
		PricePerHour: decimal.RequireFromString("5.00"),
		Available:    true,
	}
}

func TestAddItem_ClaimsItem(t *testing.T) {
	r := pendingReservation()
	item := racket()

	assert.True(t, r.AddItem(item))
	assert.False(t, item.Available)
	assert.Equal(t, []int64{1}, r.ItemIDs)
}

func TestAddItem_RefusesDuplicate(t *testing.T) {
	r := pendingReservation()
	item := racket()

	assert.True(t, r.AddItem(item))

	// re-adding the same item is refused even if someone reset the flag
	item.Available = true
	assert.False(t, r.AddItem(item))
	assert.Equal(t, []int64{1}, r.ItemIDs)
}

func TestAddItem_RefusesUnavailable(t *testing.T) {
	r := pendingReservation()
	item := racket()
	item.Available = false

	assert.False(t, r.AddItem(item))
	assert.Empty(t, r.ItemIDs)
}

func TestAddItem_RefusedAfterConfirm(t *testing.T) {
	r := pendingReservation()
	first := racket()
	assert.True(t, r.AddItem(first))
	assert.True(t, r.Confirm())

	second := racket()
	second.ID = 2
	assert.False(t, r.AddItem(second))
	assert.True(t, second.Available)
}

func TestRemoveItem_ReleasesItem(t *testing.T) {
	r := pendingReservation()
	item := racket()
	assert.True(t, r.AddItem(item))

	assert.True(t, r.RemoveItem(item))
	assert.True(t, item.Available)
	assert.Empty(t, r.ItemIDs)

	assert.False(t, r.RemoveItem(item))
}

func TestCalculateTotal(t *testing.T) {
	r := pendingReservation()
	item := racket()
	assert.True(t, r.AddItem(item))

	total := r.CalculateTotal([]*Item{item})
	assert.True(t, total.Equal(decimal.RequireFromString("10")), "got %s", total)
	assert.True(t, r.TotalValue.Equal(total))
}

func TestCalculateTotal_FractionalHours(t *testing.T) {
	r := pendingReservation()
	r.EndDate = r.StartDate.Add(90 * time.Minute)
	item := racket()

	total := r.CalculateTotal([]*Item{item})
	assert.True(t, total.Equal(decimal.RequireFromString("7.5")), "got %s", total)
}

func TestCalculateTotal_SkipsDeletedItems(t *testing.T) {
	r := pendingReservation()
	item := racket()

	total := r.CalculateTotal([]*Item{item, nil})
	assert.True(t, total.Equal(decimal.RequireFromString("10")), "got %s", total)
}

func TestConfirm_RequiresItems(t *testing.T) {
	r := pendingReservation()
	assert.False(t, r.Confirm())
	assert.Equal(t, ReservationPending, r.State)

	assert.True(t, r.AddItem(racket()))
	assert.True(t, r.Confirm())
	assert.Equal(t, ReservationConfirmed, r.State)

	// double confirm
	assert.False(t, r.Confirm())
}

func TestCancel_FromPendingAndConfirmed(t *testing.T) {
	r := pendingReservation()
	assert.True(t, r.Cancel())
	assert.Equal(t, ReservationCancelled, r.State)

	r2 := pendingReservation()
	assert.True(t, r2.AddItem(racket()))
	assert.True(t, r2.Confirm())
	assert.True(t, r2.Cancel())
	assert.Equal(t, ReservationCancelled, r2.State)
}

func TestCancel_Idempotent(t *testing.T) {
	r := pendingReservation()
	assert.True(t, r.Cancel())
	assert.False(t, r.Cancel())
	assert.Equal(t, ReservationCancelled, r.State)
}

func TestComplete_OnlyFromConfirmed(t *testing.T) {
	r := pendingReservation()
	assert.False(t, r.Complete())

	assert.True(t, r.AddItem(racket()))
	assert.True(t, r.Confirm())
	assert.True(t, r.Complete())
	assert.Equal(t, ReservationCompleted, r.State)

	// terminal: nothing leaves Completed
	assert.False(t, r.Cancel())
	assert.False(t, r.Complete())
	assert.False(t, r.Confirm())
}

func TestParseReservationState(t *testing.T) {
	st, ok := ParseReservationState("Confirmed")
	assert.True(t, ok)
	assert.Equal(t, ReservationConfirmed, st)

	_, ok = ParseReservationState("confirmed")
	assert.False(t, ok)
}
