package notify

import (
	"context"
	"time"

	"sportrent/internal/domain"
)

type Event struct {
	Type          string    `json:"type"`
	ReservationID int64     `json:"reservation_id"`
	State         string    `json:"state,omitempty"`
	At            time.Time `json:"at"`
}

// Sender implements the reservation module's NotificationSender over the
// hub. Events reach the reservation's client when connected; delivery is
// best effort and never reported as a failure to the engine.
type Sender struct {
	hub *Hub
}

func NewSender(hub *Hub) *Sender {
	return &Sender{hub: hub}
}

func (s *Sender) NotifyReservationCreated(_ context.Context, clientID, reservationID int64) error {
	if !s.hub.IsOnline(clientID) {
		return nil
	}
	s.hub.SendToUser(clientID, Event{
		Type:          "reservation_created",
		ReservationID: reservationID,
		State:         string(domain.ReservationPending),
		At:            time.Now(),
	})
	return nil
}

func (s *Sender) NotifyReservationStateChanged(_ context.Context, clientID, reservationID int64, state domain.ReservationState) error {
	if !s.hub.IsOnline(clientID) {
		return nil
	}
	s.hub.SendToUser(clientID, Event{
		Type:          "reservation_state_changed",
		ReservationID: reservationID,
		State:         string(state),
		At:            time.Now(),
	})
	return nil
}
